package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

const (
	colorGreen  = 0x2ECC71 // clean pass
	colorYellow = 0xF1C40F // some alerts skipped
	colorRed    = 0xE74C3C // interrupted or every alert skipped

	maxSkipLines = 10
)

// DiscordReporter posts pass summaries to a Discord webhook.
type DiscordReporter struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordReporter creates a new DiscordReporter.
func NewDiscordReporter(webhookURL string, opts ...DiscordOption) *DiscordReporter {
	d := &DiscordReporter{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordReporter.
type DiscordOption func(*DiscordReporter)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordReporter) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// ReportPass sends the summary as a single embed.
func (d *DiscordReporter) ReportPass(ctx context.Context, s *domain.PassSummary) error {
	payload := discordWebhookPayload{Embeds: []discordEmbed{buildPassEmbed(s)}}
	return d.post(ctx, payload)
}

func buildPassEmbed(s *domain.PassSummary) discordEmbed {
	embed := discordEmbed{
		Title: "Price check pass complete",
		Color: passColor(s),
		Fields: []discordEmbedField{
			{Name: "Eligible", Value: strconv.Itoa(s.Eligible), Inline: true},
			{Name: "Notified", Value: strconv.Itoa(s.Notified), Inline: true},
			{Name: "No change", Value: strconv.Itoa(s.NoChange), Inline: true},
			{Name: "Expired", Value: strconv.Itoa(s.Expired), Inline: true},
			{Name: "Skipped", Value: strconv.Itoa(s.Skipped), Inline: true},
			{Name: "Duration", Value: s.CompletedAt.Sub(s.StartedAt).Round(time.Second).String(), Inline: true},
		},
	}
	if s.Interrupted {
		embed.Title = "Price check pass interrupted"
	}
	if !s.CompletedAt.IsZero() {
		embed.Timestamp = s.CompletedAt.UTC().Format(time.RFC3339)
	}

	var lines []string
	for _, o := range s.Outcomes {
		if o.Kind != domain.OutcomeSkipped {
			continue
		}
		if len(lines) == maxSkipLines {
			lines = append(lines, fmt.Sprintf("... and %d more", s.Skipped-maxSkipLines))
			break
		}
		lines = append(lines, fmt.Sprintf("`%s` %s", o.AlertID, o.Reason))
	}
	embed.Description = strings.Join(lines, "\n")

	return embed
}

func passColor(s *domain.PassSummary) int {
	switch {
	case s.Interrupted, s.Eligible > 0 && s.Skipped == s.Eligible:
		return colorRed
	case s.Skipped > 0:
		return colorYellow
	default:
		return colorGreen
	}
}

func (d *DiscordReporter) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}

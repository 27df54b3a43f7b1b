package notify

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailMailer sends email through the Gmail API as the authorized user.
type GmailMailer struct {
	svc  *gmail.Service
	from string
}

// GmailCredentials is an OAuth client plus a long-lived refresh token for
// the sending account.
type GmailCredentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// GmailOption configures the Gmail service.
type GmailOption func(*gmailSettings)

type gmailSettings struct {
	endpoint   string
	httpClient *http.Client
}

// WithGmailEndpoint overrides the API root.
func WithGmailEndpoint(endpoint string) GmailOption {
	return func(s *gmailSettings) {
		s.endpoint = endpoint
	}
}

// WithGmailHTTPClient sends requests through hc instead of an OAuth client.
// The client is responsible for authorization.
func WithGmailHTTPClient(hc *http.Client) GmailOption {
	return func(s *gmailSettings) {
		s.httpClient = hc
	}
}

// NewGmailMailer creates a GmailMailer sending from the given address.
func NewGmailMailer(
	ctx context.Context,
	creds GmailCredentials,
	from string,
	opts ...GmailOption,
) (*GmailMailer, error) {
	var s gmailSettings
	for _, opt := range opts {
		opt(&s)
	}

	var clientOpts []option.ClientOption
	if s.httpClient != nil {
		clientOpts = append(clientOpts, option.WithHTTPClient(s.httpClient))
	} else {
		clientOpts = append(clientOpts, option.WithTokenSource(gmailTokenSource(ctx, creds)))
	}
	if s.endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(s.endpoint))
	}

	svc, err := gmail.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating gmail service: %w", err)
	}
	return &GmailMailer{svc: svc, from: from}, nil
}

// gmailTokenSource refreshes access tokens from the stored refresh token.
func gmailTokenSource(ctx context.Context, creds GmailCredentials) oauth2.TokenSource {
	cfg := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}
	return cfg.TokenSource(ctx, &oauth2.Token{
		RefreshToken: creds.RefreshToken,
		Expiry:       time.Now(),
	})
}

// SendEmail implements Mailer.
func (m *GmailMailer) SendEmail(ctx context.Context, msg Email) error {
	raw := base64.URLEncoding.EncodeToString(buildRFC822(m.from, msg))

	if _, err := m.svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("sending gmail message: %w", err)
	}
	return nil
}

// buildRFC822 renders a single-part HTML message. The subject is RFC 2047
// encoded since it carries a non-ASCII arrow.
func buildRFC822(from string, msg Email) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return []byte(b.String())
}

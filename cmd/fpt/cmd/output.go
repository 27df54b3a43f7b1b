package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/donaldgifford/flight-price-tracker/internal/amadeus"
	apiclient "github.com/donaldgifford/flight-price-tracker/internal/api/client"
	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printAlertTable(w io.Writer, alerts []domain.Alert) error {
	tw := newTabWriter(w)
	tw.writef("ID\tROUTE\tDEPART\tRETURN\tTHRESHOLD\tACTIVE\tVERIFIED\tLAST CHECKED\n")
	for i := range alerts {
		a := &alerts[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%v\t%s\t%s\n",
			a.ID,
			a.Origin+"-"+a.Destination,
			a.DepartureDate,
			dateOrDash(a.ReturnDate),
			domain.FormatPrice(a.PriceThreshold),
			a.IsActive,
			verifiedChannels(a),
			timeOrDash(a.LastChecked),
		)
	}
	return tw.finish()
}

func printAlertDetail(w io.Writer, a *domain.Alert) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", a.ID)
	tw.writef("Route:\t%s → %s\n", a.Origin, a.Destination)
	tw.writef("Trip:\t%s\n", a.TripType)
	tw.writef("Departure:\t%s\n", a.DepartureDate)
	tw.writef("Return:\t%s\n", dateOrDash(a.ReturnDate))
	tw.writef("Threshold:\t%s\n", domain.FormatPrice(a.PriceThreshold))
	tw.writef("Active:\t%v\n", a.IsActive)
	if a.Email != "" {
		tw.writef("Email:\t%s (verified: %v)\n", a.Email, a.EmailVerified)
	}
	if a.Phone != "" {
		tw.writef("Phone:\t%s (verified: %v)\n", a.Phone, a.PhoneVerified)
	}
	tw.writef("Last Checked:\t%s\n", timeOrDash(a.LastChecked))
	tw.writef("Created:\t%s\n", a.CreatedAt.Format(timeLayout))
	return tw.finish()
}

func printPassSummary(w io.Writer, s *domain.PassSummary) error {
	tw := newTabWriter(w)
	tw.writef("Run:\t%s\n", s.RunID)
	tw.writef("Started:\t%s\n", s.StartedAt.Format(timeLayout))
	tw.writef("Duration:\t%s\n", s.CompletedAt.Sub(s.StartedAt).Round(time.Millisecond))
	tw.writef("Eligible:\t%d\n", s.Eligible)
	tw.writef("Notified:\t%d\n", s.Notified)
	tw.writef("No Change:\t%d\n", s.NoChange)
	tw.writef("Expired:\t%d\n", s.Expired)
	tw.writef("Skipped:\t%d\n", s.Skipped)
	if s.Interrupted {
		tw.writef("Interrupted:\ttrue\n")
	}
	for i := range s.Outcomes {
		o := &s.Outcomes[i]
		switch o.Kind {
		case domain.OutcomeNotified:
			tw.writef("  %s\t%s at %s\n", o.AlertID, o.Kind, domain.FormatPrice(o.NewPrice))
		case domain.OutcomeSkipped:
			tw.writef("  %s\t%s (%s)\n", o.AlertID, o.Kind, o.Reason)
		default:
			tw.writef("  %s\t%s\n", o.AlertID, o.Kind)
		}
	}
	return tw.finish()
}

func printPassRunsTable(w io.Writer, runs []domain.PassRun) error {
	tw := newTabWriter(w)
	tw.writef("STATUS\tSTARTED\tCOMPLETED\tELIGIBLE\tNOTIFIED\tNO CHANGE\tEXPIRED\tSKIPPED\tERROR\n")
	for i := range runs {
		r := &runs[i]
		tw.writef("%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
			r.Status,
			r.StartedAt.Format(timeLayout),
			timeOrDash(r.CompletedAt),
			r.Eligible,
			r.Notified,
			r.NoChange,
			r.Expired,
			r.Skipped,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func printOffersTable(w io.Writer, offers []domain.Offer) error {
	tw := newTabWriter(w)
	tw.writef("PRICE\tFLIGHT\tROUTE\tDEPART\tRETURN\tSTOPS\tDURATION\n")
	for i := range offers {
		o := &offers[i]
		tw.writef("%s %s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			o.Price.StringFixed(2), o.Currency,
			o.FlightNumber,
			o.Origin+"-"+o.Destination,
			o.DepartureDate,
			dateOrDash(o.ReturnDate),
			o.Transfers,
			(time.Duration(o.DurationMinutes) * time.Minute).String(),
		)
	}
	return tw.finish()
}

func printQuota(w io.Writer, q *amadeus.Quota) error {
	tw := newTabWriter(w)
	if q.DailyLimit == 0 {
		tw.writef("Daily Limit:\tunlimited\n")
		return tw.finish()
	}
	tw.writef("Daily Limit:\t%d\n", q.DailyLimit)
	tw.writef("Used:\t%d\n", q.DailyUsed)
	tw.writef("Remaining:\t%d\n", q.Remaining)
	if !q.ResetAt.IsZero() {
		tw.writef("Resets:\t%s\n", q.ResetAt.Format(timeLayout))
	}
	return tw.finish()
}

func printSystemState(w io.Writer, s *apiclient.SystemState) error {
	tw := newTabWriter(w)
	tw.writef("Alerts:\t%d\n", s.AlertsTotal)
	tw.writef("Active:\t%d\n", s.AlertsActive)
	tw.writef("Eligible:\t%d\n", s.AlertsEligible)
	tw.writef("Pass Running:\t%v\n", s.PassRunning)
	if p := s.LastPass; p != nil {
		tw.writef("Last Pass:\t%s (%s)\n", p.StartedAt.Format(timeLayout), p.Status)
	} else {
		tw.writef("Last Pass:\t-\n")
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func verifiedChannels(a *domain.Alert) string {
	switch {
	case a.EmailVerified && a.PhoneVerified:
		return "email,sms"
	case a.EmailVerified:
		return "email"
	case a.PhoneVerified:
		return "sms"
	default:
		return "-"
	}
}

func dateOrDash(d *domain.Date) string {
	if d == nil {
		return "-"
	}
	return d.String()
}

func timeOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(timeLayout)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

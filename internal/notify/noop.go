package notify

import (
	"context"
	"log/slog"

	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

// LogMailer implements Mailer by logging instead of sending. It is used
// when no email backend is configured.
type LogMailer struct {
	log *slog.Logger
}

// NewLogMailer creates a mailer that only logs.
func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// SendEmail logs and discards the message.
func (m *LogMailer) SendEmail(_ context.Context, msg Email) error {
	m.log.Info("email discarded (no backend configured)",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}

// LogTextSender implements TextSender by logging instead of sending.
type LogTextSender struct {
	log *slog.Logger
}

// NewLogTextSender creates a text sender that only logs.
func NewLogTextSender(log *slog.Logger) *LogTextSender {
	return &LogTextSender{log: log}
}

// SendText logs and discards the message.
func (s *LogTextSender) SendText(_ context.Context, to, body string) error {
	s.log.Info("sms discarded (no backend configured)",
		"to", to,
		"body", body,
	)
	return nil
}

// NoOpReporter discards pass reports.
type NoOpReporter struct {
	log *slog.Logger
}

// NewNoOpReporter creates a reporter that logs at debug level.
func NewNoOpReporter(log *slog.Logger) *NoOpReporter {
	return &NoOpReporter{log: log}
}

// ReportPass logs and discards the summary.
func (r *NoOpReporter) ReportPass(_ context.Context, s *domain.PassSummary) error {
	r.log.Debug("pass report discarded (no webhook configured)",
		"run_id", s.RunID,
		"eligible", s.Eligible,
	)
	return nil
}

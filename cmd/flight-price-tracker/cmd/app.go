package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/flight-price-tracker/internal/amadeus"
	"github.com/donaldgifford/flight-price-tracker/internal/config"
	"github.com/donaldgifford/flight-price-tracker/internal/engine"
	"github.com/donaldgifford/flight-price-tracker/internal/links"
	"github.com/donaldgifford/flight-price-tracker/internal/notify"
	"github.com/donaldgifford/flight-price-tracker/internal/store"
	"github.com/donaldgifford/flight-price-tracker/internal/subscription"
)

// app holds the wired service graph shared by serve and check.
type app struct {
	store    store.Store
	provider *amadeus.Client
	engine   *engine.Engine
	subs     *subscription.Service
}

func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	st, err := openStore(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	provider := newProvider(&cfg.Amadeus)

	signer := links.NewSigner(cfg.Links.SigningSecret, cfg.Links.UnsubscribeTTL)
	builder := links.NewBuilder(cfg.Server.BaseURL, signer)

	mailer, err := newMailer(ctx, &cfg.Notifications.Email, log)
	if err != nil {
		st.Close()
		return nil, err
	}
	dispatcher := notify.NewDispatcher(
		mailer,
		newTextSender(&cfg.Notifications.SMS, log),
		builder,
		notify.WithLogger(log.With("component", "notify")),
	)

	eng := engine.NewEngine(st, provider, dispatcher,
		engine.WithLogger(log.With("component", "engine")),
		engine.WithAlertPause(cfg.Schedule.AlertPause),
		engine.WithResultLimit(cfg.Amadeus.ResultLimit),
		engine.WithReporter(newReporter(&cfg.Notifications.Discord, log)),
	)

	subs := subscription.NewService(st, dispatcher, dispatcher, signer,
		subscription.WithLogger(log.With("component", "subscription")),
	)

	return &app{store: st, provider: provider, engine: eng, subs: subs}, nil
}

func (a *app) close() {
	a.store.Close()
}

func openStore(ctx context.Context, cfg *config.DatabaseConfig) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		st, err = store.NewSQLiteStore(ctx, cfg.Path)
	default:
		st, err = store.NewPostgresStore(ctx, cfg.DSN(), store.WithPoolSize(cfg.PoolSize))
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Driver, err)
	}
	return st, nil
}

func newProvider(cfg *config.AmadeusConfig) *amadeus.Client {
	tokens := amadeus.NewOAuthTokenProvider(cfg.APIKey, cfg.APISecret,
		amadeus.WithTokenURL(cfg.TokenURL))

	return amadeus.NewClient(tokens,
		amadeus.WithBaseURL(cfg.BaseURL),
		amadeus.WithCurrency(cfg.Currency),
		amadeus.WithNonStop(cfg.NonStop),
		amadeus.WithRateLimiter(amadeus.NewRateLimiter(
			cfg.RateLimit.PerSecond,
			cfg.RateLimit.Burst,
			cfg.RateLimit.DailyLimit,
		)),
	)
}

func newMailer(ctx context.Context, cfg *config.EmailConfig, log *slog.Logger) (notify.Mailer, error) {
	if cfg.Backend != config.BackendGmail {
		return notify.NewLogMailer(log), nil
	}

	var opts []notify.GmailOption
	if cfg.Gmail.Endpoint != "" {
		opts = append(opts, notify.WithGmailEndpoint(cfg.Gmail.Endpoint))
	}
	m, err := notify.NewGmailMailer(ctx, notify.GmailCredentials{
		ClientID:     cfg.Gmail.ClientID,
		ClientSecret: cfg.Gmail.ClientSecret,
		RefreshToken: cfg.Gmail.RefreshToken,
	}, cfg.From, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating gmail mailer: %w", err)
	}
	return m, nil
}

func newTextSender(cfg *config.SMSConfig, log *slog.Logger) notify.TextSender {
	if cfg.Backend != config.BackendTwilio {
		return notify.NewLogTextSender(log)
	}
	return notify.NewTwilioSender(cfg.AccountSID, cfg.AuthToken, cfg.From)
}

func newReporter(cfg *config.DiscordConfig, log *slog.Logger) engine.Reporter {
	if !cfg.Enabled {
		return notify.NewNoOpReporter(log)
	}
	return notify.NewDiscordReporter(cfg.WebhookURL)
}

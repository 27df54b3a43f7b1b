package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
database:
  host: localhost
  name: testdb
  user: testuser
links:
  signing_secret: s3cret
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: minimalYAML,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, DriverPostgres, cfg.Database.Driver)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "s3cret", cfg.Links.SigningSecret)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalYAML,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 5*time.Minute, cfg.Server.WriteTimeout)
				assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, "https://test.api.amadeus.com", cfg.Amadeus.BaseURL)
				assert.Equal(t, "https://test.api.amadeus.com/v1/security/oauth2/token", cfg.Amadeus.TokenURL)
				assert.Equal(t, "USD", cfg.Amadeus.Currency)
				assert.Equal(t, 10, cfg.Amadeus.ResultLimit)
				assert.Equal(t, int64(2000), cfg.Amadeus.RateLimit.DailyLimit)
				assert.Equal(t, 6*time.Hour, cfg.Schedule.CheckInterval)
				assert.Equal(t, 2*time.Second, cfg.Schedule.AlertPause)
				assert.Equal(t, BackendLog, cfg.Notifications.Email.Backend)
				assert.Equal(t, BackendLog, cfg.Notifications.SMS.Backend)
				assert.Equal(t, 365*24*time.Hour, cfg.Links.UnsubscribeTTL)
				assert.Equal(t, "flight-price-tracker", cfg.Telemetry.ServiceName)
				assert.False(t, cfg.Telemetry.Enabled)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
  password: "${TEST_DB_PASSWORD}"
links:
  signing_secret: "${TEST_LINK_SECRET}"
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "secret123",
				"TEST_LINK_SECRET": "linksecret",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
				assert.Equal(t, "linksecret", cfg.Links.SigningSecret)
			},
		},
		{
			name: "sqlite driver needs no postgres settings",
			yaml: `
database:
  driver: sqlite
links:
  signing_secret: s3cret
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, DriverSQLite, cfg.Database.Driver)
				assert.Equal(t, "flight-price-tracker.db", cfg.Database.Path)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: testdb
  user: testuser
links:
  signing_secret: s3cret
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: testdb
links:
  signing_secret: s3cret
`,
			wantErr: "database.user is required",
		},
		{
			name: "invalid database driver",
			yaml: `
database:
  driver: mysql
links:
  signing_secret: s3cret
`,
			wantErr: `database.driver must be one of: postgres, sqlite (got "mysql")`,
		},
		{
			name: "missing signing secret",
			yaml: `
database:
  driver: sqlite
`,
			wantErr: "links.signing_secret is required",
		},
		{
			name: "gmail backend missing refresh token",
			yaml: minimalYAML + `
notifications:
  email:
    backend: gmail
    from: alerts@example.com
`,
			wantErr: "notifications.email.gmail.refresh_token is required when backend is gmail",
		},
		{
			name: "twilio backend missing credentials",
			yaml: minimalYAML + `
notifications:
  sms:
    backend: twilio
    from: "+15550001111"
`,
			wantErr: "account_sid and auth_token are required when backend is twilio",
		},
		{
			name: "unknown sms backend",
			yaml: minimalYAML + `
notifications:
  sms:
    backend: carrier-pigeon
`,
			wantErr: `notifications.sms.backend must be one of: twilio, log (got "carrier-pigeon")`,
		},
		{
			name: "discord enabled without url",
			yaml: minimalYAML + `
notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.webhook_url is required when enabled",
		},
		{
			name: "multiple errors are joined",
			yaml: `
database:
  host: localhost
`,
			wantErr: "database.name is required\ndatabase.user is required\nlinks.signing_secret is required",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 10m
  base_url: https://flights.example.com/
database:
  host: db.example.com
  port: 5433
  name: flights_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
amadeus:
  api_key: key
  api_secret: secret
  base_url: https://api.amadeus.com
  currency: EUR
  result_limit: 25
  non_stop: true
  rate_limit:
    per_second: 5
    burst: 2
    daily_limit: 10000
schedule:
  check_interval: 3h
  alert_pause: 500ms
notifications:
  email:
    backend: gmail
    from: alerts@example.com
    gmail:
      client_id: cid
      client_secret: csecret
      refresh_token: rtoken
  sms:
    backend: twilio
    account_sid: AC123
    auth_token: tok
    from: "+15550001111"
  discord:
    enabled: true
    webhook_url: https://discord.com/api/webhooks/123
links:
  signing_secret: s3cret
  unsubscribe_ttl: 720h
telemetry:
  enabled: true
  otlp_endpoint: otel:4317
  insecure: true
logging:
  level: debug
  format: pretty
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 10*time.Minute, cfg.Server.WriteTimeout)
				assert.Equal(t, "https://flights.example.com", cfg.Server.BaseURL)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, "https://api.amadeus.com/v1/security/oauth2/token", cfg.Amadeus.TokenURL)
				assert.Equal(t, "EUR", cfg.Amadeus.Currency)
				assert.Equal(t, 25, cfg.Amadeus.ResultLimit)
				assert.True(t, cfg.Amadeus.NonStop)
				assert.Equal(t, 5.0, cfg.Amadeus.RateLimit.PerSecond)
				assert.Equal(t, int64(10000), cfg.Amadeus.RateLimit.DailyLimit)
				assert.Equal(t, 3*time.Hour, cfg.Schedule.CheckInterval)
				assert.Equal(t, 500*time.Millisecond, cfg.Schedule.AlertPause)
				assert.Equal(t, "rtoken", cfg.Notifications.Email.Gmail.RefreshToken)
				assert.Equal(t, "AC123", cfg.Notifications.SMS.AccountSID)
				assert.True(t, cfg.Notifications.Discord.Enabled)
				assert.Equal(t, 720*time.Hour, cfg.Links.UnsubscribeTTL)
				assert.Equal(t, "otel:4317", cfg.Telemetry.OTLPEndpoint)
				assert.True(t, cfg.Telemetry.Insecure)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "pretty", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_DotEnvNextToConfig(t *testing.T) {
	// Register cleanup for the variable godotenv will set, then clear it so
	// the .env value is picked up.
	t.Setenv("FPT_TEST_DOTENV_SECRET", "")
	require.NoError(t, os.Unsetenv("FPT_TEST_DOTENV_SECRET"))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".env"),
		[]byte("FPT_TEST_DOTENV_SECRET=from-dotenv\n"),
		0o600,
	))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  driver: sqlite
links:
  signing_secret: "${FPT_TEST_DOTENV_SECRET}"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Links.SigningSecret)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "basic DSN",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Name:     "flights",
				User:     "fpt",
				Password: "testpass",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 dbname=flights user=fpt password=testpass sslmode=disable",
		},
		{
			name: "production DSN",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				Name:     "flights",
				User:     "admin",
				Password: "s3cret",
				SSLMode:  "require",
			},
			want: "host=db.example.com port=5433 dbname=flights user=admin password=s3cret sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}

package notify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGmailMailer_SendEmail(t *testing.T) {
	t.Parallel()

	var raw string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/users/me/messages/send"), r.URL.Path)

		var body struct {
			Raw string `json:"raw"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		raw = body.Raw

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg-1","threadId":"t-1"}`))
	}))
	defer srv.Close()

	m, err := NewGmailMailer(context.Background(), GmailCredentials{}, "alerts@example.com",
		WithGmailEndpoint(srv.URL+"/"),
		WithGmailHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	err = m.SendEmail(context.Background(), Email{
		To:      "a@example.com",
		Subject: "Alert Deleted - LAX → JFK",
		HTML:    "<p>bye</p>",
	})
	require.NoError(t, err)

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)
	msg := string(decoded)
	assert.Contains(t, msg, "From: alerts@example.com\r\n")
	assert.Contains(t, msg, "To: a@example.com\r\n")
	assert.Contains(t, msg, "Subject: =?utf-8?q?")
	assert.Contains(t, msg, "Content-Type: text/html")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\n<p>bye</p>"))
}

func TestGmailMailer_SendEmailError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"Insufficient Permission"}}`))
	}))
	defer srv.Close()

	m, err := NewGmailMailer(context.Background(), GmailCredentials{}, "alerts@example.com",
		WithGmailEndpoint(srv.URL+"/"),
		WithGmailHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	err = m.SendEmail(context.Background(), Email{To: "a@example.com", Subject: "s", HTML: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending gmail message")
}

func TestBuildRFC822_ASCIISubjectUnencoded(t *testing.T) {
	t.Parallel()

	msg := string(buildRFC822("from@example.com", Email{To: "to@example.com", Subject: "Verify Your Flight Price Alert"}))
	assert.Contains(t, msg, "Subject: Verify Your Flight Price Alert\r\n")
}

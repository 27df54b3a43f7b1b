package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
)

func loadTestFixture(t *testing.T) *flightOffersResponse {
	t.Helper()
	fixture, err := loadFixture(filepath.Join("testdata", "flight_offers.json"))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return fixture
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadFixture(t *testing.T) {
	fixture := loadTestFixture(t)
	if len(fixture.Data) == 0 {
		t.Fatal("expected offers in fixture")
	}
	if fixture.Meta.Count != len(fixture.Data) {
		t.Errorf("count=%d, want %d", fixture.Meta.Count, len(fixture.Data))
	}
}

func TestTokenHandler_Success(t *testing.T) {
	handler := tokenHandler(testLogger())
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"key"},
		"client_secret": {"secret"},
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["access_token"] == nil || resp["access_token"] == "" {
		t.Error("expected non-empty access_token")
	}
	if resp["token_type"] != "Bearer" {
		t.Errorf("token_type=%v, want Bearer", resp["token_type"])
	}
	if resp["expires_in"] != float64(1799) {
		t.Errorf("expires_in=%v, want 1799", resp["expires_in"])
	}
}

func TestTokenHandler_MissingCredentials(t *testing.T) {
	handler := tokenHandler(testLogger())
	req := httptest.NewRequest(http.MethodPost, "/v1/security/oauth2/token", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusUnauthorized)
	}

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["error"] != "invalid_client" {
		t.Errorf("error=%v, want invalid_client", resp["error"])
	}
}

func search(t *testing.T, handler http.HandlerFunc, query string, auth bool) (*httptest.ResponseRecorder, flightOffersResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/v2/shopping/flight-offers?"+query, http.NoBody)
	if auth {
		req.Header.Set("Authorization", "Bearer mock")
	}
	w := httptest.NewRecorder()
	handler(w, req)

	var resp flightOffersResponse
	if w.Code == http.StatusOK {
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
	}
	return w, resp
}

func TestSearchHandler_MatchesRoute(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := searchHandler(testLogger(), fixture)

	w, resp := search(t, handler,
		"originLocationCode=LAX&destinationLocationCode=JFK&departureDate=2030-06-01", true)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	if len(resp.Data) != 3 {
		t.Errorf("offers=%d, want 3", len(resp.Data))
	}
	if resp.Meta.Count != len(resp.Data) {
		t.Errorf("count=%d, want %d", resp.Meta.Count, len(resp.Data))
	}
}

func TestSearchHandler_CaseInsensitiveCodes(t *testing.T) {
	handler := searchHandler(testLogger(), loadTestFixture(t))

	_, resp := search(t, handler,
		"originLocationCode=lax&destinationLocationCode=jfk&departureDate=2030-06-01", true)

	if len(resp.Data) != 3 {
		t.Errorf("offers=%d, want 3", len(resp.Data))
	}
}

func TestSearchHandler_Max(t *testing.T) {
	handler := searchHandler(testLogger(), loadTestFixture(t))

	_, resp := search(t, handler,
		"originLocationCode=LAX&destinationLocationCode=JFK&departureDate=2030-06-01&max=1", true)

	if len(resp.Data) != 1 {
		t.Errorf("offers=%d, want 1", len(resp.Data))
	}
}

func TestSearchHandler_NoResults(t *testing.T) {
	handler := searchHandler(testLogger(), loadTestFixture(t))

	w, resp := search(t, handler,
		"originLocationCode=SFO&destinationLocationCode=NRT&departureDate=2030-06-01", true)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Errorf("data=%v, want empty array", resp.Data)
	}
}

func TestSearchHandler_MissingParams(t *testing.T) {
	handler := searchHandler(testLogger(), loadTestFixture(t))

	w, _ := search(t, handler, "originLocationCode=LAX", true)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSearchHandler_RequiresBearer(t *testing.T) {
	handler := searchHandler(testLogger(), loadTestFixture(t))

	w, _ := search(t, handler,
		"originLocationCode=LAX&destinationLocationCode=JFK&departureDate=2030-06-01", false)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusUnauthorized)
	}
}

// Package main implements a mock Amadeus API server for local development.
// It serves canned flight offers from a JSON fixture to simulate the Flight
// Offers Search API and OAuth token endpoint without real credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type flightOffersResponse struct {
	Meta struct {
		Count int `json:"count"`
	} `json:"meta"`
	Data []json.RawMessage `json:"data"`
}

// offerIndex holds the fields searches are filtered on.
type offerIndex struct {
	Itineraries []struct {
		Segments []struct {
			Departure struct {
				IATACode string `json:"iataCode"`
				At       string `json:"at"`
			} `json:"departure"`
			Arrival struct {
				IATACode string `json:"iataCode"`
			} `json:"arrival"`
		} `json:"segments"`
	} `json:"itineraries"`
}

type indexedOffer struct {
	raw         json.RawMessage
	origin      string
	destination string
	date        string
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/flight_offers.json", "path to flight offers fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "offers", len(fixture.Data))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/security/oauth2/token", tokenHandler(logger))
	mux.HandleFunc("GET /v2/shopping/flight-offers", searchHandler(logger, fixture))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Amadeus server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*flightOffersResponse, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var resp flightOffersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &resp, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Credentials are not checked, only their presence.
		if err := r.ParseForm(); err != nil ||
			r.PostForm.Get("grant_type") != "client_credentials" ||
			r.PostForm.Get("client_id") == "" {
			logger.Warn("token request missing client credentials")
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"error":             "invalid_client",
				"error_description": "Client credentials are invalid",
				"code":              38187,
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"type":         "amadeusOAuth2Token",
			"access_token": "mock-token-" + strconv.FormatInt(int64(os.Getpid()), 16),
			"expires_in":   1799,
			"token_type":   "Bearer",
			"state":        "approved",
		})
		logger.Info("issued mock token")
	}
}

func searchHandler(logger *slog.Logger, fixture *flightOffersResponse) http.HandlerFunc {
	offers := make([]indexedOffer, 0, len(fixture.Data))
	for _, raw := range fixture.Data {
		var idx offerIndex
		//nolint:errcheck,gosec // fixture data is trusted; indexing is best-effort
		json.Unmarshal(raw, &idx)
		o := indexedOffer{raw: raw}
		if len(idx.Itineraries) > 0 && len(idx.Itineraries[0].Segments) > 0 {
			segs := idx.Itineraries[0].Segments
			o.origin = segs[0].Departure.IATACode
			o.destination = segs[len(segs)-1].Arrival.IATACode
			o.date, _, _ = strings.Cut(segs[0].Departure.At, "T")
		}
		offers = append(offers, o)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"errors": []map[string]any{{
					"status": 401,
					"code":   38190,
					"title":  "Invalid access token",
					"detail": "The access token provided in the Authorization header is invalid",
				}},
			})
			return
		}

		q := r.URL.Query()
		origin := strings.ToUpper(q.Get("originLocationCode"))
		destination := strings.ToUpper(q.Get("destinationLocationCode"))
		date := q.Get("departureDate")
		if origin == "" || destination == "" || date == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"errors": []map[string]any{{
					"status": 400,
					"code":   32171,
					"title":  "MANDATORY DATA MISSING",
					"detail": "originLocationCode, destinationLocationCode and departureDate are required",
				}},
			})
			return
		}

		limit := 250
		if v, err := strconv.Atoi(q.Get("max")); err == nil && v > 0 {
			limit = v
		}

		matched := []json.RawMessage{}
		for _, o := range offers {
			if o.origin == origin && o.destination == destination && o.date == date {
				matched = append(matched, o.raw)
			}
		}
		total := len(matched)
		if len(matched) > limit {
			matched = matched[:limit]
		}

		resp := flightOffersResponse{Data: matched}
		resp.Meta.Count = len(matched)
		writeJSON(w, http.StatusOK, resp)
		logger.Info("search",
			"origin", origin, "destination", destination, "date", date,
			"matched", total, "returned", len(matched),
		)
	}
}

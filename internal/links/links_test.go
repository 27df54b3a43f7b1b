package links_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/flight-price-tracker/internal/links"
	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

func TestSigner_RoundTrip(t *testing.T) {
	t.Parallel()

	s := links.NewSigner("secret", time.Hour)

	token, err := s.Sign("alert-1")
	require.NoError(t, err)

	id, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alert-1", id)
}

func TestSigner_Verify(t *testing.T) {
	t.Parallel()

	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := links.NewSigner("secret", time.Hour,
		links.WithNowFunc(func() time.Time { return issued }))
	token, err := issuer.Sign("alert-1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		verifier *links.Signer
		token    string
		wantErr  bool
	}{
		{
			name: "valid within ttl",
			verifier: links.NewSigner("secret", time.Hour,
				links.WithNowFunc(func() time.Time { return issued.Add(30 * time.Minute) })),
			token: token,
		},
		{
			name: "expired",
			verifier: links.NewSigner("secret", time.Hour,
				links.WithNowFunc(func() time.Time { return issued.Add(2 * time.Hour) })),
			token:   token,
			wantErr: true,
		},
		{
			name: "wrong secret",
			verifier: links.NewSigner("other", time.Hour,
				links.WithNowFunc(func() time.Time { return issued })),
			token:   token,
			wantErr: true,
		},
		{
			name:     "garbage",
			verifier: links.NewSigner("secret", time.Hour),
			token:    "not-a-jwt",
			wantErr:  true,
		},
		{
			name: "alg none rejected",
			verifier: links.NewSigner("secret", time.Hour,
				links.WithNowFunc(func() time.Time { return issued })),
			token:   "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJhbGVydC0xIn0.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, err := tt.verifier.Verify(tt.token)
			if tt.wantErr {
				require.ErrorIs(t, err, links.ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alert-1", id)
		})
	}
}

func TestSigner_SignRejectsEmptyID(t *testing.T) {
	t.Parallel()

	_, err := links.NewSigner("secret", 0).Sign("")
	require.Error(t, err)
}

func TestBuilder_Search(t *testing.T) {
	t.Parallel()

	b := links.NewBuilder("https://fares.example.com/", links.NewSigner("s", 0))
	rd := domain.NewDate(2030, 6, 10)

	tests := []struct {
		name    string
		details domain.AlertDetails
		want    string
	}{
		{
			name: "one-way",
			details: domain.AlertDetails{
				Origin: "LAX", Destination: "JFK",
				DepartureDate: domain.NewDate(2030, 6, 1),
				TripType:      domain.TripOneWay,
			},
			want: "https://fares.example.com/search?origin=LAX&destination=JFK&departure_date=2030-06-01&trip_type=one-way",
		},
		{
			name: "round-trip",
			details: domain.AlertDetails{
				Origin: "LAX", Destination: "JFK",
				DepartureDate: domain.NewDate(2030, 6, 1),
				ReturnDate:    &rd,
				TripType:      domain.TripRoundTrip,
			},
			want: "https://fares.example.com/search?origin=LAX&destination=JFK&departure_date=2030-06-01&return_date=2030-06-10&trip_type=round-trip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, b.Search(&tt.details))
		})
	}
}

func TestBuilder_Unsubscribe(t *testing.T) {
	t.Parallel()

	signer := links.NewSigner("s", time.Hour)
	b := links.NewBuilder("http://localhost:8080", signer)

	link, err := b.Unsubscribe("alert-9")
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/unsubscribe", u.Path)

	id, err := signer.Verify(u.Query().Get("token"))
	require.NoError(t, err)
	assert.Equal(t, "alert-9", id)
}

func TestBuilder_VerifyEmail(t *testing.T) {
	t.Parallel()

	b := links.NewBuilder("http://localhost:8080", links.NewSigner("s", 0))
	assert.Equal(t, "http://localhost:8080/verify-email?token=abc", b.VerifyEmail("abc"))
	assert.Equal(t, "http://localhost:8080/", b.Home())
}

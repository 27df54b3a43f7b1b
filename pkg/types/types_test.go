package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_Compare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Date
		want int
	}{
		{name: "same day", a: NewDate(2026, 3, 1), b: NewDate(2026, 3, 1), want: 0},
		{name: "earlier day", a: NewDate(2026, 3, 1), b: NewDate(2026, 3, 2), want: -1},
		{name: "later month", a: NewDate(2026, 4, 1), b: NewDate(2026, 3, 31), want: 1},
		{name: "earlier year", a: NewDate(2025, 12, 31), b: NewDate(2026, 1, 1), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}

func TestDateOf_IgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	late := time.Date(2026, 5, 10, 23, 59, 59, 0, time.UTC)
	early := time.Date(2026, 5, 10, 0, 0, 1, 0, time.UTC)

	assert.Equal(t, DateOf(early), DateOf(late))
	assert.False(t, DateOf(early).Before(DateOf(late)))
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2026-02-15")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2026, time.February, 15), d)
	assert.Equal(t, "2026-02-15", d.String())

	_, err = ParseDate("15/02/2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	type wrapper struct {
		D  Date  `json:"d"`
		RD *Date `json:"rd,omitempty"`
	}

	out, err := json.Marshal(wrapper{D: NewDate(2026, 7, 4)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2026-07-04"}`, string(out))

	var in wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2026-07-04","rd":"2026-07-11"}`), &in))
	assert.Equal(t, NewDate(2026, 7, 4), in.D)
	require.NotNil(t, in.RD)
	assert.Equal(t, NewDate(2026, 7, 11), *in.RD)

	require.Error(t, json.Unmarshal([]byte(`{"d":"July 4"}`), &in))
}

func TestAlert_Eligible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		alert Alert
		want  bool
	}{
		{name: "active email verified", alert: Alert{IsActive: true, EmailVerified: true}, want: true},
		{name: "active phone verified", alert: Alert{IsActive: true, PhoneVerified: true}, want: true},
		{name: "active unverified", alert: Alert{IsActive: true}, want: false},
		{name: "inactive verified", alert: Alert{EmailVerified: true, PhoneVerified: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.alert.Eligible())
		})
	}
}

func TestAlert_Validate(t *testing.T) {
	t.Parallel()

	dep := NewDate(2026, 6, 1)
	ret := NewDate(2026, 6, 10)
	early := NewDate(2026, 5, 20)

	tests := []struct {
		name    string
		alert   Alert
		wantErr string
	}{
		{name: "valid one-way", alert: Alert{DepartureDate: dep, TripType: TripOneWay}},
		{name: "valid round-trip", alert: Alert{DepartureDate: dep, ReturnDate: &ret, TripType: TripRoundTrip}},
		{
			name:    "one-way with return date",
			alert:   Alert{DepartureDate: dep, ReturnDate: &ret, TripType: TripOneWay},
			wantErr: "one-way trip has a return date",
		},
		{
			name:    "round-trip without return date",
			alert:   Alert{DepartureDate: dep, TripType: TripRoundTrip},
			wantErr: "round-trip is missing a return date",
		},
		{
			name:    "return before departure",
			alert:   Alert{DepartureDate: dep, ReturnDate: &early, TripType: TripRoundTrip},
			wantErr: "before departure",
		},
		{
			name:    "missing departure",
			alert:   Alert{TripType: TripOneWay},
			wantErr: "missing departure date",
		},
		{
			name:    "unknown trip type",
			alert:   Alert{DepartureDate: dep, TripType: "multi-city"},
			wantErr: "unknown trip type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.alert.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidAlert)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAlert_SearchRequest_ReturnDateOnlyForRoundTrip(t *testing.T) {
	t.Parallel()

	ret := NewDate(2026, 6, 10)

	rt := Alert{Origin: "LAX", Destination: "JFK", DepartureDate: NewDate(2026, 6, 1), ReturnDate: &ret, TripType: TripRoundTrip}
	req := rt.SearchRequest(10)
	require.NotNil(t, req.ReturnDate)
	assert.Equal(t, ret, *req.ReturnDate)
	assert.Equal(t, 10, req.Limit)

	ow := rt
	ow.TripType = TripOneWay
	assert.Nil(t, ow.SearchRequest(10).ReturnDate)
}

func TestPassSummary_Record(t *testing.T) {
	t.Parallel()

	var s PassSummary
	s.Record(Expired("a"))
	s.Record(NotifiedAndRatcheted("b", decimal.NewFromInt(420)))
	s.Record(NoChange("c"))
	s.Record(NoChange("d"))
	s.Record(Skipped("e", SkipProvider, assert.AnError))

	assert.Equal(t, 1, s.Expired)
	assert.Equal(t, 1, s.Notified)
	assert.Equal(t, 2, s.NoChange)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 5, s.Processed())
	assert.Len(t, s.Outcomes, 5)
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$420.00", FormatPrice(decimal.NewFromInt(420)))
	assert.Equal(t, "$99.50", FormatPrice(decimal.RequireFromString("99.5")))
}

package amadeus

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

var isoDurationRe = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:\d+S)?)?$`)

// ParseISODuration converts an ISO-8601 duration such as "PT5H30M" or
// "P1DT2H" to whole minutes.
func ParseISODuration(s string) (int, error) {
	m := isoDurationRe.FindStringSubmatch(s)
	if m == nil || s == "P" || s == "PT" {
		return 0, fmt.Errorf("parsing duration %q: unsupported format", s)
	}

	atoi := func(v string) int {
		if v == "" {
			return 0
		}
		n, _ := strconv.Atoi(v) //nolint:errcheck // regexp guarantees digits
		return n
	}

	return atoi(m[1])*24*60 + atoi(m[2])*60 + atoi(m[3]), nil
}

// ToOffers converts API flight offers into domain offers sorted by price
// ascending (stable) and truncated to limit. Offers with an unparseable
// price or no itinerary are dropped.
func ToOffers(data []FlightOffer, limit int) []domain.Offer {
	offers := make([]domain.Offer, 0, len(data))
	for i := range data {
		if o, ok := toOffer(&data[i]); ok {
			offers = append(offers, o)
		}
	}

	slices.SortStableFunc(offers, func(a, b domain.Offer) int {
		return a.Price.Cmp(b.Price)
	})

	if limit > 0 && len(offers) > limit {
		offers = offers[:limit]
	}
	return offers
}

func toOffer(fo *FlightOffer) (domain.Offer, bool) {
	if len(fo.Itineraries) == 0 || len(fo.Itineraries[0].Segments) == 0 {
		return domain.Offer{}, false
	}

	total := fo.Price.Total
	if total == "" {
		total = fo.Price.GrandTotal
	}
	price, err := decimal.NewFromString(total)
	if err != nil {
		return domain.Offer{}, false
	}

	outbound := fo.Itineraries[0]
	first := outbound.Segments[0]
	last := outbound.Segments[len(outbound.Segments)-1]

	o := domain.Offer{
		Price:        price,
		Currency:     fo.Price.Currency,
		Origin:       first.Departure.IATACode,
		Destination:  last.Arrival.IATACode,
		Airline:      first.CarrierCode,
		FlightNumber: first.CarrierCode + first.Number,
		Transfers:    len(outbound.Segments) - 1,
	}
	if d, err := segmentDate(first); err == nil {
		o.DepartureDate = d
	}
	if mins, err := ParseISODuration(outbound.Duration); err == nil {
		o.DurationMinutes = mins
	}

	if len(fo.Itineraries) > 1 && len(fo.Itineraries[1].Segments) > 0 {
		inbound := fo.Itineraries[1]
		o.ReturnTransfers = len(inbound.Segments) - 1
		if d, err := segmentDate(inbound.Segments[0]); err == nil {
			o.ReturnDate = &d
		}
	}

	o.Link = BookingLink(o.Origin, o.Destination, o.DepartureDate)
	return o, true
}

// segmentDate extracts the calendar date from a local "2006-01-02T15:04:05"
// timestamp.
func segmentDate(s Segment) (domain.Date, error) {
	at := s.Departure.At
	if len(at) < len(domain.DateLayout) {
		return domain.Date{}, fmt.Errorf("parsing segment time %q: too short", at)
	}
	return domain.ParseDate(at[:len(domain.DateLayout)])
}

// BookingLink returns a generic flight search link for the route and date.
func BookingLink(origin, destination string, departure domain.Date) string {
	q := fmt.Sprintf("flights from %s to %s on %s", origin, destination, departure)
	return "https://www.google.com/travel/flights?q=" + url.QueryEscape(q)
}

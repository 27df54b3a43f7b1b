package notify

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

const verificationSubject = "Verify Your Flight Price Alert"

func priceDropSubject(d *domain.AlertDetails, o *domain.Offer) string {
	return fmt.Sprintf("Price Drop Alert: %s - %s", domain.FormatPrice(o.Price), d.Route())
}

func expiredSubject(d *domain.AlertDetails) string {
	return "Price Alert Expired - " + d.Route()
}

func deletedSubject(d *domain.AlertDetails) string {
	return "Alert Deleted - " + d.Route()
}

func activatedSubject(d *domain.AlertDetails) string {
	return "Alert Activated - " + d.Route()
}

// savings is how far the offer undercuts the threshold.
func savings(d *domain.AlertDetails, o *domain.Offer) decimal.Decimal {
	return d.PriceThreshold.Sub(o.Price)
}

func priceDropText(d *domain.AlertDetails, o *domain.Offer) string {
	return fmt.Sprintf("PRICE DROP!\n%s %s (Save $%s)\n",
		d.Route(), domain.FormatPrice(o.Price), savings(d, o).StringFixedBank(0))
}

func activatedText(d *domain.AlertDetails, unsubscribe string) string {
	return fmt.Sprintf("Alert Active!\n%s\nWatching prices under %s\nStop: %s",
		d.Route(), domain.FormatPrice(d.PriceThreshold), unsubscribe)
}

func deletedText(d *domain.AlertDetails) string {
	return fmt.Sprintf("Alert Deleted\n%s\nUnsubscribed - info removed.\n", d.Route())
}

func expiredText(d *domain.AlertDetails) string {
	return fmt.Sprintf("Alert Expired\n%s\nAlert removed - departure date passed.\n", d.Route())
}

func verificationText(code string) string {
	return "Your Flight Price Tracker verification code is: " + code
}

// tripLabel renders "round-trip" as "Round Trip".
func tripLabel(t domain.TripType) string {
	words := strings.Fields(strings.ReplaceAll(string(t), "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

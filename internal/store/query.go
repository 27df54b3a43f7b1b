package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated   = "created_at"
	orderByDeparture = "departure_date"
	orderByThreshold = "price_threshold"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated:   "created_at ASC",
	orderByDeparture: "departure_date ASC, created_at ASC",
	orderByThreshold: "price_threshold ASC, created_at ASC",
}

const defaultOrderBy = "created_at DESC"

const baseAlertsSelect = `SELECT id, origin, destination, departure_date, return_date,
	trip_type, price_threshold, is_active,
	COALESCE(email, ''), COALESCE(phone, ''), email_verified, phone_verified,
	COALESCE(email_token, ''), COALESCE(phone_code_hash, ''),
	last_checked, created_at
FROM alerts`

const countAlertsSelect = "SELECT COUNT(*) FROM alerts"

// AlertQuery defines optional filters for listing alerts.
type AlertQuery struct {
	Active      *bool
	Verified    *bool // at least one verified contact
	Origin      *string
	Destination *string
	Email       *string
	Phone       *string
	Limit       int // default 50
	Offset      int
	OrderBy     string // "created_at", "departure_date", "price_threshold"
}

// placeholderFunc renders the n-th (1-based) bind parameter.
type placeholderFunc func(n int) string

func dollarPlaceholder(n int) string { return fmt.Sprintf("$%d", n) }

func questionPlaceholder(int) string { return "?" }

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an alert
// query. It returns two SQL strings (one for the data query, one for the
// count query) and the positional parameters.
func (q *AlertQuery) ToSQL(ph placeholderFunc) (dataSQL, countSQL string, args []any) {
	if ph == nil {
		ph = dollarPlaceholder
	}

	var conditions []string
	add := func(expr string, v any) {
		args = append(args, v)
		conditions = append(conditions, fmt.Sprintf(expr, ph(len(args))))
	}

	if q.Active != nil {
		add("is_active = %s", *q.Active)
	}
	if q.Verified != nil {
		add("(email_verified OR phone_verified) = %s", *q.Verified)
	}
	if q.Origin != nil {
		add("origin = %s", strings.ToUpper(*q.Origin))
	}
	if q.Destination != nil {
		add("destination = %s", strings.ToUpper(*q.Destination))
	}
	if q.Email != nil {
		add("email = %s", *q.Email)
	}
	if q.Phone != nil {
		add("phone = %s", *q.Phone)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseAlertsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countAlertsSelect + whereClause

	return dataSQL, countSQL, args
}

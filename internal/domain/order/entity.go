package order

import (
	"strings"
	"time"
)

// Record is one row of the shared order store. Records are immutable
// once appended; there is no update or delete path.
type Record struct {
	Name        string
	Phone       string
	Location    string
	Summary     string
	DeliveryFee int
	Total       int
	MapsLink    string
	Date        time.Time
}

// Submission is the raw customer input for one order.
type Submission struct {
	Name        string
	Phone       string
	MpesaNumber string
	Location    string
	MapsLink    string
	Quantities  map[string]int
}

// NewRecord validates a submission against its quote and builds the
// store record. A record only comes into existence when name, phone,
// M-PESA number, a real location and at least one item are all present.
func NewRecord(sub Submission, quote Quote, at time.Time) (*Record, error) {
	if strings.TrimSpace(sub.Name) == "" ||
		strings.TrimSpace(sub.Phone) == "" ||
		strings.TrimSpace(sub.MpesaNumber) == "" {
		return nil, ErrMissingField
	}
	if sub.Location == "" || sub.Location == PlaceholderLocation {
		return nil, ErrLocationNotChosen
	}
	if quote.Items == 0 {
		return nil, ErrEmptyOrder
	}

	return &Record{
		Name:        sub.Name,
		Phone:       sub.Phone,
		Location:    sub.Location,
		Summary:     quote.Summary(),
		DeliveryFee: quote.DeliveryFee,
		Total:       quote.Total,
		MapsLink:    sub.MapsLink,
		Date:        at,
	}, nil
}

package csvstore

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/oasis00-1/oasis-springs-app/internal/domain/order"
)

// TimeLayout is the Date column format of the store file.
const TimeLayout = "2006-01-02 15:04:05"

// Header is the fixed column set of the store file. The order matters:
// every row is written and read positionally.
var Header = []string{
	"Name",
	"Phone",
	"Location",
	"Order",
	"Delivery Fee",
	"Total",
	"Google Maps Link",
	"Date",
}

// WriteRecords encodes records in the store's flat format, header first.
// The admin export reuses it so a re-exported subset reloads to the
// same rows.
func WriteRecords(w io.Writer, recs []order.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for i := range recs {
		if err := cw.Write(encodeRow(&recs[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func encodeRow(rec *order.Record) []string {
	date := ""
	if !rec.Date.IsZero() {
		date = rec.Date.Format(TimeLayout)
	}
	return []string{
		rec.Name,
		rec.Phone,
		rec.Location,
		rec.Summary,
		strconv.Itoa(rec.DeliveryFee),
		strconv.Itoa(rec.Total),
		rec.MapsLink,
		date,
	}
}

// decodeRow is lenient: numeric cells that fail to parse coerce to 0 and
// unparseable dates coerce to the zero time, which the reporting flow
// treats as "unset" rather than an error.
func decodeRow(row []string) (order.Record, bool) {
	if len(row) < len(Header) {
		return order.Record{}, false
	}
	rec := order.Record{
		Name:     row[0],
		Phone:    row[1],
		Location: row[2],
		Summary:  row[3],
		MapsLink: row[6],
	}
	rec.DeliveryFee, _ = strconv.Atoi(row[4])
	rec.Total, _ = strconv.Atoi(row[5])
	if t, err := time.Parse(TimeLayout, row[7]); err == nil {
		rec.Date = t
	}
	return rec, true
}

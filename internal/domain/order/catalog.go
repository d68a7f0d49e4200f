package order

import (
	"fmt"
	"sort"
	"strings"
)

// PlaceholderLocation is the unselected location value coming from the
// order form. It is never a deliverable location.
const PlaceholderLocation = "Select"

type Product struct {
	Name  string
	Price int
}

// Catalog is the fixed product list, in display order.
type Catalog []Product

func (c Catalog) Price(name string) (int, bool) {
	for _, p := range c {
		if p.Name == name {
			return p.Price, true
		}
	}
	return 0, false
}

// FeeTable maps a delivery location to its flat surcharge. Locations not
// in the table cost nothing to deliver to; that is policy, not an error.
type FeeTable map[string]int

func (f FeeTable) Fee(location string) int {
	return f[location]
}

// Line is one priced order line.
type Line struct {
	Product  string
	Quantity int
	Subtotal int
}

// Quote is the priced breakdown of a set of requested quantities.
type Quote struct {
	Lines       []Line
	Items       int
	Subtotal    int
	DeliveryFee int
	Total       int
}

// ComputeQuote prices the requested quantities against the catalog and
// fee table. It is pure: same inputs, same quote, no side effects.
// Lines follow catalog order so quotes are deterministic.
func ComputeQuote(catalog Catalog, fees FeeTable, quantities map[string]int, location string) (Quote, error) {
	for name, qty := range quantities {
		if qty < 0 {
			return Quote{}, fmt.Errorf("%w: %s", ErrInvalidQuantity, name)
		}
		if _, ok := catalog.Price(name); !ok {
			return Quote{}, fmt.Errorf("%w: %s", ErrUnknownProduct, name)
		}
	}

	q := Quote{DeliveryFee: fees.Fee(location)}
	for _, p := range catalog {
		qty := quantities[p.Name]
		if qty <= 0 {
			continue
		}
		q.Lines = append(q.Lines, Line{
			Product:  p.Name,
			Quantity: qty,
			Subtotal: p.Price * qty,
		})
		q.Items += qty
		q.Subtotal += p.Price * qty
	}
	q.Total = q.Subtotal + q.DeliveryFee
	return q, nil
}

// Summary serializes the quote lines as "product xQty; ..." for the
// Order column of the store.
func (q Quote) Summary() string {
	parts := make([]string, 0, len(q.Lines))
	for _, l := range q.Lines {
		parts = append(parts, fmt.Sprintf("%s x%d", l.Product, l.Quantity))
	}
	return strings.Join(parts, "; ")
}

// Locations lists the deliverable locations in the fee table, sorted.
func (f FeeTable) Locations() []string {
	out := make([]string, 0, len(f))
	for loc := range f {
		out = append(out, loc)
	}
	sort.Strings(out)
	return out
}

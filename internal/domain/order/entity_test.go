package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() Submission {
	return Submission{
		Name:        "Jane Doe",
		Phone:       "0710000001",
		MpesaNumber: "254710000001",
		Location:    "Bamburi",
		MapsLink:    "https://maps.example/pin",
		Quantities:  map[string]int{"20L Bottle": 1},
	}
}

func TestNewRecord_Valid(t *testing.T) {
	at := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	quote, err := ComputeQuote(testCatalog(), testFees(), map[string]int{"20L Bottle": 1}, "Bamburi")
	require.NoError(t, err)

	rec, err := NewRecord(validSubmission(), quote, at)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, "0710000001", rec.Phone)
	assert.Equal(t, "Bamburi", rec.Location)
	assert.Equal(t, "20L Bottle x1", rec.Summary)
	assert.Equal(t, 100, rec.DeliveryFee)
	assert.Equal(t, 250, rec.Total)
	assert.Equal(t, "https://maps.example/pin", rec.MapsLink)
	assert.Equal(t, at, rec.Date)
}

func TestNewRecord_MissingFields(t *testing.T) {
	quote, err := ComputeQuote(testCatalog(), testFees(), map[string]int{"20L Bottle": 1}, "Bamburi")
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(*Submission)
	}{
		{"empty name", func(s *Submission) { s.Name = "" }},
		{"blank name", func(s *Submission) { s.Name = "   " }},
		{"empty phone", func(s *Submission) { s.Phone = "" }},
		{"empty mpesa number", func(s *Submission) { s.MpesaNumber = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := validSubmission()
			tc.mutate(&sub)

			rec, err := NewRecord(sub, quote, time.Now())

			assert.ErrorIs(t, err, ErrMissingField)
			assert.Nil(t, rec)
		})
	}
}

func TestNewRecord_PlaceholderLocation(t *testing.T) {
	// The form placeholder rejects confirmation no matter the quantities.
	quote, err := ComputeQuote(testCatalog(), testFees(), map[string]int{"20L Bottle": 5}, PlaceholderLocation)
	require.NoError(t, err)
	assert.Equal(t, 0, quote.DeliveryFee)

	sub := validSubmission()
	sub.Location = PlaceholderLocation

	rec, err := NewRecord(sub, quote, time.Now())

	assert.ErrorIs(t, err, ErrLocationNotChosen)
	assert.Nil(t, rec)
}

func TestNewRecord_EmptyOrder(t *testing.T) {
	quote, err := ComputeQuote(testCatalog(), testFees(), map[string]int{"20L Bottle": 0}, "Nyali")
	require.NoError(t, err)

	sub := validSubmission()
	sub.Quantities = map[string]int{"20L Bottle": 0}

	rec, err := NewRecord(sub, quote, time.Now())

	assert.ErrorIs(t, err, ErrEmptyOrder)
	assert.Nil(t, rec)
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrMissingField))
	assert.True(t, IsValidation(ErrLocationNotChosen))
	assert.True(t, IsValidation(ErrEmptyOrder))
	assert.True(t, IsValidation(ErrInvalidQuantity))
	assert.True(t, IsValidation(ErrUnknownProduct))
	assert.False(t, IsValidation(ErrNoOrders))
	assert.False(t, IsValidation(assert.AnError))
}

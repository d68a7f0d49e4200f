package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oasis00-1/oasis-springs-app/internal/application/report"
	domain "github.com/oasis00-1/oasis-springs-app/internal/domain/order"
	"github.com/oasis00-1/oasis-springs-app/internal/infrastructure/persistence/csvstore"
)

// dateLayout is the date-only format accepted by the filter query params.
const dateLayout = "2006-01-02"

type AdminHandler struct {
	svc *report.Service
}

func NewAdminHandler(svc *report.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// ListOrders returns the filtered order set plus summary aggregates.
// Filters: ?name= substring, ?location= exact or "All", ?from= / ?to=
// inclusive dates.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	f, err := filterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recs, sum, err := h.svc.Query(c.Request.Context(), f)
	if errors.Is(err, domain.ErrNoOrders) {
		c.JSON(http.StatusOK, gin.H{
			"notice":  "no order data recorded yet",
			"orders":  []recordResponse{},
			"summary": summaryResponse{},
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]recordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toRecordResponse(rec))
	}
	c.JSON(http.StatusOK, gin.H{
		"orders": out,
		"summary": summaryResponse{
			Orders:          sum.Orders,
			TotalSales:      sum.TotalSales,
			UniqueCustomers: sum.UniqueCustomers,
		},
	})
}

// ExportOrders streams the filtered subset as a CSV attachment in the
// store's exact flat format.
func (h *AdminHandler) ExportOrders(c *gin.Context) {
	f, err := filterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="filtered_orders.csv"`)
	if err := h.svc.Export(c.Request.Context(), f, c.Writer); err != nil {
		if errors.Is(err, domain.ErrNoOrders) {
			c.Header("Content-Disposition", "")
			c.JSON(http.StatusNotFound, gin.H{"error": "no order data recorded yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

type recordResponse struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Order       string `json:"order"`
	DeliveryFee int    `json:"delivery_fee"`
	Total       int    `json:"total"`
	MapsLink    string `json:"maps_link,omitempty"`
	Date        string `json:"date"`
}

type summaryResponse struct {
	Orders          int `json:"orders"`
	TotalSales      int `json:"total_sales"`
	UniqueCustomers int `json:"unique_customers"`
}

func toRecordResponse(rec domain.Record) recordResponse {
	date := ""
	if !rec.Date.IsZero() {
		date = rec.Date.Format(csvstore.TimeLayout)
	}
	return recordResponse{
		Name:        rec.Name,
		Phone:       rec.Phone,
		Location:    rec.Location,
		Order:       rec.Summary,
		DeliveryFee: rec.DeliveryFee,
		Total:       rec.Total,
		MapsLink:    rec.MapsLink,
		Date:        date,
	}
}

func filterFromQuery(c *gin.Context) (report.Filter, error) {
	f := report.Filter{
		Name:     c.Query("name"),
		Location: c.Query("location"),
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return report.Filter{}, fmt.Errorf("invalid from date %q, want YYYY-MM-DD", v)
		}
		f.From = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return report.Filter{}, fmt.Errorf("invalid to date %q, want YYYY-MM-DD", v)
		}
		// Inclusive end of day.
		f.To = t.Add(24*time.Hour - time.Second)
	}
	return f, nil
}

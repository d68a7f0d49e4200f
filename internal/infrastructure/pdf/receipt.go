package pdf

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/oasis00-1/oasis-springs-app/internal/config"
	"github.com/oasis00-1/oasis-springs-app/internal/domain/order"
)

// Renderer turns a persisted record plus its priced lines into a
// single-page PDF receipt written to a temp file.
type Renderer struct {
	cfg config.ReceiptConfig
	pay config.MpesaConfig
}

func NewRenderer(cfg config.ReceiptConfig, pay config.MpesaConfig) *Renderer {
	return &Renderer{cfg: cfg, pay: pay}
}

// Render writes the receipt and returns the temp file path plus the
// download name derived from the customer name. It depends only on its
// inputs; the branding logo is optional and skipped when the file is
// absent.
func (r *Renderer) Render(rec *order.Record, lines []order.Line) (string, string, error) {
	if rec == nil {
		return "", "", fmt.Errorf("record is nil")
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	r.header(doc)
	r.customerInfo(doc, rec)
	r.orderTable(doc, rec, lines)
	r.paymentInfo(doc)

	tmp, err := os.CreateTemp("", "receipt_*.pdf")
	if err != nil {
		return "", "", fmt.Errorf("create receipt file: %w", err)
	}
	path := tmp.Name()
	tmp.Close()

	if err := doc.OutputFileAndClose(path); err != nil {
		return "", "", fmt.Errorf("write receipt: %w", err)
	}
	return path, FileName(rec.Name), nil
}

func (r *Renderer) header(doc *fpdf.Fpdf) {
	doc.SetFont("Arial", "B", 16)
	if r.cfg.LogoPath != "" {
		if _, err := os.Stat(r.cfg.LogoPath); err == nil {
			doc.Image(r.cfg.LogoPath, 10, 8, 25, 0, false, "", 0, "")
		}
	}
	doc.CellFormat(0, 10, r.cfg.Title, "", 1, "C", false, 0, "")
	doc.Ln(10)
}

func (r *Renderer) customerInfo(doc *fpdf.Fpdf, rec *order.Record) {
	doc.SetFont("Arial", "", 12)
	doc.CellFormat(0, 8, "Customer: "+rec.Name, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 8, "Phone: "+rec.Phone, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 8, "Location: "+rec.Location, "", 1, "L", false, 0, "")
	if rec.MapsLink != "" {
		doc.CellFormat(0, 8, "Maps Pin: "+rec.MapsLink, "", 1, "L", false, 0, "")
	}
	doc.Ln(5)
}

func (r *Renderer) orderTable(doc *fpdf.Fpdf, rec *order.Record, lines []order.Line) {
	doc.SetFont("Arial", "B", 12)
	doc.CellFormat(80, 8, "Product", "1", 0, "L", false, 0, "")
	doc.CellFormat(30, 8, "Qty", "1", 0, "L", false, 0, "")
	doc.CellFormat(40, 8, "Subtotal", "1", 1, "L", false, 0, "")

	doc.SetFont("Arial", "", 12)
	for _, l := range lines {
		doc.CellFormat(80, 8, l.Product, "1", 0, "L", false, 0, "")
		doc.CellFormat(30, 8, fmt.Sprintf("%d", l.Quantity), "1", 0, "L", false, 0, "")
		doc.CellFormat(40, 8, "Ksh "+formatAmount(l.Subtotal), "1", 1, "L", false, 0, "")
	}
	doc.CellFormat(110, 8, "Delivery Fee", "1", 0, "L", false, 0, "")
	doc.CellFormat(40, 8, "Ksh "+formatAmount(rec.DeliveryFee), "1", 1, "L", false, 0, "")
	doc.CellFormat(110, 8, "Grand Total", "1", 0, "L", false, 0, "")
	doc.CellFormat(40, 8, "Ksh "+formatAmount(rec.Total), "1", 1, "L", false, 0, "")
	doc.Ln(5)
}

func (r *Renderer) paymentInfo(doc *fpdf.Fpdf) {
	doc.SetFont("Arial", "I", 11)
	doc.CellFormat(0, 10, fmt.Sprintf("Paybill: %s | Account: %s", r.pay.Paybill, r.pay.Account), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 8, "Thank you for choosing Oasis Springs!", "", 1, "L", false, 0, "")
}

var amountPrinter = message.NewPrinter(language.English)

func formatAmount(n int) string {
	return amountPrinter.Sprintf("%d", n)
}

// FileName builds the download name offered to the customer, keeping
// only characters that are safe in a filename.
func FileName(customer string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(customer) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '_' || r == '-':
			b.WriteRune('_')
		}
	}
	name := b.String()
	if name == "" {
		name = "order"
	}
	return "receipt_" + name + ".pdf"
}

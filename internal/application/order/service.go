package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oasis00-1/oasis-springs-app/internal/config"
	domain "github.com/oasis00-1/oasis-springs-app/internal/domain/order"
	"github.com/oasis00-1/oasis-springs-app/internal/domain/repository"
	"github.com/oasis00-1/oasis-springs-app/pkg/logger"
)

// PaymentGateway initiates an STK push and returns the gateway response
// code. Abstracted so the service can be tested without a gateway.
type PaymentGateway interface {
	SendPush(ctx context.Context, phone string, amount int) (string, error)
}

// ReceiptRenderer produces the downloadable receipt artifact, returning
// its temp path and the download name offered to the customer.
type ReceiptRenderer interface {
	Render(rec *domain.Record, lines []domain.Line) (path string, downloadName string, err error)
}

type Service struct {
	catalog  domain.Catalog
	fees     domain.FeeTable
	store    repository.OrderStore
	gateway  PaymentGateway
	receipts ReceiptRenderer
	pay      config.MpesaConfig
	log      logger.Logger
	now      func() time.Time
}

type CreateOrderCommand struct {
	Name        string         `json:"name"`
	Phone       string         `json:"phone"`
	MpesaNumber string         `json:"mpesa_number"`
	Location    string         `json:"location"`
	MapsLink    string         `json:"maps_link"`
	Items       map[string]int `json:"items"`
}

// Payment outcome values surfaced to the customer.
const (
	OutcomeSent   = "stk_sent"        // prompt is on the customer's phone
	OutcomeManual = "manual_required" // gateway answered with a non-success code
	OutcomeFailed = "stk_failed"      // gateway unreachable or malformed response
)

// successResponseCode is the gateway sentinel for a delivered prompt.
const successResponseCode = "0"

type PaymentStatus struct {
	Outcome      string
	ResponseCode string
	Instructions string
}

// PlacedOrder is the result of one confirmed submission. SubmissionID
// identifies the submission in logs and responses; the fixed store
// schema has no column for it, so re-confirming still appends a
// duplicate row.
type PlacedOrder struct {
	SubmissionID string
	Record       *domain.Record
	Quote        domain.Quote
	Payment      PaymentStatus
	ReceiptPath  string
	ReceiptName  string
}

func NewService(
	catalog domain.Catalog,
	fees domain.FeeTable,
	store repository.OrderStore,
	gateway PaymentGateway,
	receipts ReceiptRenderer,
	pay config.MpesaConfig,
	log logger.Logger,
) *Service {
	return &Service{
		catalog:  catalog,
		fees:     fees,
		store:    store,
		gateway:  gateway,
		receipts: receipts,
		pay:      pay,
		log:      log,
		now:      time.Now,
	}
}

// PlaceOrder runs one intake cycle: validate, price, persist, prompt for
// payment, render the receipt. A failed push never rolls back a
// persisted record; the customer gets manual-payment instructions
// instead. A failed receipt render degrades the same way.
func (s *Service) PlaceOrder(ctx context.Context, cmd CreateOrderCommand) (*PlacedOrder, error) {
	quote, err := domain.ComputeQuote(s.catalog, s.fees, cmd.Items, cmd.Location)
	if err != nil {
		return nil, err
	}

	rec, err := domain.NewRecord(domain.Submission{
		Name:        cmd.Name,
		Phone:       cmd.Phone,
		MpesaNumber: cmd.MpesaNumber,
		Location:    cmd.Location,
		MapsLink:    cmd.MapsLink,
		Quantities:  cmd.Items,
	}, quote, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.store.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	placed := &PlacedOrder{
		SubmissionID: uuid.NewString(),
		Record:       rec,
		Quote:        quote,
	}

	placed.Payment = s.initiatePayment(ctx, cmd.MpesaNumber, quote.Total)

	path, name, err := s.receipts.Render(rec, quote.Lines)
	if err != nil {
		s.log.Warn("receipt generation failed",
			logger.String("submission_id", placed.SubmissionID),
			logger.Error(err))
	} else {
		placed.ReceiptPath = path
		placed.ReceiptName = name
	}

	s.log.Info("order placed",
		logger.String("submission_id", placed.SubmissionID),
		logger.String("location", rec.Location),
		logger.Int("total", rec.Total),
		logger.String("payment_outcome", placed.Payment.Outcome))

	return placed, nil
}

func (s *Service) initiatePayment(ctx context.Context, mpesaNumber string, amount int) PaymentStatus {
	code, err := s.gateway.SendPush(ctx, mpesaNumber, amount)
	if err != nil {
		s.log.Warn("stk push failed", logger.Error(err))
		return PaymentStatus{
			Outcome:      OutcomeFailed,
			Instructions: s.manualInstructions(amount),
		}
	}
	if code != successResponseCode {
		return PaymentStatus{
			Outcome:      OutcomeManual,
			ResponseCode: code,
			Instructions: s.manualInstructions(amount),
		}
	}
	return PaymentStatus{Outcome: OutcomeSent, ResponseCode: code}
}

func (s *Service) manualInstructions(amount int) string {
	return fmt.Sprintf("Pay manually via Paybill %s, Account %s, Amount Ksh %d",
		s.pay.Paybill, s.pay.Account, amount)
}

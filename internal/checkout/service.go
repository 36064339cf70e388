package checkout

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Henry881-hack/corries-shop/pkg/config"
	pkgerrors "github.com/Henry881-hack/corries-shop/pkg/errors"
	"github.com/Henry881-hack/corries-shop/pkg/metrics"
	"github.com/google/uuid"
)

// PaymentRequest carries the raw card fields exactly as entered. No Luhn
// check, expiry parsing, or issuer lookup happens anywhere; this is a
// simulated payment path.
type PaymentRequest struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVC        string `json:"cvc"`
	CardName   string `json:"cardName"`
}

// Receipt is the successful payment result.
type Receipt struct {
	ConfirmationID string    `json:"confirmationId"`
	Message        string    `json:"message"`
	ProcessedAt    time.Time `json:"processedAt"`
}

// Service simulates a payment processor. At most one submission may be in
// flight at a time; a concurrent second submission is rejected outright
// rather than queued.
type Service struct {
	delay    time.Duration
	metrics  *metrics.ShopMetrics
	now      func() time.Time
	inFlight atomic.Bool
}

// ServiceParams bundles the dependencies required to build a checkout service.
type ServiceParams struct {
	Config  config.CheckoutConfig
	Metrics *metrics.ShopMetrics
	Now     func() time.Time
}

// NewService constructs a checkout service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Config.ProcessingDelay < 0 {
		return nil, fmt.Errorf("processing delay must not be negative")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		delay:   params.Config.ProcessingDelay,
		metrics: params.Metrics,
		now:     now,
	}, nil
}

// SubmitPayment waits out the processing delay and then resolves: card-field
// failures and receipts both surface only after the timer fires, like a real
// processor round-trip. Cancellation during the delay returns the context
// error.
func (s *Service) SubmitPayment(ctx context.Context, req PaymentRequest) (*Receipt, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.metrics.IncCheckout("rejected_in_flight")
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "a payment is already being processed")
	}
	defer s.inFlight.Store(false)

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		s.metrics.IncCheckout("cancelled")
		return nil, ctx.Err()
	case <-timer.C:
	}

	if err := validate(req); err != nil {
		s.metrics.IncCheckout("invalid")
		return nil, err
	}

	s.metrics.IncCheckout("success")
	return &Receipt{
		ConfirmationID: uuid.NewString(),
		Message:        "Payment processed successfully!",
		ProcessedAt:    s.now().UTC(),
	}, nil
}

func validate(req PaymentRequest) error {
	if req.CardNumber == "" || req.ExpiryDate == "" || req.CVC == "" || req.CardName == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "please fill in all card details")
	}
	if len(req.CardNumber) < 16 || len(req.ExpiryDate) < 5 || len(req.CVC) < 3 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid card details provided")
	}
	return nil
}

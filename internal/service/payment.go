package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aurum-store/internal/models"
	"aurum-store/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentService simulates payment processing with a fixed delay. No real
// gateway is involved; every structurally valid attempt succeeds.
type PaymentService struct {
	delay  time.Duration
	logger *zap.Logger
}

// NewPaymentService creates a payment simulator with the given delay
func NewPaymentService(delay time.Duration) *PaymentService {
	return &PaymentService{
		delay:  delay,
		logger: util.GetLogger(),
	}
}

// Process waits out the simulated processing delay, then returns a
// receipt. The context can cancel a pending attempt; no domain state has
// been touched at that point.
func (ps *PaymentService) Process(ctx context.Context, method string, amount int) (models.Receipt, error) {
	ctx, span := util.StartSpan(ctx, "PaymentService.Process")
	defer span.End()

	util.PaymentAttemptsTotal.Inc()
	start := time.Now()
	defer func() {
		util.PaymentProcessingLatency.Observe(time.Since(start).Seconds())
	}()

	ps.logger.Info("Processing payment",
		zap.String("method", method),
		zap.Int("amount", amount))

	select {
	case <-time.After(ps.delay):
	case <-ctx.Done():
		return models.Receipt{}, fmt.Errorf("payment aborted: %w", ctx.Err())
	}

	receipt := models.Receipt{
		TxID:   fmt.Sprintf("TXN-%s", strings.ToUpper(uuid.New().String()[:8])),
		Method: method,
		Amount: amount,
		Paid:   time.Now(),
	}

	ps.logger.Info("Payment accepted",
		zap.String("tx_id", receipt.TxID),
		zap.String("method", method))
	return receipt, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"aurum-store/internal/store"
	"aurum-store/internal/util"

	"go.uber.org/zap"
)

// GateService answers whether the store serves a pincode, with a
// simulated verification delay in front of the registry lookup.
type GateService struct {
	areas  *store.ServiceAreas
	delay  time.Duration
	logger *zap.Logger
}

// NewGateService creates a gate over the service-area registry
func NewGateService(areas *store.ServiceAreas, delay time.Duration) *GateService {
	return &GateService{
		areas:  areas,
		delay:  delay,
		logger: util.GetLogger(),
	}
}

// Verify waits out the simulated lookup delay and then checks the
// registry. The delay never lets callers observe a half-applied registry
// state; the lookup itself is a single atomic read.
func (g *GateService) Verify(ctx context.Context, code string) (bool, error) {
	select {
	case <-time.After(g.delay):
	case <-ctx.Done():
		return false, fmt.Errorf("verification aborted: %w", ctx.Err())
	}

	ok := g.areas.IsServiceable(code)
	if ok {
		util.GateChecksTotal.WithLabelValues("serviceable").Inc()
	} else {
		util.GateChecksTotal.WithLabelValues("unserviceable").Inc()
	}

	g.logger.Info("Pincode verified",
		zap.String("pincode", code),
		zap.Bool("serviceable", ok))
	return ok, nil
}

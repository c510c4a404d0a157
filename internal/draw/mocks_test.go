package draw

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

// MockDrawProcedure
type MockDrawProcedure struct {
	mock.Mock
}

func (m *MockDrawProcedure) Draw(ctx context.Context, userID string, poolID *string) (*domain.DrawUnitOutcome, error) {
	args := m.Called(ctx, userID, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrawUnitOutcome), args.Error(1)
}

// sleepRecorder replaces real sleeping and remembers every requested delay
type sleepRecorder struct {
	delays []time.Duration
}

func (r *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return nil
}

func newTestService(proc *MockDrawProcedure, policy FatalPolicy) (*service, *sleepRecorder) {
	rec := &sleepRecorder{}
	svc := NewService(proc, policy).(*service)
	svc.sleep = rec.sleep
	return svc, rec
}

func outcome(itemID string, rarity domain.Rarity) *domain.DrawUnitOutcome {
	return &domain.DrawUnitOutcome{
		ItemID:       itemID,
		Name:         "item " + itemID,
		Rarity:       rarity,
		RewardPoints: 10,
	}
}

func lockErr() error {
	return &domain.RemoteError{Code: domain.CodeLockContention, Message: "could not obtain lock on row in relation \"gacha_user_state\""}
}

func cooldownErr() error {
	return &domain.RemoteError{Code: domain.CodePaidCooldown, Message: "PAID_COOLDOWN"}
}

func insufficientErr() error {
	return &domain.RemoteError{Code: domain.CodeInsufficientPoints, Message: "INSUFFICIENT_POINTS"}
}

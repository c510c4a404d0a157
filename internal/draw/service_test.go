package draw

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func TestExecuteBatch_AllUnitsSucceed(t *testing.T) {
	for amount := domain.MinDrawAmount; amount <= domain.MaxDrawAmount; amount++ {
		t.Run(fmt.Sprintf("amount=%d", amount), func(t *testing.T) {
			proc := new(MockDrawProcedure)
			proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(outcome("i", domain.RarityR), nil).Times(amount)
			svc, rec := newTestService(proc, FatalPolicyAbort)

			out, err := svc.ExecuteBatch(context.Background(), domain.DrawRequest{UserID: "user-1", Amount: amount})

			require.NoError(t, err)
			assert.Equal(t, amount, out.RequestedAmount)
			assert.Equal(t, amount, out.CompletedAmount)
			assert.Len(t, out.Results, amount)
			assert.False(t, out.Partial)
			assert.Nil(t, out.Warning)
			assert.Empty(t, rec.delays)
			proc.AssertExpectations(t)
		})
	}
}

func TestExecuteBatch_ClampsAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   int
		expected int
	}{
		{"zero becomes one", 0, 1},
		{"negative becomes one", -4, 1},
		{"too many becomes ten", 25, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc := new(MockDrawProcedure)
			proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(outcome("i", domain.RarityS), nil)
			svc, _ := newTestService(proc, FatalPolicyAbort)

			out, err := svc.ExecuteBatch(context.Background(), domain.DrawRequest{UserID: "user-1", Amount: tt.amount})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.RequestedAmount)
			assert.Equal(t, tt.expected, out.CompletedAmount)
			proc.AssertNumberOfCalls(t, "Draw", tt.expected)
		})
	}
}

func TestExecuteBatch_PassesPoolThrough(t *testing.T) {
	poolID := "6f1c1a4e-3b7d-4c2e-9a51-0d2b8e6f4a10"
	proc := new(MockDrawProcedure)
	proc.On("Draw", mock.Anything, "user-1", &poolID).Return(outcome("i", domain.RarityR), nil).Once()
	svc, _ := newTestService(proc, FatalPolicyAbort)

	_, err := svc.ExecuteBatch(context.Background(), domain.DrawRequest{UserID: "user-1", PoolID: &poolID, Amount: 1})

	require.NoError(t, err)
	proc.AssertExpectations(t)
}

func TestExecuteBatch_PreservesUnitOrder(t *testing.T) {
	proc := new(MockDrawProcedure)
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(outcome("first", domain.RarityR), nil).Once()
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(nil, lockErr()).Once()
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(outcome("second", domain.RaritySSS), nil).Once()
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(outcome("third", domain.RarityS), nil).Once()
	svc, rec := newTestService(proc, FatalPolicyAbort)

	out, err := svc.ExecuteBatch(context.Background(), domain.DrawRequest{UserID: "user-1", Amount: 3})

	require.NoError(t, err)
	require.Len(t, out.Results, 3)
	assert.Equal(t, "first", out.Results[0].ItemID)
	assert.Equal(t, "second", out.Results[1].ItemID)
	assert.Equal(t, "third", out.Results[2].ItemID)
	assert.False(t, out.Partial)
	assert.Equal(t, []time.Duration{ms(210)}, rec.delays)
}

func TestExecuteBatch_RetryExhaustionStopsBatch(t *testing.T) {
	proc := new(MockDrawProcedure)
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(outcome("a", domain.RarityR), nil).Once()
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(outcome("b", domain.RarityS), nil).Once()
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(nil, lockErr()).Times(1 + MaxRetriesPerUnit)
	svc, rec := newTestService(proc, FatalPolicyAbort)

	out, err := svc.ExecuteBatch(context.Background(), domain.DrawRequest{UserID: "user-1", Amount: 5})

	require.NoError(t, err)
	assert.Len(t, out.Results, 2)
	assert.Equal(t, 2, out.CompletedAmount)
	assert.Equal(t, 5, out.RequestedAmount)
	assert.True(t, out.Partial)
	require.NotNil(t, out.Warning)
	assert.Contains(t, *out.Warning, "unit 3 of 5")
	assert.Contains(t, *out.Warning, "could not obtain lock")

	// units 4 and 5 are never attempted
	proc.AssertNumberOfCalls(t, "Draw", 2+1+MaxRetriesPerUnit)
	assert.Equal(t, []time.Duration{
		ms(210), ms(300), ms(390), ms(480), ms(570),
		ms(660), ms(750), ms(840), ms(900), ms(900),
	}, rec.delays)
}

func TestExecuteBatch_CooldownBackoffTrack(t *testing.T) {
	proc := new(MockDrawProcedure)
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(nil, cooldownErr()).Times(1 + MaxRetriesPerUnit)
	svc, rec := newTestService(proc, FatalPolicyAbort)

	out, err := svc.ExecuteBatch(context.Background(), domain.DrawRequest{UserID: "user-1", Amount: 1})

	require.NoError(t, err)
	assert.Empty(t, out.Results)
	assert.True(t, out.Partial)
	require.NotNil(t, out.Warning)
	assert.Contains(t, *out.Warning, "unit 1 of 1 failed after 10 retries")

	expected := make([]time.Duration, 0, MaxRetriesPerUnit)
	for r := 1; r <= MaxRetriesPerUnit; r++ {
		expected = append(expected, min(ms(1600), ms(280+140*r)))
	}
	assert.Equal(t, expected, rec.delays)
	assert.Equal(t, ms(1600), rec.delays[len(rec.delays)-1])
}

func TestExecuteBatch_RetryThenSucceed(t *testing.T) {
	proc := new(MockDrawProcedure)
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(nil, cooldownErr()).Times(3)
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(outcome("late", domain.RaritySS), nil).Once()
	svc, rec := newTestService(proc, FatalPolicyAbort)

	out, err := svc.ExecuteBatch(context.Background(), domain.DrawRequest{UserID: "user-1", Amount: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, out.CompletedAmount)
	assert.False(t, out.Partial)
	assert.Nil(t, out.Warning)
	assert.Equal(t, []time.Duration{ms(420), ms(560), ms(700)}, rec.delays)
}

func TestExecuteBatch_FatalDiscardsCompletedUnits(t *testing.T) {
	proc := new(MockDrawProcedure)
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(outcome("committed", domain.RarityR), nil).Once()
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(nil, insufficientErr()).Once()
	svc, rec := newTestService(proc, FatalPolicyAbort)

	out, err := svc.ExecuteBatch(context.Background(), domain.DrawRequest{UserID: "user-1", Amount: 5})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domain.ErrInsufficientPoints))

	var fatal *FatalError
	require.True(t, errors.As(err, &fatal))
	assert.Equal(t, 2, fatal.Unit)
	assert.Equal(t, 5, fatal.Requested)
	require.Len(t, fatal.Discarded, 1)
	assert.Equal(t, "committed", fatal.Discarded[0].ItemID)

	assert.Empty(t, rec.delays)
	proc.AssertNumberOfCalls(t, "Draw", 2)
}

func TestExecuteBatch_FatalOnFirstUnit(t *testing.T) {
	proc := new(MockDrawProcedure)
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(nil, &domain.RemoteError{Code: domain.CodeNoActivePool, Message: "NO_ACTIVE_POOL"}).Once()
	svc, _ := newTestService(proc, FatalPolicyAbort)

	out, err := svc.ExecuteBatch(context.Background(), domain.DrawRequest{UserID: "user-1", Amount: 5})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domain.ErrNoEligiblePool))
	var fatal *FatalError
	require.True(t, errors.As(err, &fatal))
	assert.Equal(t, 1, fatal.Unit)
	assert.Empty(t, fatal.Discarded)
}

func TestExecuteBatch_FatalPartialPolicy(t *testing.T) {
	proc := new(MockDrawProcedure)
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(outcome("kept", domain.RarityS), nil).Once()
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(nil, insufficientErr()).Once()
	svc, _ := newTestService(proc, FatalPolicyPartial)

	out, err := svc.ExecuteBatch(context.Background(), domain.DrawRequest{UserID: "user-1", Amount: 4})

	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "kept", out.Results[0].ItemID)
	assert.True(t, out.Partial)
	require.NotNil(t, out.Warning)
	assert.Contains(t, *out.Warning, "unit 2 of 4 aborted (fatal)")
	assert.Contains(t, *out.Warning, "INSUFFICIENT_POINTS")
}

func TestExecuteBatch_UnclassifiedExhaustsImmediately(t *testing.T) {
	proc := new(MockDrawProcedure)
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(outcome("a", domain.RarityR), nil).Once()
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(nil, errors.New("permission denied for function perform_gacha_draw")).Once()
	svc, rec := newTestService(proc, FatalPolicyAbort)

	out, err := svc.ExecuteBatch(context.Background(), domain.DrawRequest{UserID: "user-1", Amount: 3})

	require.NoError(t, err)
	assert.Equal(t, 1, out.CompletedAmount)
	assert.True(t, out.Partial)
	require.NotNil(t, out.Warning)
	assert.Equal(t, "unit 2 of 3 failed: permission denied for function perform_gacha_draw", *out.Warning)
	assert.Empty(t, rec.delays)
	proc.AssertNumberOfCalls(t, "Draw", 2)
}

func TestExecuteBatch_LegacyMessageFallback(t *testing.T) {
	legacy := &domain.RemoteError{Message: "ERROR: could not serialize access due to concurrent update"}
	proc := new(MockDrawProcedure)
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(nil, legacy).Once()
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(outcome("a", domain.RarityR), nil).Once()
	svc, rec := newTestService(proc, FatalPolicyAbort)

	out, err := svc.ExecuteBatch(context.Background(), domain.DrawRequest{UserID: "user-1", Amount: 1})

	require.NoError(t, err)
	assert.False(t, out.Partial)
	assert.Equal(t, []time.Duration{ms(210)}, rec.delays)
}

func TestExecuteBatch_EmptyRemoteRowStopsBatch(t *testing.T) {
	proc := new(MockDrawProcedure)
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(nil, nil).Once()
	svc, _ := newTestService(proc, FatalPolicyAbort)

	out, err := svc.ExecuteBatch(context.Background(), domain.DrawRequest{UserID: "user-1", Amount: 2})

	require.NoError(t, err)
	assert.Equal(t, 0, out.CompletedAmount)
	assert.True(t, out.Partial)
	require.NotNil(t, out.Warning)
	assert.Contains(t, *out.Warning, ErrMsgEmptyDrawResult)
}

func TestExecuteBatch_MissingIdentity(t *testing.T) {
	proc := new(MockDrawProcedure)
	svc, _ := newTestService(proc, FatalPolicyAbort)

	out, err := svc.ExecuteBatch(context.Background(), domain.DrawRequest{Amount: 1})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrMissingIdentity)
	proc.AssertNotCalled(t, "Draw", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecuteBatch_CancelledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	proc := new(MockDrawProcedure)
	proc.On("Draw", mock.Anything, "user-1", mock.Anything).Return(nil, cooldownErr()).Once()
	svc := NewService(proc, FatalPolicyAbort).(*service)
	svc.sleep = func(ctx context.Context, d time.Duration) error {
		cancel()
		return sleepContext(ctx, d)
	}

	out, err := svc.ExecuteBatch(ctx, domain.DrawRequest{UserID: "user-1", Amount: 3})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), ErrContextDrawUnitAbandoned)
	proc.AssertNumberOfCalls(t, "Draw", 1)
}

func TestExecuteBatch_WaitsForSameMember(t *testing.T) {
	proc := new(MockDrawProcedure)
	svc, _ := newTestService(proc, FatalPolicyAbort)

	unlock, err := svc.memberLocks.Lock(context.Background(), "user-1")
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	out, err := svc.ExecuteBatch(ctx, domain.DrawRequest{UserID: "user-1", Amount: 1})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), ErrContextWaitForBatch)
	proc.AssertNotCalled(t, "Draw", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecuteBatch_OtherMemberNotBlocked(t *testing.T) {
	proc := new(MockDrawProcedure)
	proc.On("Draw", mock.Anything, "user-2", mock.Anything).Return(outcome("i", domain.RarityS), nil).Once()
	svc, _ := newTestService(proc, FatalPolicyAbort)

	unlock, err := svc.memberLocks.Lock(context.Background(), "user-1")
	require.NoError(t, err)
	defer unlock()

	out, err := svc.ExecuteBatch(context.Background(), domain.DrawRequest{UserID: "user-2", Amount: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, out.CompletedAmount)
}

func TestParseFatalPolicy(t *testing.T) {
	assert.Equal(t, FatalPolicyPartial, ParseFatalPolicy("partial"))
	assert.Equal(t, FatalPolicyAbort, ParseFatalPolicy("abort"))
	assert.Equal(t, FatalPolicyAbort, ParseFatalPolicy(""))
	assert.Equal(t, FatalPolicyAbort, ParseFatalPolicy("nonsense"))
}

package fanout

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettle_AllBranchesRunDespiteFailure(t *testing.T) {
	errBoom := errors.New("boom")

	results := Settle(context.Background(),
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context) (int, error) { return 0, errBoom },
		func(ctx context.Context) (int, error) { return 3, nil },
	)

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 1, results[0].Value)
	assert.ErrorIs(t, results[1].Err, errBoom)
	assert.Zero(t, results[1].Value)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, 3, results[2].Value)
}

func TestSettle_PreservesInputOrder(t *testing.T) {
	results := Settle(context.Background(),
		func(ctx context.Context) (string, error) {
			time.Sleep(20 * time.Millisecond)
			return "slow", nil
		},
		func(ctx context.Context) (string, error) { return "fast", nil },
	)

	require.Len(t, results, 2)
	assert.Equal(t, "slow", results[0].Value)
	assert.Equal(t, "fast", results[1].Value)
}

func TestSettle_RunsConcurrently(t *testing.T) {
	var inFlight, peak int32

	branch := func(ctx context.Context) (struct{}, error) {
		cur := atomic.AddInt32(&inFlight, 1)
		for {
			old := atomic.LoadInt32(&peak)
			if cur <= old || atomic.CompareAndSwapInt32(&peak, old, cur) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return struct{}{}, nil
	}

	Settle(context.Background(), branch, branch, branch)
	assert.Greater(t, atomic.LoadInt32(&peak), int32(1))
}

func TestAll_CollectsPerBranchErrors(t *testing.T) {
	errBoom := errors.New("boom")
	var a, b int

	errs := All(context.Background(),
		func(ctx context.Context) error { a = 10; return nil },
		func(ctx context.Context) error { return errBoom },
		func(ctx context.Context) error { b = 20; return nil },
	)

	require.Len(t, errs, 3)
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], errBoom)
	assert.NoError(t, errs[2])
	assert.Equal(t, 10, a)
	assert.Equal(t, 20, b)
}

func TestSettle_NoBranches(t *testing.T) {
	assert.Empty(t, Settle[int](context.Background()))
	assert.Empty(t, All(context.Background()))
}

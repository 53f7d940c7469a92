package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHousekeepingSweepPurgesStaleCodes(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &HousekeepingService{Store: st}

	user := registerUser(t, st, "vic@example.com", "supersecret1")
	require.NoError(t, st.OTPs().DeactivateUserOTPs(ctx, user.ID))

	// One valid code, one expired code.
	plantOTP(t, st, user.ID, "111111", time.Now().UTC().Add(10*time.Minute))
	plantOTP(t, st, user.ID, "222222", time.Now().UTC().Add(-10*time.Minute))

	svc.Sweep(ctx)

	// The expired row is gone entirely; the valid one survived the sweep and
	// is still consumable.
	consumed, err := st.OTPs().ConsumeOTP(ctx, user.ID, "222222")
	require.NoError(t, err)
	require.False(t, consumed)

	consumed, err = st.OTPs().ConsumeOTP(ctx, user.ID, "111111")
	require.NoError(t, err)
	require.True(t, consumed)
}

func TestHousekeepingRunStopsOnCancel(t *testing.T) {
	st := newTestStore(t)
	svc := &HousekeepingService{Store: st, Interval: 10 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("housekeeping loop did not stop after cancel")
	}
}

package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/flight-price-tracker/pkg/types"
)

func TestNewScheduler_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	eng, _ := newTestEngine(t)

	sched, err := NewScheduler(eng, 6*time.Hour, quietLogger())
	require.NoError(t, err)

	entries := sched.Entries()
	assert.Len(t, entries, 1)
	assert.NotZero(t, sched.entryID)
}

func TestNewScheduler_InvalidInterval(t *testing.T) {
	t.Parallel()

	eng, _ := newTestEngine(t)

	_, err := NewScheduler(eng, 0, quietLogger())
	require.Error(t, err)
}

func TestScheduler_StartRunsPassImmediately(t *testing.T) {
	t.Parallel()

	eng, d := newTestEngine(t)

	ran := make(chan struct{})
	d.store.EXPECT().InsertPassRun(mock.Anything, mock.Anything).Return("run-1", nil).Once()
	d.store.EXPECT().ListEligibleAlerts(mock.Anything).
		RunAndReturn(func(context.Context) ([]domain.Alert, error) {
			close(ran)
			return nil, nil
		}).Once()
	d.store.EXPECT().CompletePassRun(mock.Anything, "run-1", domain.PassSucceeded, "", mock.Anything).
		Return(nil).Once()

	sched, err := NewScheduler(eng, time.Hour, quietLogger())
	require.NoError(t, err)

	sched.Start()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("first pass did not start")
	}

	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_StopCancelsRunningPass(t *testing.T) {
	t.Parallel()

	eng, d := newTestEngine(t, WithAlertPause(time.Hour))
	eng.sleep = sleepContext

	entered := make(chan struct{})
	d.store.EXPECT().InsertPassRun(mock.Anything, mock.Anything).Return("run-1", nil).Once()
	d.store.EXPECT().ListEligibleAlerts(mock.Anything).Return([]domain.Alert{
		*tomorrowAlert("a1", "500"),
		*tomorrowAlert("a2", "500"),
	}, nil).Once()
	d.provider.EXPECT().SearchOffers(mock.Anything, mock.Anything).Return(nil, nil).Once()
	d.store.EXPECT().UpdateLastChecked(mock.Anything, "a1", mock.Anything).
		Run(func(context.Context, string, time.Time) { close(entered) }).
		Return(nil).Once()
	d.store.EXPECT().CompletePassRun(mock.Anything, "run-1", domain.PassInterrupted, "", mock.Anything).
		Return(nil).Once()

	sched, err := NewScheduler(eng, time.Hour, quietLogger())
	require.NoError(t, err)
	sched.Start()

	<-entered
	ctx := sched.Stop()

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.False(t, eng.Running())
}

func TestScheduler_SkipsTickWhilePassRunning(t *testing.T) {
	t.Parallel()

	eng, _ := newTestEngine(t)
	require.True(t, eng.acquire())
	defer eng.release()

	sched, err := NewScheduler(eng, time.Hour, quietLogger())
	require.NoError(t, err)

	// No store expectations: a skipped tick must not touch the store.
	sched.runPass()
}

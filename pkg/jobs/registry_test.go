package jobs

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitTerminal polls until the job reaches a terminal state.
func waitTerminal(t *testing.T, r *Registry, id string) Status {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		st, err := r.Status(id)
		require.NoError(t, err)
		if st.State.Terminal() {
			return st
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("job did not finish in time")
	return Status{}
}

func TestRegistrySingleFlight(t *testing.T) {
	r := NewRegistry(context.Background())

	release := make(chan struct{})
	started := make(chan struct{})
	id, err := r.Start(KindIngestFull, func(ctx context.Context, tr *Tracker) error {
		close(started)
		<-release
		return nil
	})
	require.NoError(t, err)
	<-started

	// A second start of any kind is rejected with the active job's id.
	blockedID, err := r.Start(KindLabelPush, func(ctx context.Context, tr *Tracker) error {
		return nil
	})
	assert.ErrorIs(t, err, ErrJobRunning)
	assert.Equal(t, id, blockedID)

	cur, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, id, cur.JobID)

	close(release)
	st := waitTerminal(t, r, id)
	assert.Equal(t, StateSucceeded, st.State)
	assert.Equal(t, "Done", st.Message)

	// After completion the slot frees up.
	_, ok = r.Current()
	assert.False(t, ok)
	id2, err := r.Start(KindLabelPush, func(ctx context.Context, tr *Tracker) error {
		return nil
	})
	require.NoError(t, err)
	waitTerminal(t, r, id2)
}

func TestRegistryFailure(t *testing.T) {
	r := NewRegistry(context.Background())

	id, err := r.Start(KindMaintenance, func(ctx context.Context, tr *Tracker) error {
		return errors.New("provider unreachable")
	})
	require.NoError(t, err)

	st := waitTerminal(t, r, id)
	assert.Equal(t, StateFailed, st.State)
	assert.Equal(t, "provider unreachable", st.Message)
	assert.Contains(t, st.Errors, "provider unreachable")
}

func TestRegistryStatusUnknown(t *testing.T) {
	r := NewRegistry(context.Background())
	_, err := r.Status("job-00000000-000000-ingest-full-000000")
	assert.ErrorIs(t, err, ErrUnknownJob)
	_, _, err = r.Subscribe("nope")
	assert.ErrorIs(t, err, ErrUnknownJob)
}

func TestSubscribeStreamsUntilTerminal(t *testing.T) {
	r := NewRegistry(context.Background())

	proceed := make(chan struct{})
	subscribed := make(chan struct{})
	id, err := r.Start(KindClusterLabel, func(ctx context.Context, tr *Tracker) error {
		<-subscribed
		tr.SetPhase("phase2_clustering_labeling")
		tr.Update(Counters{Processed: 10, Inserted: 10}, "Labelled 10 messages")
		<-proceed
		return nil
	})
	require.NoError(t, err)

	updates, cancel, err := r.Subscribe(id)
	require.NoError(t, err)
	defer cancel()
	close(subscribed)

	// First snapshot arrives immediately.
	first := <-updates
	assert.Equal(t, id, first.JobID)

	var last Status
	var sawCounters bool
	done := make(chan struct{})
	go func() {
		defer close(done)
		for st := range updates {
			last = st
			if st.Counters.Processed == 10 {
				sawCounters = true
			}
		}
	}()

	close(proceed)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not close after job finished")
	}

	assert.True(t, sawCounters)
	assert.Equal(t, StateSucceeded, last.State)
	assert.Equal(t, "phase2_clustering_labeling", last.Phase)
}

func TestSubscribeTerminalJobClosesImmediately(t *testing.T) {
	r := NewRegistry(context.Background())

	id, err := r.Start(KindTrashSync, func(ctx context.Context, tr *Tracker) error {
		return nil
	})
	require.NoError(t, err)
	waitTerminal(t, r, id)

	updates, cancel, err := r.Subscribe(id)
	require.NoError(t, err)
	defer cancel()

	st, open := <-updates
	require.True(t, open)
	assert.Equal(t, StateSucceeded, st.State)

	_, open = <-updates
	assert.False(t, open)
}

func TestHistoryNewestFirstAndPruned(t *testing.T) {
	r := NewRegistry(context.Background())

	var ids []string
	for i := 0; i < historyLimit+5; i++ {
		id, err := r.Start(KindIngestRefresh, func(ctx context.Context, tr *Tracker) error {
			return nil
		})
		require.NoError(t, err)
		waitTerminal(t, r, id)
		ids = append(ids, id)
	}

	hist := r.History()
	require.Len(t, hist, historyLimit)
	// Newest first; the oldest five aged out.
	assert.Equal(t, ids[len(ids)-1], hist[0].JobID)
	_, err := r.Status(ids[0])
	assert.ErrorIs(t, err, ErrUnknownJob)
}

func TestSlowSubscriberNeverBlocksWorker(t *testing.T) {
	r := NewRegistry(context.Background())

	proceed := make(chan struct{})
	subscribed := make(chan struct{})
	id, err := r.Start(KindExtractEvents, func(ctx context.Context, tr *Tracker) error {
		<-subscribed
		// Overflow the subscriber queue several times over.
		for i := 0; i < subscriberQueue*3; i++ {
			tr.Update(Counters{Processed: i + 1}, fmt.Sprintf("message %d", i+1))
		}
		<-proceed
		return nil
	})
	require.NoError(t, err)

	updates, cancel, err := r.Subscribe(id)
	require.NoError(t, err)
	defer cancel()
	close(subscribed)

	// Drain nothing until the worker has pushed everything; the worker
	// must still be able to finish.
	close(proceed)
	st := waitTerminal(t, r, id)
	assert.Equal(t, StateSucceeded, st.State)

	// The stream still ends with the terminal snapshot.
	var last Status
	for s := range updates {
		last = s
	}
	assert.Equal(t, StateSucceeded, last.State)
}

func TestTrackerErrorRingBounded(t *testing.T) {
	r := NewRegistry(context.Background())

	id, err := r.Start(KindExtractPayments, func(ctx context.Context, tr *Tracker) error {
		for i := 0; i < maxErrorSamples+10; i++ {
			tr.AddError(fmt.Sprintf("failure %d", i))
		}
		return nil
	})
	require.NoError(t, err)

	st := waitTerminal(t, r, id)
	assert.Len(t, st.Errors, maxErrorSamples)
	assert.Equal(t, fmt.Sprintf("failure %d", maxErrorSamples+9), st.Errors[len(st.Errors)-1])
}

func TestSubscribeCancelDuringBroadcast(t *testing.T) {
	r := NewRegistry(context.Background())

	release := make(chan struct{})
	id, err := r.Start(KindMaintenance, func(ctx context.Context, tr *Tracker) error {
		for {
			select {
			case <-release:
				return nil
			default:
				tr.SetMessage("tick")
			}
		}
	})
	require.NoError(t, err)

	// Churn subscriptions while the worker broadcasts as fast as it can.
	// A cancel landing mid-broadcast must never close the channel out
	// from under a pending send.
	for i := 0; i < 500; i++ {
		ch, cancel, err := r.Subscribe(id)
		require.NoError(t, err)
		<-ch
		cancel()
	}

	close(release)
	st := waitTerminal(t, r, id)
	assert.Equal(t, StateSucceeded, st.State)
}

package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

const (
	// historyLimit bounds how many finished jobs stay queryable.
	historyLimit = 50
	// subscriberQueue bounds each SSE subscriber; overflow drops the
	// oldest pending snapshot so a slow client never stalls a worker.
	subscriberQueue = 25
	// maxErrorSamples bounds the per-job error ring.
	maxErrorSamples = 20
)

// ErrJobRunning means a job is already active; the runner is
// single-flight across kinds.
var ErrJobRunning = errors.New("a job is already running")

// ErrUnknownJob means the job id is not in the registry or has aged out
// of history.
var ErrUnknownJob = errors.New("unknown job")

// Fn is the body of a job. It reports progress through the Tracker and
// its returned error decides succeeded vs failed.
type Fn func(ctx context.Context, t *Tracker) error

type job struct {
	status Status
	errors []string
	subs   []chan Status
}

// Registry owns job lifecycle: single-flight start, status snapshots,
// bounded history, and per-job subscriptions.
//
// Subscriber channels are only ever closed under mu (run, cancel,
// prune), and broadcasts hold mu while sending, so a snapshot can never
// be sent on a closed channel.
type Registry struct {
	baseCtx context.Context

	mu    sync.Mutex
	jobs  map[string]*job
	order []string
}

// NewRegistry creates a job registry. Jobs run on baseCtx, not on the
// request context that started them.
func NewRegistry(baseCtx context.Context) *Registry {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &Registry{
		baseCtx: baseCtx,
		jobs:    map[string]*job{},
	}
}

// Start launches fn as a background job of the given kind. Only one job
// may be running at a time; a second start returns ErrJobRunning with
// the active job's id.
func (r *Registry) Start(kind Kind, fn Fn) (string, error) {
	r.mu.Lock()
	for _, id := range r.order {
		if j := r.jobs[id]; j != nil && !j.status.State.Terminal() {
			r.mu.Unlock()
			return id, ErrJobRunning
		}
	}

	id := NewJobID(kind)
	now := time.Now().UTC()
	j := &job{
		status: Status{
			JobID:     id,
			Kind:      kind,
			State:     StateQueued,
			StartedAt: now,
			UpdatedAt: now,
			Message:   "Queued",
		},
	}
	r.jobs[id] = j
	r.order = append(r.order, id)
	r.pruneLocked()
	r.mu.Unlock()

	go r.run(id, fn)
	return id, nil
}

func (r *Registry) run(id string, fn Fn) {
	t := &Tracker{r: r, id: id}
	t.mutate(func(st *Status) { st.State = StateRunning })

	err := fn(r.baseCtx, t)
	if err != nil {
		slog.Error("Job failed", "job_id", id, "error", err)
		t.AddError(err.Error())
		t.mutate(func(st *Status) {
			st.State = StateFailed
			st.Message = err.Error()
		})
	} else {
		t.mutate(func(st *Status) {
			st.State = StateSucceeded
			st.Message = "Done"
		})
	}

	// Terminal state was broadcast; end every stream. The job can have
	// been pruned out of history by a concurrent Start.
	r.mu.Lock()
	if j := r.jobs[id]; j != nil {
		for _, ch := range j.subs {
			close(ch)
		}
		j.subs = nil
	}
	r.mu.Unlock()
}

// pruneLocked drops the oldest terminal jobs beyond the history limit.
func (r *Registry) pruneLocked() {
	for len(r.order) > historyLimit {
		pruned := false
		for i, id := range r.order {
			if j := r.jobs[id]; j != nil && j.status.State.Terminal() {
				for _, ch := range j.subs {
					close(ch)
				}
				delete(r.jobs, id)
				r.order = append(r.order[:i], r.order[i+1:]...)
				pruned = true
				break
			}
		}
		if !pruned {
			return
		}
	}
}

// Status returns a snapshot of the job.
func (r *Registry) Status(id string) (Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return Status{}, ErrUnknownJob
	}
	return j.snapshotLocked(), nil
}

// Current returns the active (queued or running) job, if any.
func (r *Registry) Current() (Status, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		if j := r.jobs[id]; j != nil && !j.status.State.Terminal() {
			return j.snapshotLocked(), true
		}
	}
	return Status{}, false
}

// History returns recent jobs, newest first.
func (r *Registry) History() []Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Status, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if j := r.jobs[r.order[i]]; j != nil {
			out = append(out, j.snapshotLocked())
		}
	}
	return out
}

// Subscribe returns a channel of status snapshots for a job, starting
// with the current one, plus a cancel func. The channel is closed when
// the job reaches a terminal state or on cancel.
func (r *Registry) Subscribe(id string) (<-chan Status, func(), error) {
	r.mu.Lock()
	j, ok := r.jobs[id]
	if !ok {
		r.mu.Unlock()
		return nil, nil, ErrUnknownJob
	}

	ch := make(chan Status, subscriberQueue)
	ch <- j.snapshotLocked()
	if j.status.State.Terminal() {
		// Deliver the final snapshot and end immediately.
		close(ch)
		r.mu.Unlock()
		return ch, func() {}, nil
	}
	j.subs = append(j.subs, ch)
	r.mu.Unlock()

	cancel := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		j, ok := r.jobs[id]
		if !ok {
			return
		}
		for i, sub := range j.subs {
			if sub == ch {
				j.subs = append(j.subs[:i], j.subs[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel, nil
}

func (j *job) snapshotLocked() Status {
	st := j.status
	st.Errors = append([]string(nil), j.errors...)
	st.Percent = percentOf(st.Total, st.Counters.Processed)
	st.ETAHint = ETAHint(st.Total, st.Counters.Processed, st.UpdatedAt.Sub(st.StartedAt))
	return st
}

// Tracker is the progress handle handed to a running job.
type Tracker struct {
	r  *Registry
	id string
}

func (t *Tracker) mutate(fn func(*Status)) {
	t.r.mu.Lock()
	defer t.r.mu.Unlock()
	j, ok := t.r.jobs[t.id]
	if !ok {
		return
	}
	fn(&j.status)
	j.status.UpdatedAt = time.Now().UTC()
	st := j.snapshotLocked()

	// Broadcast while holding the lock. Closes also happen under the
	// lock, so a cancel can never close a channel mid-broadcast; the
	// sends are non-blocking so this stays cheap.
	for _, ch := range j.subs {
		select {
		case ch <- st:
		default:
			// Full: drop the oldest pending snapshot, then try once
			// more. Never block the worker.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- st:
			default:
			}
		}
	}
}

// SetPhase tags the job with the pipeline phase it is in.
func (t *Tracker) SetPhase(phase string) {
	t.mutate(func(st *Status) { st.Phase = phase })
}

// SetTotal sets the expected item count, enabling percent and ETA.
func (t *Tracker) SetTotal(total int) {
	t.mutate(func(st *Status) { st.Total = total })
}

// SetMessage updates the human-readable progress line.
func (t *Tracker) SetMessage(msg string) {
	t.mutate(func(st *Status) { st.Message = msg })
}

// Update replaces the counters and, when non-empty, the message.
func (t *Tracker) Update(c Counters, msg string) {
	t.mutate(func(st *Status) {
		st.Counters = c
		if msg != "" {
			st.Message = msg
		}
	})
}

// AddError appends to the bounded error ring, dropping the oldest.
func (t *Tracker) AddError(msg string) {
	t.r.mu.Lock()
	j, ok := t.r.jobs[t.id]
	if ok {
		j.errors = append(j.errors, msg)
		if len(j.errors) > maxErrorSamples {
			j.errors = j.errors[len(j.errors)-maxErrorSamples:]
		}
	}
	t.r.mu.Unlock()
}

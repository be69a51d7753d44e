package outbox

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mailscope/mailscope/ent"
	"github.com/mailscope/mailscope/pkg/database"
	"github.com/mailscope/mailscope/pkg/gmail"
	"github.com/mailscope/mailscope/pkg/taxonomy"
)

// newTestDB mirrors the database package's CI/local harness: an external
// PostgreSQL when CI_DATABASE_URL is set, a testcontainer otherwise.
func newTestDB(t *testing.T) *database.Client {
	ctx := context.Background()

	connStr := os.Getenv("CI_DATABASE_URL")
	if connStr == "" {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)
		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))
	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, database.CreateGINIndexes(ctx, drv))
	require.NoError(t, database.CreatePartialUniqueIndexes(ctx, drv))

	client := database.NewClientFromEnt(entClient, db)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// fakeGmail is an httptest-backed provider double recording label
// modifications in call order. Failure statuses are consumed one per
// attempt, then calls succeed.
type fakeGmail struct {
	mu       sync.Mutex
	modified []string
	attempts map[string]int
	failures map[string][]int
	labels   []gmail.Label
}

func newFakeGmail(labels ...gmail.Label) *fakeGmail {
	return &fakeGmail{
		attempts: map[string]int{},
		failures: map[string][]int{},
		labels:   labels,
	}
}

func (f *fakeGmail) failNext(messageID string, statuses ...int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[messageID] = append(f.failures[messageID], statuses...)
}

func (f *fakeGmail) modifiedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.modified...)
}

func (f *fakeGmail) attemptsFor(messageID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts[messageID]
}

func (f *fakeGmail) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/me/labels" {
			_ = json.NewEncoder(w).Encode(map[string]any{"labels": f.labels})
			return
		}
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		// users/me/messages/<id>/modify
		if len(parts) == 5 && parts[2] == "messages" && parts[4] == "modify" {
			id := parts[3]
			f.mu.Lock()
			f.attempts[id]++
			if pending := f.failures[id]; len(pending) > 0 {
				status := pending[0]
				f.failures[id] = pending[1:]
				f.mu.Unlock()
				w.WriteHeader(status)
				return
			}
			f.modified = append(f.modified, id)
			f.mu.Unlock()
			_, _ = w.Write([]byte(`{}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
}

// newWorkerHarness wires a worker against the fake provider and returns
// the pieces a test needs to seed state.
func newWorkerHarness(t *testing.T, fake *fakeGmail) (*Worker, *database.Client) {
	db := newTestDB(t)
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	provider := gmail.NewClient(srv.Client(), "me", gmail.WithBaseURL(srv.URL))
	taxo := taxonomy.NewService(db)
	return NewWorker(db, provider, taxo, "Email Archive"), db
}

// seedAssignedMessage creates a message assigned to a synced label and
// queues a label push for it.
func seedAssignedMessage(t *testing.T, db *database.Client, messageID string, labelID int) {
	ctx := context.Background()
	_, err := db.EmailMessage.Create().
		SetID(messageID).
		SetInternalDate(time.Now().UTC().AddDate(0, 0, -1)).
		Save(ctx)
	require.NoError(t, err)
	_, err = db.TaxonomyAssignment.Create().
		SetMessageID(messageID).
		SetLabelID(labelID).
		Save(ctx)
	require.NoError(t, err)
	_, err = db.LabelOutbox.Create().
		SetMessageID(messageID).
		SetReason("assignment").
		Save(ctx)
	require.NoError(t, err)
}

func seedSyncedLabel(t *testing.T, db *database.Client, slug, name, gmailID string) int {
	row, err := db.TaxonomyLabel.Create().
		SetLevel(1).
		SetSlug(slug).
		SetName(name).
		SetGmailLabelID(gmailID).
		Save(context.Background())
	require.NoError(t, err)
	return row.ID
}

func TestPushLabelsDrainsFIFO(t *testing.T) {
	fake := newFakeGmail()
	w, db := newWorkerHarness(t, fake)
	ctx := context.Background()

	labelID := seedSyncedLabel(t, db, "financial", "Financial", "L-fin")
	seedAssignedMessage(t, db, "msg-a", labelID)
	seedAssignedMessage(t, db, "msg-b", labelID)

	sum, err := w.PushLabels(ctx, PushOptions{})
	require.NoError(t, err)
	assert.Equal(t, PushSummary{Processed: 2, Succeeded: 2}, sum)
	assert.Equal(t, []string{"msg-a", "msg-b"}, fake.modifiedIDs())

	rows, err := db.LabelOutbox.Query().All(ctx)
	require.NoError(t, err)
	for _, row := range rows {
		assert.NotNil(t, row.ProcessedAt)
		assert.Nil(t, row.Error)
	}
}

func TestPushLabelsRetryThenRecordsError(t *testing.T) {
	fake := newFakeGmail()
	w, db := newWorkerHarness(t, fake)
	ctx := context.Background()

	labelID := seedSyncedLabel(t, db, "financial", "Financial", "L-fin")
	seedAssignedMessage(t, db, "msg-a", labelID)

	// Both the push and its inline retry hit a transient failure; the
	// row is still marked processed with the error recorded.
	fake.failNext("msg-a", http.StatusServiceUnavailable, http.StatusServiceUnavailable)

	sum, err := w.PushLabels(ctx, PushOptions{})
	require.NoError(t, err)
	assert.Equal(t, PushSummary{Processed: 1, Failed: 1}, sum)
	assert.Equal(t, 2, fake.attemptsFor("msg-a"))

	row, err := db.LabelOutbox.Query().Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, row.ProcessedAt)
	require.NotNil(t, row.Error)
	assert.Contains(t, *row.Error, "503")

	// A routine run leaves the failed row alone.
	sum, err = w.PushLabels(ctx, PushOptions{})
	require.NoError(t, err)
	assert.Equal(t, PushSummary{}, sum)

	// RetryFailed resets it and this time the provider cooperates.
	sum, err = w.PushLabels(ctx, PushOptions{RetryFailed: true})
	require.NoError(t, err)
	assert.Equal(t, PushSummary{Processed: 1, Succeeded: 1}, sum)

	row, err = db.LabelOutbox.Query().Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, row.ProcessedAt)
	assert.Nil(t, row.Error)
}

func TestPushLabelsRetriesTransientFailureOnce(t *testing.T) {
	fake := newFakeGmail()
	w, db := newWorkerHarness(t, fake)
	ctx := context.Background()

	labelID := seedSyncedLabel(t, db, "financial", "Financial", "L-fin")
	seedAssignedMessage(t, db, "msg-a", labelID)

	fake.failNext("msg-a", http.StatusTooManyRequests)

	sum, err := w.PushLabels(ctx, PushOptions{})
	require.NoError(t, err)
	assert.Equal(t, PushSummary{Processed: 1, Succeeded: 1}, sum)
	assert.Equal(t, 2, fake.attemptsFor("msg-a"))
}

func TestPushArchiveStampsArchivedAt(t *testing.T) {
	fake := newFakeGmail(gmail.Label{ID: "L-archive", Name: "Email Archive"})
	w, db := newWorkerHarness(t, fake)
	ctx := context.Background()

	_, err := db.EmailMessage.Create().
		SetID("msg-old").
		SetInternalDate(time.Now().UTC().AddDate(-1, 0, 0)).
		Save(ctx)
	require.NoError(t, err)
	_, err = db.ArchiveOutbox.Create().
		SetMessageID("msg-old").
		SetReason(ReasonRetentionEligible).
		Save(ctx)
	require.NoError(t, err)

	sum, err := w.PushArchive(ctx, PushOptions{})
	require.NoError(t, err)
	assert.Equal(t, PushSummary{Processed: 1, Succeeded: 1}, sum)
	assert.Equal(t, []string{"msg-old"}, fake.modifiedIDs())

	msg, err := db.EmailMessage.Get(ctx, "msg-old")
	require.NoError(t, err)
	assert.NotNil(t, msg.ArchivedAt)

	row, err := db.ArchiveOutbox.Query().Only(ctx)
	require.NoError(t, err)
	assert.NotNil(t, row.ProcessedAt)
	assert.Nil(t, row.Error)
}

func TestPlanArchiveReplanningResets(t *testing.T) {
	db := newTestDB(t)
	planner := NewPlanner(db)
	ctx := context.Background()

	labelID := seedSyncedLabel(t, db, "commercial-marketing", "Commercial & Marketing", "L-cm")
	_, err := db.TaxonomyLabel.UpdateOneID(labelID).SetRetentionDays(30).Save(ctx)
	require.NoError(t, err)

	_, err = db.EmailMessage.Create().
		SetID("msg-stale").
		SetInternalDate(time.Now().UTC().AddDate(0, 0, -90)).
		Save(ctx)
	require.NoError(t, err)
	_, err = db.TaxonomyAssignment.Create().
		SetMessageID("msg-stale").
		SetLabelID(labelID).
		Save(ctx)
	require.NoError(t, err)

	n, err := planner.PlanArchive(ctx, 730)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Simulate a failed push; replanning must reset the row to pending.
	_, err = db.ArchiveOutbox.Update().
		SetProcessedAt(time.Now().UTC()).
		SetError("gmail api error: status 503").
		Save(ctx)
	require.NoError(t, err)

	n, err = planner.PlanArchive(ctx, 730)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	row, err := db.ArchiveOutbox.Query().Only(ctx)
	require.NoError(t, err)
	assert.Nil(t, row.ProcessedAt)
	assert.Nil(t, row.Error)

	pending, err := planner.CountPendingArchive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
}

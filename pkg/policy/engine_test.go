package policy

import (
	"context"
	stdsql "database/sql"
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
	"github.com/mailscope/mailscope/ent/emailmessage"
	"github.com/mailscope/mailscope/pkg/database"
	"github.com/mailscope/mailscope/pkg/gmail"
)

// newTestDB mirrors the database package's CI/local harness.
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

	client := database.NewClientFromEnt(entClient, db)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// trashRecorder fakes the provider trash endpoint.
type trashRecorder struct {
	mu      sync.Mutex
	trashed []string
}

func (f *trashRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		// users/me/messages/<id>/trash
		if len(parts) == 5 && parts[2] == "messages" && parts[4] == "trash" {
			f.mu.Lock()
			f.trashed = append(f.trashed, parts[3])
			f.mu.Unlock()
			_, _ = w.Write([]byte(`{}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
}

func (f *trashRecorder) trashedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.trashed...)
}

func seedMessage(t *testing.T, db *database.Client, id, category string, age time.Duration) {
	_, err := db.EmailMessage.Create().
		SetID(id).
		SetCategory(category).
		SetInternalDate(time.Now().UTC().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
}

func TestEnsureDefaultsIdempotent(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	require.NoError(t, store.EnsureDefaults(ctx))
	require.NoError(t, store.EnsureDefaults(ctx))

	rows, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Trash old marketing (180d)", rows[0].Name)
	assert.True(t, rows[0].Enabled)

	def, err := ParseDefinition(rows[0].Definition)
	require.NoError(t, err)
	assert.Len(t, def.Conditions, 2)
}

func TestStoreCreateRejectsInvalidDefinition(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)

	_, err := store.Create(context.Background(), CreateInput{
		Name:       "match everything",
		Definition: Definition{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one condition")
}

func TestApplyTrashesMatchesAndHonorsCadence(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	fake := &trashRecorder{}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	provider := gmail.NewClient(srv.Client(), "me", gmail.WithBaseURL(srv.URL))
	engine := NewEngine(db, store, provider)
	ctx := context.Background()

	_, err := store.Create(ctx, CreateInput{
		Name: "Trash old marketing",
		Definition: Definition{
			Conditions: []Condition{
				{Type: CondCategoryEquals, Value: "Commercial & Marketing"},
				{Type: CondAgeDaysGt, Days: 180},
			},
			Action: TrashAction{Type: ActionMoveToTrash, RetentionDays: 30},
		},
	})
	require.NoError(t, err)

	seedMessage(t, db, "msg-old-marketing", "Commercial & Marketing", 365*24*time.Hour)
	seedMessage(t, db, "msg-fresh-marketing", "Commercial & Marketing", 24*time.Hour)
	seedMessage(t, db, "msg-old-financial", "Financial", 365*24*time.Hour)

	sum, err := engine.Apply(ctx, ApplyOptions{Force: true})
	require.NoError(t, err)
	assert.Equal(t, ApplySummary{Policies: 1, Matched: 1, Trashed: 1}, sum)
	assert.Equal(t, []string{"msg-old-marketing"}, fake.trashedIDs())

	msg, err := db.EmailMessage.Get(ctx, "msg-old-marketing")
	require.NoError(t, err)
	assert.Equal(t, emailmessage.LifecycleStateTrashed, msg.LifecycleState)
	require.NotNil(t, msg.TrashedAt)
	require.NotNil(t, msg.ExpiryAt)
	assert.True(t, msg.ExpiryAt.After(*msg.TrashedAt))
	require.NotNil(t, msg.TrashedByPolicyID)

	// The other messages are untouched.
	for _, id := range []string{"msg-fresh-marketing", "msg-old-financial"} {
		m, err := db.EmailMessage.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, emailmessage.LifecycleStateActive, m.LifecycleState)
	}

	// The run was stamped, so a cadence-gated pass skips the policy.
	sum, err = engine.Apply(ctx, ApplyOptions{})
	require.NoError(t, err)
	assert.Equal(t, ApplySummary{}, sum)
}

func TestApplySkipsDisabledPolicies(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	fake := &trashRecorder{}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	provider := gmail.NewClient(srv.Client(), "me", gmail.WithBaseURL(srv.URL))
	engine := NewEngine(db, store, provider)
	ctx := context.Background()

	row, err := store.Create(ctx, CreateInput{
		Name: "Disabled rule",
		Definition: Definition{
			Conditions: []Condition{{Type: CondAgeDaysGt, Days: 1}},
			Action:     TrashAction{Type: ActionMoveToTrash, RetentionDays: 30},
		},
	})
	require.NoError(t, err)
	_, err = store.SetEnabled(ctx, row.ID, false)
	require.NoError(t, err)

	seedMessage(t, db, "msg-any", "Financial", 48*time.Hour)

	sum, err := engine.Apply(ctx, ApplyOptions{Force: true})
	require.NoError(t, err)
	assert.Equal(t, ApplySummary{}, sum)
	assert.Empty(t, fake.trashedIDs())
}

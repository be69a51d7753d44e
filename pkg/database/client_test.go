package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/mailscope/mailscope/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string
	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
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

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	// Use dialect.Postgres for Ent compatibility while pgx handles the actual connection
	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests, plus the indexes migrations normally add
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, CreateGINIndexes(ctx, drv))
	require.NoError(t, CreatePartialUniqueIndexes(ctx, drv))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
}

func TestSubjectFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	subjects := map[string]string{
		"msg-1": "Your invoice for March is ready",
		"msg-2": "Weekend theatre tickets inside",
	}
	for id, subject := range subjects {
		_, err := client.EmailMessage.Create().
			SetID(id).
			SetSubject(subject).
			SetIsUnread(true).
			Save(ctx)
		require.NoError(t, err)
	}

	rows, err := client.DB().QueryContext(ctx,
		`SELECT message_id FROM email_messages
		WHERE to_tsvector('english', COALESCE(subject, '')) @@ to_tsquery('english', $1)`,
		"invoice & march",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		results = append(results, id)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"msg-1"}, results)
}

func TestLabelIDsContainmentQuery(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.EmailMessage.Create().
		SetID("msg-inbox").
		SetLabelIds([]string{"INBOX", "UNREAD"}).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.EmailMessage.Create().
		SetID("msg-archived").
		SetLabelIds([]string{"UNREAD"}).
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT message_id FROM email_messages WHERE label_ids @> '["INBOX"]'::jsonb`)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		results = append(results, id)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"msg-inbox"}, results)
}

func TestLabelOutboxUnprocessedUnique(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.EmailMessage.Create().
		SetID("msg-1").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.LabelOutbox.Create().
		SetMessageID("msg-1").
		SetReason("assignment").
		Save(ctx)
	require.NoError(t, err)

	// A second unprocessed push for the same message trips the partial
	// unique index.
	_, err = client.LabelOutbox.Create().
		SetMessageID("msg-1").
		SetReason("relabel").
		Save(ctx)
	assert.Error(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clear := func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	}
	t.Cleanup(clear)

	t.Run("defaults", func(t *testing.T) {
		clear()
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "mailscope", cfg.User)
		assert.Equal(t, "mailscope", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("custom values", func(t *testing.T) {
		clear()
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "admin")
		os.Setenv("DB_NAME", "production")
		os.Setenv("DB_SSLMODE", "require")
		os.Setenv("DB_MAX_OPEN_CONNS", "50")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, "production", cfg.Database)
		assert.Equal(t, "require", cfg.SSLMode)
		assert.Equal(t, 50, cfg.MaxOpenConns)
	})

	t.Run("invalid port", func(t *testing.T) {
		clear()
		os.Setenv("DB_PORT", "not-a-port")
		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

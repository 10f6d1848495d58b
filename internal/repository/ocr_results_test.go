package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"modernc.org/sqlite"

	"github.com/werb210/ocr-reconciler/constants"
	"github.com/werb210/ocr-reconciler/gen/ent"
	"github.com/werb210/ocr-reconciler/gen/ent/enttest"
	"github.com/werb210/ocr-reconciler/internal/entity"
	"github.com/werb210/ocr-reconciler/internal/repository"
)

// register modernc's driver under the name ent's sqlite dialect expects
type sqliteDriver struct{ *sqlite.Driver }

func (d sqliteDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return conn, err
	}
	c := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if _, err := c.Exec("PRAGMA foreign_keys = on;", nil); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqliteDriver{Driver: &sqlite.Driver{}})
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// one isolated in-memory database per test
func newClient(t *testing.T) *ent.Client {
	return enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
}

func seedDocument(t *testing.T, docs repository.DocumentRepository, appID string) *entity.Document {
	t.Helper()
	d, err := docs.Create(context.Background(), appID, constants.CashFlow, "Jan Statement.pdf", time.Now().UTC())
	require.NoError(t, err)
	return d
}

func sample(appID string, docID uuid.UUID, fieldKey, value, runID string) *entity.OCRResult {
	return &entity.OCRResult{
		ApplicationID:  appID,
		DocumentID:     docID,
		FieldKey:       fieldKey,
		ExtractedValue: value,
		Confidence:     0.9,
		SourcePage:     1,
		ExtractedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		RunID:          runID,
	}
}

func TestInsert_AssignsMonotonicVersions(t *testing.T) {
	client := newClient(t)
	defer client.Close()

	logger := testLogger()
	docs := repository.NewDocumentRepository(client, logger)
	results := repository.NewOCRResultRepository(client, logger)

	d := seedDocument(t, docs, "app-1")

	first, err := results.Insert(context.Background(), sample("app-1", d.ID, "ending_balance", "12,340", "run-1"))
	require.NoError(t, err)
	assert.Equal(t, 1, first.Version)

	second, err := results.Insert(context.Background(), sample("app-1", d.ID, "ending_balance", "12,400", "run-2"))
	require.NoError(t, err)
	assert.Equal(t, 2, second.Version)

	// a different field on the same document starts back at 1
	other, err := results.Insert(context.Background(), sample("app-1", d.ID, "beginning_balance", "8,000", "run-2"))
	require.NoError(t, err)
	assert.Equal(t, 1, other.Version)
}

func TestInsert_ConcurrentWritersGetDistinctVersions(t *testing.T) {
	// a single connection lets the two writers interleave their
	// read-version and insert statements without sqlite table locks
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	defer client.Close()
	require.NoError(t, client.Schema.Create(context.Background()))

	logger := testLogger()
	docs := repository.NewDocumentRepository(client, logger)
	results := repository.NewOCRResultRepository(client, logger)
	d := seedDocument(t, docs, "app-1")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			run := fmt.Sprintf("run-%d", i+1)
			_, errs[i] = results.Insert(context.Background(), sample("app-1", d.ID, "ending_balance", "12,340", run))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err, "a lost version race must be retried, not surfaced to the caller")
	}

	rows, err := results.ListByDocument(context.Background(), d.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	versions := map[int]bool{}
	for _, row := range rows {
		versions[row.Version] = true
	}
	assert.True(t, versions[1], "versions must stay dense from 1")
	assert.True(t, versions[2], "the retried writer takes the next free version")
}

func TestListByApplication_ReturnsAllVersions(t *testing.T) {
	client := newClient(t)
	defer client.Close()

	logger := testLogger()
	docs := repository.NewDocumentRepository(client, logger)
	results := repository.NewOCRResultRepository(client, logger)

	d := seedDocument(t, docs, "app-1")
	_, err := results.Insert(context.Background(), sample("app-1", d.ID, "ending_balance", "12,340", "run-1"))
	require.NoError(t, err)
	_, err = results.Insert(context.Background(), sample("app-1", d.ID, "ending_balance", "12,400", "run-2"))
	require.NoError(t, err)

	rows, err := results.ListByApplication(context.Background(), "app-1")
	require.NoError(t, err)
	assert.Len(t, rows, 2, "history is append-only; both versions are kept")

	none, err := results.ListByApplication(context.Background(), "app-2")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMaxVersion(t *testing.T) {
	client := newClient(t)
	defer client.Close()

	logger := testLogger()
	docs := repository.NewDocumentRepository(client, logger)
	results := repository.NewOCRResultRepository(client, logger)

	max, err := results.MaxVersion(context.Background(), "app-1")
	require.NoError(t, err)
	assert.Equal(t, 0, max)

	d := seedDocument(t, docs, "app-1")
	for i, run := range []string{"run-1", "run-2", "run-3"} {
		_, err := results.Insert(context.Background(), sample("app-1", d.ID, "ending_balance", "12,340", run))
		require.NoError(t, err)
		max, err = results.MaxVersion(context.Background(), "app-1")
		require.NoError(t, err)
		assert.Equal(t, i+1, max)
	}
}

func TestDocuments_RoundTrip(t *testing.T) {
	client := newClient(t)
	defer client.Close()

	docs := repository.NewDocumentRepository(client, testLogger())
	d := seedDocument(t, docs, "app-1")

	got, err := docs.GetByID(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.CashFlow, got.Category)
	assert.Equal(t, "Jan Statement.pdf", got.Name)

	listed, err := docs.ListByApplication(context.Background(), "app-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, d.ID, listed[0].ID)
}

package outofscope

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaccine-assistant/internal/models"
)

var testEntry = models.OutOfScopeEntry{
	UserInput: "vaccine zona, giá bao nhiêu?",
	Intent:    "out_of_scope",
	Entities:  []models.Entity{{Entity: "vaccine_name", Value: "zona"}},
	Timestamp: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
}

// ==========================
// CSV
// ==========================

func TestCSVSink_AppendAndContains(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "out_of_scope.csv")
	sink := NewCSVSink(path)
	ctx := context.Background()

	found, err := sink.Contains(ctx, testEntry.UserInput)
	require.NoError(t, err)
	assert.False(t, found)

	inserted, err := sink.Append(ctx, testEntry)
	require.NoError(t, err)
	assert.True(t, inserted)

	second := testEntry
	second.UserInput = "tiêm phòng dại"
	_, err = sink.Append(ctx, second)
	require.NoError(t, err)

	found, err = sink.Contains(ctx, testEntry.UserInput)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = sink.Contains(ctx, "user_input")
	require.NoError(t, err)
	assert.False(t, found, "header row must not match")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "user_input,intent,entities,timestamp", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `"vaccine zona, giá bao nhiêu?",out_of_scope,`))
	assert.True(t, strings.HasSuffix(lines[1], ",2024-05-01T08:00:00Z"))
}

// ==========================
// Postgres
// ==========================

func TestNewPostgresSink_TableName(t *testing.T) {
	_, err := NewPostgresSink(nil, "queries; DROP TABLE x")
	assert.Error(t, err)

	s, err := NewPostgresSink(nil, "")
	require.NoError(t, err)
	assert.Equal(t, `"out_of_scope_queries"`, s.table)
}

func TestPostgresSink_Contains(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
	}{
		{"present", true},
		{"absent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM "out_of_scope_queries" WHERE user_input = \$1\)`).
				WithArgs(testEntry.UserInput).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))

			sink, err := NewPostgresSink(db, "")
			require.NoError(t, err)

			got, err := sink.Contains(context.Background(), testEntry.UserInput)
			require.NoError(t, err)
			assert.Equal(t, tt.exists, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresSink_Append(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"inserted", 1, true},
		{"conflict", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec(`INSERT INTO "out_of_scope_queries" \(user_input, intent, entities, created_at\)`).
				WithArgs(testEntry.UserInput, "out_of_scope", testEntry.EntitiesString(), testEntry.Timestamp).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			sink, err := NewPostgresSink(db, "")
			require.NoError(t, err)

			got, err := sink.Append(context.Background(), testEntry)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresSink_EnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "oos_log"`).WillReturnResult(sqlmock.NewResult(0, 0))

	sink, err := NewPostgresSink(db, "oos_log")
	require.NoError(t, err)
	require.NoError(t, sink.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Elasticsearch
// ==========================

type fakeIndex struct {
	mu   sync.Mutex
	docs map[string]string
}

func (f *fakeIndex) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/")
	if len(parts) != 3 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	id := parts[2]

	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodHead && parts[1] == "_doc":
		if _, ok := f.docs[id]; ok {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	case r.Method == http.MethodPut && parts[1] == "_create":
		if _, ok := f.docs[id]; ok {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"error":{"type":"version_conflict_engine_exception"},"status":409}`)
			return
		}
		body, _ := io.ReadAll(r.Body)
		f.docs[id] = string(body)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"result":"created"}`)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestElasticsearchSink_AppendAndContains(t *testing.T) {
	index := &fakeIndex{docs: map[string]string{}}
	srv := httptest.NewServer(index)
	defer srv.Close()

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	sink := NewElasticsearchSink(client, "")
	ctx := context.Background()

	found, err := sink.Contains(ctx, testEntry.UserInput)
	require.NoError(t, err)
	assert.False(t, found)

	inserted, err := sink.Append(ctx, testEntry)
	require.NoError(t, err)
	assert.True(t, inserted)

	found, err = sink.Contains(ctx, testEntry.UserInput)
	require.NoError(t, err)
	assert.True(t, found)

	inserted, err = sink.Append(ctx, testEntry)
	require.NoError(t, err)
	assert.False(t, inserted)

	doc := index.docs[DocumentID(testEntry.UserInput)]
	assert.Contains(t, doc, `"intent":"out_of_scope"`)
	assert.Contains(t, doc, `"timestamp":"2024-05-01T08:00:00Z"`)
}

func TestDocumentID_Stable(t *testing.T) {
	assert.Equal(t, DocumentID("vaccine sởi"), DocumentID("vaccine sởi"))
	assert.NotEqual(t, DocumentID("vaccine sởi"), DocumentID("vaccine sởi "))
	assert.Len(t, DocumentID(""), 64)
}

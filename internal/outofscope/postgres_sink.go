package outofscope

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/lib/pq"

	"vaccine-assistant/internal/models"
)

// DefaultTable holds the out-of-scope log when no table is configured.
const DefaultTable = "out_of_scope_queries"

var tableName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// PostgresSink stores entries in a table with a unique user_input column.
type PostgresSink struct {
	db    *sql.DB
	table string
}

func NewPostgresSink(db *sql.DB, table string) (*PostgresSink, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &PostgresSink{db: db, table: pq.QuoteIdentifier(table)}, nil
}

func (s *PostgresSink) Name() string { return "postgres" }

// EnsureSchema creates the log table if it does not exist.
func (s *PostgresSink) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id BIGSERIAL PRIMARY KEY,
	user_input TEXT NOT NULL UNIQUE,
	intent TEXT NOT NULL,
	entities TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`, s.table)
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create %s: %w", s.table, err)
	}
	return nil
}

func (s *PostgresSink) Contains(ctx context.Context, userInput string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE user_input = $1)`, s.table)
	var exists bool
	if err := s.db.QueryRowContext(ctx, query, userInput).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *PostgresSink) Append(ctx context.Context, entry models.OutOfScopeEntry) (bool, error) {
	query := fmt.Sprintf(`INSERT INTO %s (user_input, intent, entities, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_input) DO NOTHING`, s.table)
	res, err := s.db.ExecContext(ctx, query, entry.UserInput, entry.Intent, entry.EntitiesString(), entry.Timestamp)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"svw.info/colorfocus/internal/domain"
)

// SQLite keeps puzzle history in a single-table database. The driver is
// pure Go, so deployments need no cgo toolchain.
type SQLite struct {
	db     *sql.DB
	dbPath string
}

// NewSQLite opens (or creates) the history database at dbPath.
func NewSQLite(dbPath string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	s := &SQLite{db: db, dbPath: dbPath}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error { return s.db.Close() }

// Path returns the database file path.
func (s *SQLite) Path() string { return s.dbPath }

func (s *SQLite) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzle_history (
		id TEXT PRIMARY KEY,
		seed TEXT NOT NULL,
		grid_size INTEGER NOT NULL,
		color_count INTEGER NOT NULL,
		congruence_percent INTEGER NOT NULL,
		language TEXT,
		grid_json TEXT NOT NULL,
		summary_json TEXT,
		pattern TEXT,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_puzzle_history_created ON puzzle_history(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLite) Save(ctx context.Context, rec *domain.HistoryRecord) error {
	if rec == nil || rec.ID == "" {
		return errors.New("invalid history record: missing ID")
	}
	gridJSON, err := json.Marshal(rec.Grid)
	if err != nil {
		return fmt.Errorf("marshal grid: %w", err)
	}
	var summaryJSON []byte
	if rec.Summary != nil {
		summaryJSON, err = json.Marshal(rec.Summary)
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO puzzle_history
		(id, seed, grid_size, color_count, congruence_percent, language, grid_json, summary_json, pattern, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Grid.Seed,
		rec.Grid.GridSize,
		rec.Grid.ColorCount,
		rec.Grid.CongruencePercent,
		string(rec.Grid.Language),
		string(gridJSON),
		nullableString(summaryJSON),
		nullableString([]byte(rec.Pattern)),
		rec.CreatedAt,
	)
	return err
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.HistoryRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, grid_json, summary_json, pattern, created_at
		FROM puzzle_history WHERE id = ?`, id)

	var rec domain.HistoryRecord
	var gridJSON string
	var summaryJSON, pattern sql.NullString
	if err := row.Scan(&rec.ID, &gridJSON, &summaryJSON, &pattern, &rec.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("history %q: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(gridJSON), &rec.Grid); err != nil {
		return nil, fmt.Errorf("unmarshal grid: %w", err)
	}
	if summaryJSON.Valid && summaryJSON.String != "" {
		var summary domain.MistakeSummary
		if err := json.Unmarshal([]byte(summaryJSON.String), &summary); err != nil {
			return nil, fmt.Errorf("unmarshal summary: %w", err)
		}
		rec.Summary = &summary
	}
	if pattern.Valid {
		rec.Pattern = domain.MistakePattern(pattern.String)
	}
	return &rec, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.HistoryMeta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seed, grid_size, color_count, created_at
		FROM puzzle_history ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HistoryMeta
	for rows.Next() {
		var m domain.HistoryMeta
		if err := rows.Scan(&m.ID, &m.Seed, &m.GridSize, &m.ColorCount, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func nullableString(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}

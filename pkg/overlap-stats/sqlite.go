package overlapstats

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	quickmath "aabb.theprimeagen.com/pkg/quick-math"
	"github.com/jmoiron/sqlx"
	_ "github.com/tursodatabase/go-libsql"
)

type resultRow struct {
	Name     string        `db:"name"`
	AX       int           `db:"a_x"`
	AY       int           `db:"a_y"`
	AWidth   int           `db:"a_width"`
	AHeight  int           `db:"a_height"`
	BX       int           `db:"b_x"`
	BY       int           `db:"b_y"`
	BWidth   int           `db:"b_width"`
	BHeight  int           `db:"b_height"`
	Overlaps int           `db:"overlaps"`
	Expect   sql.NullInt64 `db:"expect"`
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func toRow(r Result) resultRow {
	row := resultRow{
		Name:     r.Name,
		AX:       r.A.X,
		AY:       r.A.Y,
		AWidth:   r.A.Width,
		AHeight:  r.A.Height,
		BX:       r.B.X,
		BY:       r.B.Y,
		BWidth:   r.B.Width,
		BHeight:  r.B.Height,
		Overlaps: boolToInt(r.Overlaps),
	}
	if r.Expect != nil {
		row.Expect = sql.NullInt64{Int64: int64(boolToInt(*r.Expect)), Valid: true}
	}
	return row
}

func (row resultRow) result() Result {
	r := Result{
		Name:     row.Name,
		A:        quickmath.NewRect(row.AX, row.AY, row.AWidth, row.AHeight),
		B:        quickmath.NewRect(row.BX, row.BY, row.BWidth, row.BHeight),
		Overlaps: row.Overlaps != 0,
	}
	if row.Expect.Valid {
		expect := row.Expect.Int64 != 0
		r.Expect = &expect
	}
	return r
}

var _ ResultStore = (*Sqlite)(nil)

type Sqlite struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func getLogger() *slog.Logger {
	return slog.Default().With("area", "Sqlite")
}

func ClearSQLiteFiles(path string) {
	os.Remove(path)
	os.Remove(fmt.Sprintf("%s-shm", path))
	os.Remove(fmt.Sprintf("%s-wal", path))
}

// NewSqlite opens path through the libsql driver, e.g. "file:results.db".
func NewSqlite(path string) (*Sqlite, error) {
	db, err := sqlx.Open("libsql", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: open %s: %w", path, err)
	}
	return &Sqlite{
		db:     db,
		logger: getLogger(),
	}, nil
}

func (s *Sqlite) setPragma(name string, value string) error {
	row := s.db.QueryRowx(fmt.Sprintf("PRAGMA %s=%s;", name, value))
	var v string
	if err := row.Scan(&v); err != nil {
		return fmt.Errorf("pragma %s=%s: %w", name, value, err)
	}
	s.logger.Debug("pragma", "name", name, "value", v)
	return nil
}

func (s *Sqlite) SetSqliteModes() error {
	if err := s.setPragma("busy_timeout", "3000"); err != nil {
		return err
	}
	return s.setPragma("journal_mode", "WAL")
}

func (s *Sqlite) CreateOverlapResults() error {
	query := `
    CREATE TABLE IF NOT EXISTS OverlapResults (
        name TEXT PRIMARY KEY,
        a_x INTEGER,
        a_y INTEGER,
        a_width INTEGER,
        a_height INTEGER,
        b_x INTEGER,
        b_y INTEGER,
        b_width INTEGER,
        b_height INTEGER,
        overlaps INTEGER,
        expect INTEGER
    );`

	_, err := s.db.Exec(query)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_overlaps ON OverlapResults (overlaps);`)
	return err
}

func (s *Sqlite) Record(result Result) error {
	s.logger.Debug("Recording", "result", result.String())
	query := `INSERT OR REPLACE INTO OverlapResults (name, a_x, a_y, a_width, a_height, b_x, b_y, b_width, b_height, overlaps, expect)
VALUES (:name, :a_x, :a_y, :a_width, :a_height, :b_x, :b_y, :b_width, :b_height, :overlaps, :expect);`

	_, err := s.db.NamedExec(query, toRow(result))
	return err
}

func (s *Sqlite) GetAll() ([]Result, error) {
	var rows []resultRow
	if err := s.db.Select(&rows, `SELECT * FROM OverlapResults ORDER BY name;`); err != nil {
		return nil, err
	}

	out := make([]Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.result())
	}
	return out, nil
}

func (s *Sqlite) GetByName(name string) *Result {
	var row resultRow
	err := s.db.Get(&row, `SELECT *
FROM OverlapResults
WHERE name=?;`, name)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Error("GetByName", "name", name, "error", err)
		}
		return nil
	}

	r := row.result()
	return &r
}

func (s *Sqlite) Summary() Summary {
	query := `SELECT COUNT(*) AS total,
    COALESCE(SUM(overlaps), 0) AS overlapping,
    COALESCE(SUM(expect IS NOT NULL AND expect != overlaps), 0) AS mismatched
FROM OverlapResults;`

	var summary Summary
	if err := s.db.Get(&summary, query); err != nil {
		s.logger.Error("unable to summarize results", "error", err)
	}
	return summary
}

func (s *Sqlite) Clear() error {
	_, err := s.db.Exec(`DELETE FROM OverlapResults;`)
	return err
}

func (s *Sqlite) Close() error {
	return s.db.Close()
}

// Package store persists galaxies, classifications and skips in SQLite.
//
// It is the local stand-in for the hosted backend: the classification screen
// only talks to it through a small interface, so another backend can replace
// it without touching the form.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"galaxy-classify/internal/quickcode"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrIncomplete = errors.New("classification needs both LSB class and morphology")
)

// Galaxy is one catalog entry.
type Galaxy struct {
	ID      string  `json:"id" yaml:"id"`
	RA      float64 `json:"ra" yaml:"ra"`
	Dec     float64 `json:"dec" yaml:"dec"`
	Reff    float64 `json:"reff" yaml:"reff"`
	Q       float64 `json:"q" yaml:"q"`
	PA      float64 `json:"pa" yaml:"pa"`
	Nucleus bool    `json:"nucleus" yaml:"nucleus"`
	Seq     int     `json:"-" yaml:"-"`
}

// Classification is a stored label for one (user, galaxy) pair.
type Classification struct {
	ID        string
	User      string
	GalaxyID  string
	Flags     quickcode.Flags
	Comments  string
	TimeSpent time.Duration
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Submission is what the form sends when the user presses enter.
type Submission struct {
	User      string
	GalaxyID  string
	Flags     quickcode.Flags
	Comments  string
	TimeSpent time.Duration
}

// Progress summarizes how far a user is through the catalog.
type Progress struct {
	Classified int
	Skipped    int
	Total      int
}

func (p Progress) Completed() int { return p.Classified + p.Skipped }
func (p Progress) Remaining() int { return p.Total - p.Completed() }

// Percentage is the rounded share of completed galaxies, 0 for an empty catalog.
func (p Progress) Percentage() int {
	if p.Total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(p.Completed()) / float64(p.Total)))
}

// Store wraps the SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates or opens the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite has a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// ImportGalaxies upserts gs by ID. New galaxies are appended to the catalog
// order in the order given; existing ones keep their position.
func (s *Store) ImportGalaxies(ctx context.Context, gs []Galaxy) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	var next int
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(seq), -1) + 1 FROM galaxies").Scan(&next); err != nil {
		return 0, fmt.Errorf("read catalog size: %w", err)
	}
	const (
		insert = `INSERT INTO galaxies (id, seq, ra, dec, reff, q, pa, nucleus) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
		update = `UPDATE galaxies SET ra = ?, dec = ?, reff = ?, q = ?, pa = ?, nucleus = ? WHERE id = ?`
	)
	for i, g := range gs {
		res, err := tx.ExecContext(ctx, update, g.RA, g.Dec, g.Reff, g.Q, g.PA, boolInt(g.Nucleus), g.ID)
		if err != nil {
			return 0, fmt.Errorf("import galaxy %d (%s): %w", i, g.ID, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			continue
		}
		if _, err := tx.ExecContext(ctx, insert, g.ID, next, g.RA, g.Dec, g.Reff, g.Q, g.PA, boolInt(g.Nucleus)); err != nil {
			return 0, fmt.Errorf("import galaxy %d (%s): %w", i, g.ID, err)
		}
		next++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return len(gs), nil
}

const galaxyCols = "id, seq, ra, dec, reff, q, pa, nucleus"

func scanGalaxy(sc interface{ Scan(...any) error }) (Galaxy, error) {
	var g Galaxy
	var nucleus int
	err := sc.Scan(&g.ID, &g.Seq, &g.RA, &g.Dec, &g.Reff, &g.Q, &g.PA, &nucleus)
	g.Nucleus = nucleus != 0
	return g, err
}

// Galaxies returns the catalog in order.
func (s *Store) Galaxies(ctx context.Context) ([]Galaxy, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+galaxyCols+" FROM galaxies ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("query galaxies: %w", err)
	}
	defer rows.Close()
	var out []Galaxy
	for rows.Next() {
		g, err := scanGalaxy(rows)
		if err != nil {
			return nil, fmt.Errorf("scan galaxy: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Galaxy looks up one galaxy by external id.
func (s *Store) Galaxy(ctx context.Context, id string) (Galaxy, error) {
	g, err := scanGalaxy(s.db.QueryRowContext(ctx, "SELECT "+galaxyCols+" FROM galaxies WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return Galaxy{}, fmt.Errorf("galaxy %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Galaxy{}, fmt.Errorf("query galaxy %s: %w", id, err)
	}
	return g, nil
}

// NextPending returns the first galaxy in catalog order that user has
// neither classified nor skipped.
func (s *Store) NextPending(ctx context.Context, user string) (Galaxy, error) {
	g, err := scanGalaxy(s.db.QueryRowContext(ctx, `SELECT `+galaxyCols+` FROM galaxies g
		WHERE NOT EXISTS (SELECT 1 FROM classifications c WHERE c.galaxy_id = g.id AND c.username = ?)
		AND NOT EXISTS (SELECT 1 FROM skipped s WHERE s.galaxy_id = g.id AND s.username = ?)
		ORDER BY g.seq LIMIT 1`, user, user))
	if errors.Is(err, sql.ErrNoRows) {
		return Galaxy{}, fmt.Errorf("no pending galaxy for %s: %w", user, ErrNotFound)
	}
	if err != nil {
		return Galaxy{}, fmt.Errorf("query pending galaxy: %w", err)
	}
	return g, nil
}

const classificationCols = `id, username, galaxy_id, lsb_class, morphology, awesome_flag, valid_redshift,
	visible_nucleus, failed_fitting, comments, time_spent_ms, created_at, updated_at`

func scanClassification(sc interface{ Scan(...any) error }) (Classification, error) {
	var (
		c                            Classification
		lsb, morph                   int
		awesome, redshift, nuc, fail int
		spentMS, created, updated    int64
	)
	err := sc.Scan(&c.ID, &c.User, &c.GalaxyID, &lsb, &morph, &awesome, &redshift, &nuc, &fail,
		&c.Comments, &spentMS, &created, &updated)
	if err != nil {
		return Classification{}, err
	}
	c.Flags = quickcode.Flags{
		LSB:            quickcode.Some(lsb),
		Morphology:     quickcode.Some(morph),
		Awesome:        awesome != 0,
		ValidRedshift:  redshift != 0,
		VisibleNucleus: nuc != 0,
		FailedFitting:  fail != 0,
	}
	c.TimeSpent = time.Duration(spentMS) * time.Millisecond
	c.CreatedAt = time.UnixMilli(created).UTC()
	c.UpdatedAt = time.UnixMilli(updated).UTC()
	return c, nil
}

// Classification returns the user's saved classification of a galaxy, or nil
// if there is none.
func (s *Store) Classification(ctx context.Context, user, galaxyID string) (*Classification, error) {
	c, err := scanClassification(s.db.QueryRowContext(ctx,
		"SELECT "+classificationCols+" FROM classifications WHERE username = ? AND galaxy_id = ?", user, galaxyID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query classification: %w", err)
	}
	return &c, nil
}

// Submit stores a classification. Resubmitting updates the existing row and
// adds to its time spent. Any earlier skip of the galaxy is cleared.
func (s *Store) Submit(ctx context.Context, sub Submission) (*Classification, error) {
	if !sub.Flags.Complete() {
		return nil, ErrIncomplete
	}
	if _, err := s.Galaxy(ctx, sub.GalaxyID); err != nil {
		return nil, err
	}
	now := s.now().UnixMilli()
	f := sub.Flags

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin submit: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO classifications (`+classificationCols+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(username, galaxy_id) DO UPDATE SET
			lsb_class = excluded.lsb_class,
			morphology = excluded.morphology,
			awesome_flag = excluded.awesome_flag,
			valid_redshift = excluded.valid_redshift,
			visible_nucleus = excluded.visible_nucleus,
			failed_fitting = excluded.failed_fitting,
			comments = excluded.comments,
			time_spent_ms = classifications.time_spent_ms + excluded.time_spent_ms,
			updated_at = excluded.updated_at`,
		uuid.NewString(), sub.User, sub.GalaxyID, f.LSB.Value, f.Morphology.Value,
		boolInt(f.Awesome), boolInt(f.ValidRedshift), boolInt(f.VisibleNucleus), boolInt(f.FailedFitting),
		sub.Comments, sub.TimeSpent.Milliseconds(), now, now)
	if err != nil {
		return nil, fmt.Errorf("save classification: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM skipped WHERE username = ? AND galaxy_id = ?", sub.User, sub.GalaxyID); err != nil {
		return nil, fmt.Errorf("clear skip: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit submit: %w", err)
	}
	return s.Classification(ctx, sub.User, sub.GalaxyID)
}

// Skip marks a galaxy as skipped by user, keeping the comments typed so far.
// A galaxy the user already classified stays classified.
func (s *Store) Skip(ctx context.Context, user, galaxyID, comments string) error {
	if _, err := s.Galaxy(ctx, galaxyID); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO skipped (username, galaxy_id, comments, created_at)
		SELECT ?, ?, ?, ?
		WHERE NOT EXISTS (SELECT 1 FROM classifications WHERE username = ? AND galaxy_id = ?)
		ON CONFLICT(username, galaxy_id) DO UPDATE SET comments = excluded.comments`,
		user, galaxyID, comments, s.now().UnixMilli(), user, galaxyID)
	if err != nil {
		return fmt.Errorf("save skip: %w", err)
	}
	return nil
}

// Classifications lists classifications in catalog order. An empty user
// lists everyone's.
func (s *Store) Classifications(ctx context.Context, user string) ([]Classification, error) {
	q := `SELECT c.id, c.username, c.galaxy_id, c.lsb_class, c.morphology, c.awesome_flag,
		c.valid_redshift, c.visible_nucleus, c.failed_fitting, c.comments, c.time_spent_ms,
		c.created_at, c.updated_at
		FROM classifications c JOIN galaxies g ON g.id = c.galaxy_id`
	var args []any
	if user != "" {
		q += " WHERE c.username = ?"
		args = append(args, user)
	}
	q += " ORDER BY g.seq, c.username"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query classifications: %w", err)
	}
	defer rows.Close()
	var out []Classification
	for rows.Next() {
		c, err := scanClassification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan classification: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Progress counts the user's classified and skipped galaxies.
func (s *Store) Progress(ctx context.Context, user string) (Progress, error) {
	var p Progress
	err := s.db.QueryRowContext(ctx, `SELECT
		(SELECT COUNT(*) FROM galaxies),
		(SELECT COUNT(*) FROM classifications c JOIN galaxies g ON g.id = c.galaxy_id WHERE c.username = ?),
		(SELECT COUNT(*) FROM skipped s JOIN galaxies g ON g.id = s.galaxy_id WHERE s.username = ?
			AND NOT EXISTS (SELECT 1 FROM classifications c WHERE c.username = s.username AND c.galaxy_id = s.galaxy_id))`,
		user, user).Scan(&p.Total, &p.Classified, &p.Skipped)
	if err != nil {
		return Progress{}, fmt.Errorf("query progress: %w", err)
	}
	return p, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

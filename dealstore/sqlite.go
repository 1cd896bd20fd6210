package dealstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/domino14/klondike/cards"
)

const schema = `
CREATE TABLE IF NOT EXISTS deals (
	id         TEXT PRIMARY KEY,
	seed       TEXT NOT NULL,
	deck       TEXT NOT NULL,
	played     INTEGER NOT NULL,
	won        INTEGER NOT NULL,
	foundation INTEGER NOT NULL,
	moves      INTEGER NOT NULL,
	rounds     INTEGER NOT NULL,
	created    INTEGER NOT NULL
)`

// SQLiteRepo stores deals in a SQLite database file.
type SQLiteRepo struct {
	db *sql.DB
}

func NewSQLiteRepo(path string) (*SQLiteRepo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening deal store: %w", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating deal store schema: %w", err)
	}
	log.Debug().Str("path", path).Msg("opened-deal-store")
	return &SQLiteRepo{db: db}, nil
}

func (r *SQLiteRepo) Save(ctx context.Context, d Deal) error {
	var sb strings.Builder
	if err := cards.WriteDeck(&sb, d.Deck); err != nil {
		return err
	}
	if d.Created.IsZero() {
		d.Created = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `INSERT OR REPLACE INTO deals
		(id, seed, deck, played, won, foundation, moves, rounds, created)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Seed, sb.String(), d.Played, d.Result.Won,
		d.Result.Foundation, d.Result.Moves, d.Result.Rounds, d.Created.UnixNano())
	if err != nil {
		return fmt.Errorf("saving deal %s: %w", d.ID, err)
	}
	return nil
}

func (r *SQLiteRepo) Load(ctx context.Context, id string) (Deal, error) {
	var (
		d       Deal
		deck    string
		created int64
	)
	row := r.db.QueryRowContext(ctx, `SELECT id, seed, deck, played, won,
		foundation, moves, rounds, created FROM deals WHERE id = ?`, id)
	err := row.Scan(&d.ID, &d.Seed, &deck, &d.Played, &d.Result.Won,
		&d.Result.Foundation, &d.Result.Moves, &d.Result.Rounds, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Deal{}, ErrNotFound
	}
	if err != nil {
		return Deal{}, fmt.Errorf("loading deal %s: %w", id, err)
	}
	d.Deck, err = cards.ParseDeck(strings.NewReader(deck))
	if err != nil {
		return Deal{}, fmt.Errorf("stored deal %s is corrupt: %w", id, err)
	}
	d.Result.DealID = d.ID
	d.Result.Seed = d.Seed
	d.Created = time.Unix(0, created)
	return d, nil
}

func (r *SQLiteRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM deals ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DedS3t/drinkopoly-backend/app/models"
	"github.com/DedS3t/drinkopoly-backend/platform/deck"
	_ "github.com/mattn/go-sqlite3"
)

const createCards = `CREATE TABLE IF NOT EXISTS cards (
	id            INTEGER PRIMARY KEY,
	text          TEXT    NOT NULL,
	type          TEXT    NOT NULL,
	is_active     INTEGER NOT NULL,
	effect_kind   TEXT    NOT NULL DEFAULT 'none',
	effect_target INTEGER NOT NULL DEFAULT 0,
	effect_steps  INTEGER NOT NULL DEFAULT 0
);`

// SQLiteCardStore keeps the library in a local file, for single-device play
// without a Postgres server.
type SQLiteCardStore struct {
	db *sql.DB
}

func OpenSQLite(dsn string) (*SQLiteCardStore, error) {
	if dir := filepath.Dir(dsn); dir != "." && dir != "" && dsn != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	if dsn == ":memory:" {
		// every pooled connection would get its own empty database
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(createCards); err != nil {
		db.Close()
		return nil, fmt.Errorf("create cards: %w", err)
	}
	return &SQLiteCardStore{db: db}, nil
}

func (s *SQLiteCardStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteCardStore) load(ctx context.Context, cardType models.CardType) ([]models.Card, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, text, type, is_active, effect_kind, effect_target, effect_steps
		 FROM cards WHERE type = ? ORDER BY id`, string(cardType))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []cardRow
	for rows.Next() {
		var r cardRow
		if err := rows.Scan(&r.Id, &r.Text, &r.Type, &r.IsActive, &r.EffectKind, &r.EffectTarget, &r.EffectSteps); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		if cardType == models.CardMiniGame {
			return deck.DefaultMiniGameCards(), nil
		}
		return deck.DefaultChanceCards(), nil
	}
	return toCards(out), nil
}

func (s *SQLiteCardStore) save(ctx context.Context, cardType models.CardType, cards []models.Card) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE type = ?`, string(cardType)); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, card := range cards {
		card.Type = cardType
		r := toRow(card)
		_, err := tx.ExecContext(ctx,
			`INSERT INTO cards (id, text, type, is_active, effect_kind, effect_target, effect_steps)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.Id, r.Text, r.Type, r.IsActive, r.EffectKind, r.EffectTarget, r.EffectSteps)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert card %d: %w", r.Id, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteCardStore) LoadChanceCards(ctx context.Context) ([]models.Card, error) {
	return s.load(ctx, models.CardChance)
}

func (s *SQLiteCardStore) LoadMiniGameCards(ctx context.Context) ([]models.Card, error) {
	return s.load(ctx, models.CardMiniGame)
}

func (s *SQLiteCardStore) SaveChanceCards(ctx context.Context, cards []models.Card) error {
	return s.save(ctx, models.CardChance, cards)
}

func (s *SQLiteCardStore) SaveMiniGameCards(ctx context.Context, cards []models.Card) error {
	return s.save(ctx, models.CardMiniGame, cards)
}

func (s *SQLiteCardStore) ResetToDefaults(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cards`)
	return err
}

var _ deck.Store = (*SQLiteCardStore)(nil)

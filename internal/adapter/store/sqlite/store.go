// Package sqlite persists reading history in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/arcano/oracle/internal/domain"
	"github.com/arcano/oracle/internal/store"
	_ "github.com/mattn/go-sqlite3"
)

// Store implements store.Store using SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a new SQLite store at the given path.
// Use ":memory:" for an in-memory database (useful for testing).
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &Store{db: db}

	if err := s.createSchema(); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return s, nil
}

func (s *Store) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS readings (
		reading_id TEXT PRIMARY KEY,
		spread_id TEXT NOT NULL,
		question TEXT,
		interpretation TEXT NOT NULL,
		source TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS reading_cards (
		reading_id TEXT NOT NULL,
		position_id INTEGER NOT NULL,
		card_id TEXT NOT NULL,
		card_name TEXT NOT NULL,
		card_number INTEGER NOT NULL,
		arcana TEXT NOT NULL,
		suit TEXT,
		reversed INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (reading_id, position_id),
		FOREIGN KEY (reading_id) REFERENCES readings(reading_id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_readings_created_at ON readings(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveReading persists a reading and its cards in one transaction.
func (s *Store) SaveReading(ctx context.Context, reading domain.Reading) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO readings (reading_id, spread_id, question, interpretation, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		reading.ID, reading.SpreadID, reading.Question, reading.Interpretation,
		reading.Source, reading.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("insert reading: %w", err)
	}

	for _, card := range reading.Cards {
		reversed := 0
		if card.Reversed {
			reversed = 1
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO reading_cards (reading_id, position_id, card_id, card_name, card_number, arcana, suit, reversed)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			reading.ID, card.PositionID, card.ID, card.Name, card.Number,
			card.Arcana, card.Suit, reversed)
		if err != nil {
			return fmt.Errorf("insert card: %w", err)
		}
	}

	return tx.Commit()
}

// ListReadings returns readings ordered newest first.
func (s *Store) ListReadings(ctx context.Context, limit int) ([]domain.Reading, error) {
	query := `SELECT reading_id, spread_id, question, interpretation, source, created_at
		 FROM readings ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query readings: %w", err)
	}
	defer rows.Close()

	var readings []domain.Reading
	for rows.Next() {
		reading, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate readings: %w", err)
	}

	for i := range readings {
		cards, err := s.loadCards(ctx, readings[i].ID)
		if err != nil {
			return nil, err
		}
		readings[i].Cards = cards
	}

	return readings, nil
}

// GetReading fetches one reading by id.
func (s *Store) GetReading(ctx context.Context, id string) (domain.Reading, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT reading_id, spread_id, question, interpretation, source, created_at
		 FROM readings WHERE reading_id = ?`, id)

	reading, err := scanReading(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reading{}, store.ErrNotFound
		}
		return domain.Reading{}, err
	}

	cards, err := s.loadCards(ctx, reading.ID)
	if err != nil {
		return domain.Reading{}, err
	}
	reading.Cards = cards

	return reading, nil
}

// DeleteReading removes a reading; cards cascade.
func (s *Store) DeleteReading(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM readings WHERE reading_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete reading: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReading(row rowScanner) (domain.Reading, error) {
	var reading domain.Reading
	var createdAt int64
	if err := row.Scan(&reading.ID, &reading.SpreadID, &reading.Question,
		&reading.Interpretation, &reading.Source, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reading{}, err
		}
		return domain.Reading{}, fmt.Errorf("scan reading: %w", err)
	}
	reading.CreatedAt = time.Unix(createdAt, 0).UTC()
	return reading, nil
}

func (s *Store) loadCards(ctx context.Context, readingID string) ([]domain.DrawnCard, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position_id, card_id, card_name, card_number, arcana, suit, reversed
		 FROM reading_cards WHERE reading_id = ? ORDER BY position_id`, readingID)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.DrawnCard
	for rows.Next() {
		var card domain.DrawnCard
		var reversed int
		if err := rows.Scan(&card.PositionID, &card.ID, &card.Name, &card.Number,
			&card.Arcana, &card.Suit, &reversed); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		card.Reversed = reversed == 1
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards: %w", err)
	}

	return cards, nil
}

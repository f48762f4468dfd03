package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/econectar/econectar-web/config"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/mattn/go-sqlite3"
)

// Message is one stored contact-form submission.
type Message struct {
	ID        int64
	Name      string
	Email     string
	Body      string
	CreatedAt time.Time
}

// Store persists contact messages and newsletter subscribers.
type Store struct {
	db *sql.DB
}

func NewStore(cfg *config.DbConfig, migrationsURL string) (*Store, error) {
	db, err := sql.Open(cfg.Type, cfg.Cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("fail to initialize db: %w", err)
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("fail to initialize driver for migrating db: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsURL, cfg.Type, driver)
	if err != nil {
		return nil, fmt.Errorf("fail to initialize migration client: %w", err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, fmt.Errorf("fail to apply migrations: %w", err)
	}
	slog.Debug("successfully applied migrations")

	return &Store{db: db}, nil
}

func (s *Store) SaveMessage(ctx context.Context, name string, email string, body string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_messages (name, email, body, created_at) VALUES (?, ?, ?, ?)`,
		name, email, body, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("insert contact message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read contact message id: %w", err)
	}
	return id, nil
}

func (s *Store) Messages(ctx context.Context) ([]*Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, body, created_at FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	messages := []*Message{}
	for rows.Next() {
		msg := &Message{}
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Body, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// Subscribe registers a newsletter address. Re-subscribing the same
// address is a no-op, not an error.
func (s *Store) Subscribe(ctx context.Context, email string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO subscribers (email, created_at) VALUES (?, ?) ON CONFLICT(email) DO NOTHING`,
		email, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert subscriber: %w", err)
	}
	return nil
}

func (s *Store) Subscribers(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT email FROM subscribers ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("query subscribers: %w", err)
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if !strings.Contains(connString, "pool_max_conns") {
		cfg.MaxConns = defaultPoolSize
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertProfile inserts or updates a profile by user id.
func (s *PostgresStore) UpsertProfile(ctx context.Context, p *domain.Profile) error {
	args := pgx.NamedArgs{
		"user_id":      p.UserID,
		"username":     p.Username,
		"display_name": p.DisplayName,
	}
	if err := s.pool.QueryRow(ctx, queryUpsertProfile, args).Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a profile by user id.
func (s *PostgresStore) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	p := &domain.Profile{}
	err := s.pool.QueryRow(ctx, queryGetProfile, userID).Scan(
		&p.UserID, &p.Username, &p.DisplayName, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return p, nil
}

// CreateCollection inserts a collection and its cards in one transaction.
// Any card failure rolls the collection back.
func (s *PostgresStore) CreateCollection(
	ctx context.Context,
	c *domain.Collection,
	cards []domain.Card,
) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, queryInsertCollection, pgx.NamedArgs{
			"name":    c.Name,
			"user_id": c.UserID,
		}).Scan(&c.ID, &c.ImportedAt, &c.CreatedAt)
		if err != nil {
			return fmt.Errorf("inserting collection: %w", err)
		}

		if len(cards) > 0 {
			batch := &pgx.Batch{}
			for i := range cards {
				batch.Queue(queryInsertCard, pgx.NamedArgs{
					"collection_id":    c.ID,
					"card_name":        cards[i].Name,
					"quantity":         cards[i].Quantity,
					"set_name":         cards[i].SetName,
					"collector_number": cards[i].CollectorNumber,
				})
			}
			if err := tx.SendBatch(ctx, batch).Close(); err != nil {
				return fmt.Errorf("inserting cards: %w", err)
			}
		}

		c.CardCount = len(cards)
		return nil
	})
}

// ListCollections returns a user's collections, most recently imported first.
func (s *PostgresStore) ListCollections(ctx context.Context, userID string) ([]domain.Collection, error) {
	rows, err := s.pool.Query(ctx, queryListCollections, userID)
	if err != nil {
		return nil, fmt.Errorf("querying collections: %w", err)
	}
	defer rows.Close()

	collections := []domain.Collection{}
	for rows.Next() {
		var c domain.Collection
		if err := scanCollection(rows, &c); err != nil {
			return nil, fmt.Errorf("scanning collection: %w", err)
		}
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating collections: %w", err)
	}
	return collections, nil
}

// GetCollection retrieves a collection by id.
func (s *PostgresStore) GetCollection(ctx context.Context, id string) (*domain.Collection, error) {
	c := &domain.Collection{}
	err := scanCollection(s.pool.QueryRow(ctx, queryGetCollection, id), c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting collection: %w", err)
	}
	return c, nil
}

// DeleteCollection removes a collection and, by cascade, its cards.
func (s *PostgresStore) DeleteCollection(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteCollection, id)
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCards returns a collection's cards ordered by name. A non-blank
// filter restricts results to names containing it, ignoring case.
func (s *PostgresStore) ListCards(
	ctx context.Context,
	collectionID, filter string,
) ([]domain.Card, error) {
	rows, err := s.pool.Query(ctx, queryListCards, collectionID, ContainsPattern(filter))
	if err != nil {
		return nil, fmt.Errorf("querying cards: %w", err)
	}
	defer rows.Close()

	cards := []domain.Card{}
	for rows.Next() {
		var c domain.Card
		if err := rows.Scan(
			&c.ID, &c.CollectionID, &c.Name, &c.Quantity, &c.SetName, &c.CollectorNumber,
		); err != nil {
			return nil, fmt.Errorf("scanning card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cards: %w", err)
	}
	return cards, nil
}

// SearchCards finds cards across all users whose name contains query.
func (s *PostgresStore) SearchCards(
	ctx context.Context,
	query string,
	limit int,
) ([]domain.CardHit, error) {
	pattern := ContainsPattern(query)
	if pattern == "" {
		return []domain.CardHit{}, nil
	}

	rows, err := s.pool.Query(ctx, querySearchCards, pattern, ClampSearchLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("searching cards: %w", err)
	}
	defer rows.Close()

	hits := []domain.CardHit{}
	for rows.Next() {
		var h domain.CardHit
		if err := rows.Scan(
			&h.CardName, &h.SetName, &h.Quantity,
			&h.CollectionID, &h.CollectionName, &h.OwnerID, &h.OwnerUsername,
		); err != nil {
			return nil, fmt.Errorf("scanning search hit: %w", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search hits: %w", err)
	}
	return hits, nil
}

func scanCollection(row pgx.Row, c *domain.Collection) error {
	return row.Scan(&c.ID, &c.Name, &c.UserID, &c.ImportedAt, &c.CreatedAt, &c.CardCount)
}

// Package store defines the datastore abstraction for tcg-collection-tracker.
// Handlers depend on the Store interface, never on the concrete Postgres
// implementation, so they can be tested against mocks.
package store

import (
	"context"
	"errors"

	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// DefaultSearchLimit caps global card search results.
const DefaultSearchLimit = 500

// Store defines all data access operations for tcg-collection-tracker.
type Store interface {
	// Profiles
	UpsertProfile(ctx context.Context, p *domain.Profile) error
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)

	// Collections
	CreateCollection(ctx context.Context, c *domain.Collection, cards []domain.Card) error
	ListCollections(ctx context.Context, userID string) ([]domain.Collection, error)
	GetCollection(ctx context.Context, id string) (*domain.Collection, error)
	DeleteCollection(ctx context.Context, id string) error

	// Cards
	ListCards(ctx context.Context, collectionID, filter string) ([]domain.Card, error)
	SearchCards(ctx context.Context, query string, limit int) ([]domain.CardHit, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}

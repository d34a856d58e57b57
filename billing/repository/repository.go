package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/billing/repository/events"
	"encore.app/billing/repository/subscriptions"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Events        events.Querier
	Subscriptions subscriptions.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Events:        events.New(db),
		Subscriptions: subscriptions.New(db),
	}
}

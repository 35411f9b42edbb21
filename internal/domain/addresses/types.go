package addresses

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound also covers addresses that exist but belong to another
// user; the API never reveals which of the two it was.
var ErrNotFound = errors.New("address not found")

// Address is one entry in a user's address book. CEP is the Brazilian
// postal code.
type Address struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"-"`
	Alias         string    `json:"alias"`
	RecipientName string    `json:"recipient_name"`
	Phone         string    `json:"phone"`
	CEP           string    `json:"cep"`
	Street        string    `json:"street"`
	Number        string    `json:"number"`
	Complement    *string   `json:"complement,omitempty"`
	Neighborhood  string    `json:"neighborhood"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Store interface {
	Create(ctx context.Context, a *Address) error
	ListByUser(ctx context.Context, userID int64) ([]Address, error)
	GetForUser(ctx context.Context, id, userID int64) (*Address, error)
	Update(ctx context.Context, id, userID int64, updates map[string]interface{}) error
	Delete(ctx context.Context, id, userID int64) error
}

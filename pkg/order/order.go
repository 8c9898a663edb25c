package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Order represents a customer purchase order.
type Order struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price" swaggertype:"number"`
	CreatedAt time.Time       `json:"created_at"`
}

// New builds an order stamped with the current time.
func New(id int, name string, quantity int, price decimal.Decimal) Order {
	return Order{ID: id, Name: name, Quantity: quantity, Price: price, CreatedAt: time.Now()}
}

// Stamp sets CreatedAt to now when the payload did not carry one.
func (o Order) Stamp(now time.Time) Order {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	return o
}

// Store holds the orders appended through one service instance. The
// identity is fixed when the store is built and is how callers tell two
// instances apart.
type Store interface {
	Add(ctx context.Context, o Order)
	List(ctx context.Context) []Order
	Count(ctx context.Context) int
	Identity() uuid.UUID
}

// Package compare builds the info, listing, insertion and comparison views
// that make store lifetimes observable.
package compare

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"orderscope/pkg/lifetime"
	"orderscope/pkg/logger"
	"orderscope/pkg/order"
	"orderscope/pkg/otel"
)

// ErrInvalidTag indicates the caller supplied a tag outside the fixed set.
var ErrInvalidTag = errors.New("invalid lifetime tag")

// Info describes one kind and the two instances resolved for it.
type Info struct {
	Kind           string    `json:"kind"`
	Description    string    `json:"description"`
	FirstInstance  uuid.UUID `json:"first_instance"`
	SecondInstance uuid.UUID `json:"second_instance"`
	Equal          bool      `json:"equal"`
}

// Listing is the content of one resolved store.
type Listing struct {
	InstanceID  uuid.UUID     `json:"instance_id"`
	OrdersCount int           `json:"orders_count"`
	Orders      []order.Order `json:"orders"`
}

// Receipt confirms an insertion.
type Receipt struct {
	Message     string    `json:"message"`
	InstanceID  uuid.UUID `json:"instance_id"`
	TotalOrders int       `json:"total_orders"`
}

// PairStats holds both identities and counts resolved for one kind.
type PairStats struct {
	Instance1 uuid.UUID `json:"instance1"`
	Instance2 uuid.UUID `json:"instance2"`
	Orders1   int       `json:"orders1"`
	Orders2   int       `json:"orders2"`
}

// Comparison reports every kind side by side.
type Comparison struct {
	Transient PairStats `json:"transient"`
	Scoped    PairStats `json:"scoped"`
	Singleton PairStats `json:"singleton"`
}

// Service resolves stores from the request scope carried in ctx.
type Service struct {
	log *logger.Logger
	now func() time.Time
}

// New creates the service.
func New(log *logger.Logger) *Service {
	return &Service{log: log, now: time.Now}
}

func parse(tag string) (lifetime.Kind, error) {
	k, err := lifetime.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidTag, err)
	}
	return k, nil
}

// Describe reports the policy for tag and whether two resolutions share an
// instance.
func (s *Service) Describe(ctx context.Context, tag string) (Info, error) {
	kind, err := parse(tag)
	if err != nil {
		return Info{}, err
	}
	ctx, span := otel.AddSpan(ctx, "compare.Describe", attribute.String("lifetime", tag))
	defer span.End()

	first, second, err := pair(ctx, kind)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Kind:           strings.ToUpper(tag),
		Description:    kind.Description(),
		FirstInstance:  first.Identity(),
		SecondInstance: second.Identity(),
		Equal:          first.Identity() == second.Identity(),
	}, nil
}

// ListOrders returns the orders held by the instance resolved for tag.
func (s *Service) ListOrders(ctx context.Context, tag string) (Listing, error) {
	kind, err := parse(tag)
	if err != nil {
		return Listing{}, err
	}
	ctx, span := otel.AddSpan(ctx, "compare.ListOrders", attribute.String("lifetime", tag))
	defer span.End()

	st, err := resolve(ctx, kind)
	if err != nil {
		return Listing{}, err
	}
	orders := st.List(ctx)
	return Listing{
		InstanceID:  st.Identity(),
		OrdersCount: len(orders),
		Orders:      orders,
	}, nil
}

// AddOrder appends o to the instance resolved for tag.
func (s *Service) AddOrder(ctx context.Context, tag string, o order.Order) (Receipt, error) {
	kind, err := parse(tag)
	if err != nil {
		return Receipt{}, err
	}
	ctx, span := otel.AddSpan(ctx, "compare.AddOrder", attribute.String("lifetime", tag))
	defer span.End()

	st, err := resolve(ctx, kind)
	if err != nil {
		return Receipt{}, err
	}
	st.Add(ctx, o.Stamp(s.now()))
	total := st.Count(ctx)
	s.log.Info(ctx, "order added", "lifetime", tag, "instance", st.Identity().String(), "total", total)

	return Receipt{
		Message:     fmt.Sprintf("order added (%s)", strings.ToUpper(tag)),
		InstanceID:  st.Identity(),
		TotalOrders: total,
	}, nil
}

// CompareAll resolves a pair for every kind.
func (s *Service) CompareAll(ctx context.Context) (Comparison, error) {
	ctx, span := otel.AddSpan(ctx, "compare.CompareAll")
	defer span.End()

	stats := make(map[lifetime.Kind]PairStats, 3)
	for _, kind := range lifetime.Kinds() {
		a, b, err := pair(ctx, kind)
		if err != nil {
			return Comparison{}, err
		}
		stats[kind] = PairStats{
			Instance1: a.Identity(),
			Instance2: b.Identity(),
			Orders1:   a.Count(ctx),
			Orders2:   b.Count(ctx),
		}
	}
	return Comparison{
		Transient: stats[lifetime.Transient],
		Scoped:    stats[lifetime.Scoped],
		Singleton: stats[lifetime.Singleton],
	}, nil
}

func pair(ctx context.Context, kind lifetime.Kind) (order.Store, order.Store, error) {
	scope, err := lifetime.ScopeFrom(ctx)
	if err != nil {
		return nil, nil, err
	}
	return scope.Pair(kind)
}

func resolve(ctx context.Context, kind lifetime.Kind) (order.Store, error) {
	scope, err := lifetime.ScopeFrom(ctx)
	if err != nil {
		return nil, err
	}
	return scope.Resolve(kind)
}

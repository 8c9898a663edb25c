package compare

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderscope/pkg/lifetime"
	"orderscope/pkg/logger"
	"orderscope/pkg/order"
	"orderscope/pkg/order/memory"
)

type fixture struct {
	t        *testing.T
	registry *lifetime.Registry
	svc      *Service
	built    atomic.Int32
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.Nop()
	f := &fixture{t: t, svc: New(log)}
	reg, err := lifetime.NewRegistry(func() order.Store {
		f.built.Add(1)
		return memory.New(log)
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reg.Close(context.Background()) })
	f.registry = reg
	return f
}

// request opens a fresh scope, as one HTTP request would.
func (f *fixture) request() context.Context {
	scope, err := f.registry.NewScope(context.Background())
	require.NoError(f.t, err)
	f.t.Cleanup(func() { _ = scope.Close() })
	return lifetime.WithScope(context.Background(), scope)
}

func TestDescribe(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		tag   string
		equal bool
	}{
		{"transient", false},
		{"scoped", true},
		{"singleton", true},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			info, err := f.svc.Describe(f.request(), tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.equal, info.Equal)
			assert.Equal(t, tt.equal, info.FirstInstance == info.SecondInstance)
			assert.NotEmpty(t, info.Description)
		})
	}

	info, err := f.svc.Describe(f.request(), "singleton")
	require.NoError(t, err)
	assert.Equal(t, "SINGLETON", info.Kind)
}

func TestDescribe_InvalidTag(t *testing.T) {
	f := newFixture(t)

	ctx := f.request()
	before := f.built.Load()

	_, err := f.svc.Describe(ctx, "bogus")
	require.ErrorIs(t, err, ErrInvalidTag)
	assert.ErrorIs(t, err, lifetime.ErrUnknownKind)
	assert.Equal(t, before, f.built.Load(), "no store should be built for an invalid tag")
}

func TestInvalidTag_AllOperations(t *testing.T) {
	f := newFixture(t)
	ctx := f.request()
	before := f.built.Load()

	_, err := f.svc.ListOrders(ctx, "bogus")
	assert.ErrorIs(t, err, ErrInvalidTag)
	_, err = f.svc.AddOrder(ctx, "bogus", order.Order{ID: 1})
	assert.ErrorIs(t, err, ErrInvalidTag)
	assert.Equal(t, before, f.built.Load())
}

func TestMissingScope(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Describe(context.Background(), "scoped")
	assert.ErrorIs(t, err, lifetime.ErrNoScope)
}

func TestAddThenList_Singleton(t *testing.T) {
	f := newFixture(t)
	price := decimal.RequireFromString("9.99")

	rcpt, err := f.svc.AddOrder(f.request(), "singleton", order.Order{ID: 1, Name: "Widget", Quantity: 3, Price: price})
	require.NoError(t, err)
	assert.Equal(t, "order added (SINGLETON)", rcpt.Message)
	assert.Equal(t, 1, rcpt.TotalOrders)

	list, err := f.svc.ListOrders(f.request(), "singleton")
	require.NoError(t, err)
	assert.Equal(t, rcpt.InstanceID, list.InstanceID)
	assert.Equal(t, 1, list.OrdersCount)
	require.Len(t, list.Orders, 1)
	got := list.Orders[0]
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, 3, got.Quantity)
	assert.True(t, got.Price.Equal(price))
	assert.False(t, got.CreatedAt.IsZero())
}

func TestAddCount_SameScope(t *testing.T) {
	f := newFixture(t)
	ctx := f.request()

	const n = 4
	for i := 1; i <= n; i++ {
		rcpt, err := f.svc.AddOrder(ctx, "scoped", order.Order{ID: i})
		require.NoError(t, err)
		assert.Equal(t, i, rcpt.TotalOrders)
	}

	list, err := f.svc.ListOrders(ctx, "scoped")
	require.NoError(t, err)
	assert.Equal(t, n, list.OrdersCount)

	other, err := f.svc.ListOrders(f.request(), "scoped")
	require.NoError(t, err)
	assert.Zero(t, other.OrdersCount)
	assert.NotEqual(t, list.InstanceID, other.InstanceID)
}

func TestAdd_Transient(t *testing.T) {
	f := newFixture(t)
	ctx := f.request()

	rcpt, err := f.svc.AddOrder(ctx, "transient", order.Order{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, rcpt.TotalOrders)

	list, err := f.svc.ListOrders(ctx, "transient")
	require.NoError(t, err)
	assert.Zero(t, list.OrdersCount)
	assert.NotEqual(t, rcpt.InstanceID, list.InstanceID)
}

func TestTransient_SingleResolution(t *testing.T) {
	f := newFixture(t)
	ctx := f.request()

	before := f.built.Load()
	_, err := f.svc.ListOrders(ctx, "transient")
	require.NoError(t, err)
	assert.Equal(t, before+1, f.built.Load())

	before = f.built.Load()
	_, err = f.svc.AddOrder(ctx, "transient", order.Order{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, before+1, f.built.Load())

	before = f.built.Load()
	_, err = f.svc.Describe(ctx, "transient")
	require.NoError(t, err)
	assert.Equal(t, before+2, f.built.Load())
}

func TestCompareAll(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.CompareAll(f.request())
	require.NoError(t, err)
	second, err := f.svc.CompareAll(f.request())
	require.NoError(t, err)

	assert.Equal(t, first.Singleton.Instance1, first.Singleton.Instance2)
	assert.Equal(t, first.Singleton.Instance1, second.Singleton.Instance1)

	assert.Equal(t, first.Scoped.Instance1, first.Scoped.Instance2)
	assert.NotEqual(t, first.Scoped.Instance1, second.Scoped.Instance1)

	assert.NotEqual(t, first.Transient.Instance1, first.Transient.Instance2)
}

func TestCompareAll_Counts(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.AddOrder(f.request(), "singleton", order.Order{ID: 7})
	require.NoError(t, err)

	cmp, err := f.svc.CompareAll(f.request())
	require.NoError(t, err)
	assert.Equal(t, 1, cmp.Singleton.Orders1)
	assert.Equal(t, 1, cmp.Singleton.Orders2)
	assert.Zero(t, cmp.Scoped.Orders1)
	assert.Zero(t, cmp.Transient.Orders2)
}

package usecase

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pasteleria/internal/domain"
	"pasteleria/internal/order/repository"
	"pasteleria/internal/order/service"
	"pasteleria/internal/testutil"
)

func newStoreBackedUseCase(db *sql.DB) *OrderUseCase {
	svc := service.NewOrderService(
		db,
		repository.NewSQLOrderRepository(db),
		repository.NewSQLOrderItemRepository(),
		time.Now,
		zap.NewNop(),
		10*time.Second,
	)
	return NewOrderUseCase(svc, zap.NewNop(), 10)
}

// addConcurrently adds one line per worker to a fresh order, all at once,
// and returns the reloaded order.
func addConcurrently(t *testing.T, uc *OrderUseCase, workers int, price string, qty func(i int) int) *domain.Order {
	t.Helper()
	ctx := context.Background()

	order, err := uc.CreateOrder(ctx, "Ana", "ana@example.com")
	require.NoError(t, err)

	start := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		in := domain.OrderItemInput{
			ProductName: "Macaron",
			UnitPrice:   decimal.RequireFromString(price),
			Quantity:    qty(i),
		}
		g.Go(func() error {
			<-start
			_, err := uc.AddItem(gctx, order.ID, in)
			return err
		})
	}
	close(start)
	require.NoError(t, g.Wait())

	got, err := uc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, workers)
	return got
}

func TestAddItem_ConcurrentAdditions_SQLite(t *testing.T) {
	db := testutil.SetupConcurrentTestDB(t, 8)
	uc := newStoreBackedUseCase(db)

	// 20 lines each of quantity 1, 2 and 3 at 0.10
	got := addConcurrently(t, uc, 60, "0.10", func(i int) int { return i%3 + 1 })

	assert.Equal(t, "12.00", domain.FormatMoney(got.Total))
	assert.True(t, got.Total.Equal(got.ItemsTotal()))
}

func TestAddItem_ConcurrentAdditions_MySQL(t *testing.T) {
	db := testutil.SetupMySQLTestDB(t)
	db.SetMaxOpenConns(16)
	uc := newStoreBackedUseCase(db)

	got := addConcurrently(t, uc, 50, "10.00", func(int) int { return 1 })

	assert.Equal(t, "500.00", domain.FormatMoney(got.Total))
	assert.True(t, got.Total.Equal(got.ItemsTotal()))
}

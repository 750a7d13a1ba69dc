package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsquare/pkg/order/model"
	"shopsquare/pkg/order/service"
)

func setup(t *testing.T) (service.OrderService, *mockOrderRepository) {
	repo := &mockOrderRepository{store: make(map[int]*model.Order)}
	orderService := service.NewOrderService(repo)
	return orderService, repo
}

func TestCreateOrder(t *testing.T) {
	orderService, _ := setup(t)
	ctx := context.Background()

	t.Run("Defaults to PENDING", func(t *testing.T) {
		order, err := orderService.CreateOrder(ctx, model.Order{UserID: 1, ShopID: 2, TotalAmount: 42.5})

		require.NoError(t, err)
		assert.NotZero(t, order.ID)
		assert.Equal(t, "PENDING", order.Status)
		assert.Equal(t, "PENDING", order.PaymentStatus)
		assert.False(t, order.CreatedAt.IsZero())
	})

	t.Run("Keeps explicit statuses", func(t *testing.T) {
		order, err := orderService.CreateOrder(ctx, model.Order{UserID: 1, ShopID: 2, Status: "SHIPPED", PaymentStatus: "PAID"})

		require.NoError(t, err)
		assert.Equal(t, "SHIPPED", order.Status)
		assert.Equal(t, "PAID", order.PaymentStatus)
	})

	t.Run("No reference validation", func(t *testing.T) {
		order, err := orderService.CreateOrder(ctx, model.Order{UserID: 424242, ShopID: 424242})
		require.NoError(t, err)
		assert.NotZero(t, order.ID)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	orderService, repo := setup(t)
	ctx := context.Background()

	order, err := orderService.CreateOrder(ctx, model.Order{UserID: 1, ShopID: 2})
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		updated, err := orderService.UpdateOrderStatus(ctx, order.ID, "SHIPPED")

		require.NoError(t, err)
		assert.Equal(t, "SHIPPED", updated.Status)

		saved, err := repo.Find(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, "SHIPPED", saved.Status)
		assert.Equal(t, "PENDING", saved.PaymentStatus)
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, err := orderService.UpdateOrderStatus(ctx, 9999, "SHIPPED")
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})
}

func TestUpdateOrder(t *testing.T) {
	orderService, _ := setup(t)
	ctx := context.Background()

	order, err := orderService.CreateOrder(ctx, model.Order{UserID: 1, ShopID: 2, TotalAmount: 10, ShippingAddress: "old"})
	require.NoError(t, err)
	createdAt := order.CreatedAt

	t.Run("Full replace keeps createdAt", func(t *testing.T) {
		updated, err := orderService.UpdateOrder(ctx, order.ID, model.Order{
			UserID: 3, ShopID: 4, TotalAmount: 20,
			Status: "PAID", ShippingAddress: "new", PaymentMethod: "CARD", PaymentStatus: "PAID",
		})

		require.NoError(t, err)
		assert.Equal(t, 3, updated.UserID)
		assert.Equal(t, 20.0, updated.TotalAmount)
		assert.Equal(t, "new", updated.ShippingAddress)
		assert.Equal(t, createdAt, updated.CreatedAt)
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, err := orderService.UpdateOrder(ctx, 9999, model.Order{})
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})
}

func TestDeleteOrder(t *testing.T) {
	orderService, repo := setup(t)
	ctx := context.Background()

	order, err := orderService.CreateOrder(ctx, model.Order{UserID: 1, ShopID: 2})
	require.NoError(t, err)

	require.NoError(t, orderService.DeleteOrder(ctx, order.ID))
	assert.Empty(t, repo.store)
	assert.ErrorIs(t, orderService.DeleteOrder(ctx, order.ID), model.ErrOrderNotFound)
}

type mockOrderRepository struct {
	store  map[int]*model.Order
	nextID int
}

func (m *mockOrderRepository) Create(_ context.Context, order *model.Order) error {
	m.nextID++
	order.ID = m.nextID
	m.store[order.ID] = order
	return nil
}

func (m *mockOrderRepository) Update(_ context.Context, order *model.Order) error {
	m.store[order.ID] = order
	return nil
}

func (m *mockOrderRepository) Find(_ context.Context, id int) (*model.Order, error) {
	if order, ok := m.store[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, model.ErrOrderNotFound
}

func (m *mockOrderRepository) FindByUserID(_ context.Context, userID int) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	for _, order := range m.store {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (m *mockOrderRepository) FindByShopID(_ context.Context, shopID int) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	for _, order := range m.store {
		if order.ShopID == shopID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (m *mockOrderRepository) FindAll(_ context.Context) ([]model.Order, error) {
	orders := make([]model.Order, 0, len(m.store))
	for _, order := range m.store {
		orders = append(orders, *order)
	}
	return orders, nil
}

func (m *mockOrderRepository) Delete(_ context.Context, id int) error {
	if _, ok := m.store[id]; !ok {
		return model.ErrOrderNotFound
	}
	delete(m.store, id)
	return nil
}

package service

import (
	"context"
	"time"

	"shopsquare/pkg/order/model"
)

const statusPending = "PENDING"

type OrderService interface {
	CreateOrder(ctx context.Context, draft model.Order) (*model.Order, error)
	GetOrderByID(ctx context.Context, id int) (*model.Order, error)
	GetOrdersByUserID(ctx context.Context, userID int) ([]model.Order, error)
	GetOrdersByShopID(ctx context.Context, shopID int) ([]model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrder(ctx context.Context, id int, draft model.Order) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status string) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int) error
}

func NewOrderService(repo model.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

type orderService struct {
	repo model.OrderRepository
}

// CreateOrder persists the draft as given. The user and shop references are
// not confirmed against their services; totals are taken at face value.
func (s *orderService) CreateOrder(ctx context.Context, draft model.Order) (*model.Order, error) {
	if draft.Status == "" {
		draft.Status = statusPending
	}
	if draft.PaymentStatus == "" {
		draft.PaymentStatus = statusPending
	}
	draft.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id int) (*model.Order, error) {
	return s.repo.Find(ctx, id)
}

func (s *orderService) GetOrdersByUserID(ctx context.Context, userID int) ([]model.Order, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *orderService) GetOrdersByShopID(ctx context.Context, shopID int) ([]model.Order, error) {
	return s.repo.FindByShopID(ctx, shopID)
}

func (s *orderService) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	return s.repo.FindAll(ctx)
}

func (s *orderService) UpdateOrder(ctx context.Context, id int, draft model.Order) (*model.Order, error) {
	order, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	order.UserID = draft.UserID
	order.ShopID = draft.ShopID
	order.TotalAmount = draft.TotalAmount
	order.Status = draft.Status
	order.ShippingAddress = draft.ShippingAddress
	order.PaymentMethod = draft.PaymentMethod
	order.PaymentStatus = draft.PaymentStatus

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id int, status string) (*model.Order, error) {
	order, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id int) error {
	if _, err := s.repo.Find(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

package service

import (
	"context"

	log "github.com/sirupsen/logrus"

	"shopsquare/pkg/orderitem/model"
)

// ProductGateway adjusts remote product stock.
type ProductGateway interface {
	DecrementStock(ctx context.Context, productID, qty int) error
}

type OrderItemService interface {
	CreateOrderItem(ctx context.Context, draft model.OrderItem) (*model.OrderItem, error)
	GetOrderItemByID(ctx context.Context, id int) (*model.OrderItem, error)
	GetOrderItemsByOrderID(ctx context.Context, orderID int) ([]model.OrderItem, error)
	GetAllOrderItems(ctx context.Context) ([]model.OrderItem, error)
	UpdateOrderItem(ctx context.Context, id int, draft model.OrderItem) (*model.OrderItem, error)
	DeleteOrderItem(ctx context.Context, id int) error
}

func NewOrderItemService(repo model.OrderItemRepository, products ProductGateway) OrderItemService {
	return &orderItemService{repo: repo, products: products}
}

type orderItemService struct {
	repo     model.OrderItemRepository
	products ProductGateway
}

// CreateOrderItem inserts the item and then tries to decrement the product's
// stock. The decrement is best effort: an unreachable product service or a
// missing product is logged and the insert stands.
func (s *orderItemService) CreateOrderItem(ctx context.Context, draft model.OrderItem) (*model.OrderItem, error) {
	if err := s.repo.Create(ctx, &draft); err != nil {
		return nil, err
	}

	if draft.ProductID > 0 {
		if err := s.products.DecrementStock(ctx, draft.ProductID, draft.Quantity); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"productId": draft.ProductID,
				"qty":       draft.Quantity,
			}).Warn("stock decrement failed, order item kept")
		}
	}
	return &draft, nil
}

func (s *orderItemService) GetOrderItemByID(ctx context.Context, id int) (*model.OrderItem, error) {
	return s.repo.Find(ctx, id)
}

func (s *orderItemService) GetOrderItemsByOrderID(ctx context.Context, orderID int) ([]model.OrderItem, error) {
	return s.repo.FindByOrderID(ctx, orderID)
}

func (s *orderItemService) GetAllOrderItems(ctx context.Context) ([]model.OrderItem, error) {
	return s.repo.FindAll(ctx)
}

func (s *orderItemService) UpdateOrderItem(ctx context.Context, id int, draft model.OrderItem) (*model.OrderItem, error) {
	item, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	item.OrderID = draft.OrderID
	item.ProductID = draft.ProductID
	item.Quantity = draft.Quantity
	item.PriceAtTime = draft.PriceAtTime

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteOrderItem removes the row if present. An unknown id is not an error.
func (s *orderItemService) DeleteOrderItem(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

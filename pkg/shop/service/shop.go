package service

import (
	"context"
	"time"

	"shopsquare/pkg/platform/refcheck"
	"shopsquare/pkg/shop/model"
)

type ShopService interface {
	CreateShop(ctx context.Context, draft model.Shop) (*model.Shop, error)
	GetShopByID(ctx context.Context, id int) (*model.Shop, error)
	GetShopsByOwnerID(ctx context.Context, ownerID int) ([]model.Shop, error)
	GetAllShops(ctx context.Context) ([]model.Shop, error)
	UpdateShop(ctx context.Context, id int, draft model.Shop) (*model.Shop, error)
	DeleteShop(ctx context.Context, id int) error
}

func NewShopService(repo model.ShopRepository, users refcheck.Checker) ShopService {
	return &shopService{repo: repo, users: users}
}

type shopService struct {
	repo  model.ShopRepository
	users refcheck.Checker
}

func (s *shopService) CreateShop(ctx context.Context, draft model.Shop) (*model.Shop, error) {
	if draft.OwnerID > 0 {
		if err := refcheck.Validate(ctx, s.users, draft.OwnerID, refcheck.FailFast); err != nil {
			return nil, err
		}
	}

	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.Create(ctx, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *shopService) GetShopByID(ctx context.Context, id int) (*model.Shop, error) {
	return s.repo.Find(ctx, id)
}

func (s *shopService) GetShopsByOwnerID(ctx context.Context, ownerID int) ([]model.Shop, error) {
	return s.repo.FindByOwnerID(ctx, ownerID)
}

func (s *shopService) GetAllShops(ctx context.Context) ([]model.Shop, error) {
	return s.repo.FindAll(ctx)
}

func (s *shopService) UpdateShop(ctx context.Context, id int, draft model.Shop) (*model.Shop, error) {
	shop, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	shop.OwnerID = draft.OwnerID
	shop.Name = draft.Name
	shop.Description = draft.Description
	shop.Location = draft.Location

	if err := s.repo.Update(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *shopService) DeleteShop(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

package service

import (
	"context"

	"gromeuse/internal/entity"
	"gromeuse/internal/repository"

	"github.com/google/uuid"
)

type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

type CartLine struct {
	Item      entity.CartItem
	LineTotal float64
}

type CartView struct {
	Lines    []CartLine
	Subtotal float64
}

// AddItem puts quantity units of a product into the user's cart, merging
// with an existing line up to the per-item cap.
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity < 1 || quantity > entity.MaxCartItemQuantity {
		return nil, ErrInvalidInput
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	item, err := s.carts.FindItem(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if item != nil {
		if item.Quantity+quantity > entity.MaxCartItemQuantity {
			return nil, ErrCartLimit
		}
		item.Quantity += quantity
		if err := s.carts.Update(ctx, item); err != nil {
			return nil, err
		}
		return item, nil
	}

	item = &entity.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.carts.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Lines: make([]CartLine, 0, len(items))}
	for _, item := range items {
		lineTotal := item.Product.Price * float64(item.Quantity)
		view.Lines = append(view.Lines, CartLine{Item: item, LineTotal: lineTotal})
		view.Subtotal += lineTotal
	}
	return view, nil
}

func (s *CartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity < 1 || quantity > entity.MaxCartItemQuantity {
		return nil, ErrInvalidInput
	}

	item, err := s.carts.FindItemByID(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	item.Quantity = quantity
	if err := s.carts.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	item, err := s.carts.FindItemByID(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return s.carts.Delete(ctx, userID, itemID)
}

package service

import (
	"context"
	"strings"

	"gromeuse/internal/entity"
	"gromeuse/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OrderService struct {
	orders repository.OrderRepository
	carts  repository.CartRepository
}

func NewOrderService(orders repository.OrderRepository, carts repository.CartRepository) *OrderService {
	return &OrderService{orders: orders, carts: carts}
}

type CreateOrderInput struct {
	ShippingAddress entity.Address
	BillingAddress  *entity.Address
	PaymentMethod   string
}

// CreateFromCart snapshots the user's cart lines into an order and clears
// the cart. Payment is an opaque label here; no processing happens.
func (s *OrderService) CreateFromCart(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*entity.Order, error) {
	if strings.TrimSpace(input.PaymentMethod) == "" {
		return nil, ErrInvalidInput
	}

	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	order := &entity.Order{
		UserID:          userID,
		Status:          entity.OrderStatusPending,
		PaymentMethod:   input.PaymentMethod,
		ShippingAddress: datatypes.NewJSONType(input.ShippingAddress),
	}
	if input.BillingAddress != nil {
		billing := datatypes.NewJSONType(*input.BillingAddress)
		order.BillingAddress = &billing
	}

	for _, item := range items {
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: item.ProductID,
			Title:     item.Product.Title,
			UnitPrice: item.Product.Price,
			Quantity:  item.Quantity,
		})
		order.Subtotal += item.Product.Price * float64(item.Quantity)
	}

	// Insert and cart clear commit together; a failure leaves the cart
	// intact so the request can simply be retried.
	if err := s.orders.CreateAndClearCart(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Order, error) {
	return s.orders.ListByUser(ctx, userID, limit, offset)
}

func (s *OrderService) ListAll(ctx context.Context, limit, offset int) ([]entity.Order, error) {
	return s.orders.List(ctx, limit, offset)
}

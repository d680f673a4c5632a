package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"gromeuse/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	mu      sync.Mutex
	orders  map[uuid.UUID]*entity.Order
	carts   *fakeCartRepo
	failure error
}

func newFakeOrderRepo(carts *fakeCartRepo) *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order), carts: carts}
}

func (r *fakeOrderRepo) CreateAndClearCart(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Insert and clear are one transaction; on failure neither happens.
	if r.failure != nil {
		return r.failure
	}
	order.ID = uuid.New()
	copied := *order
	r.orders[order.ID] = &copied
	r.carts.clearUser(order.UserID)
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, userID uuid.UUID, _, _ int) ([]entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := make([]entity.Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) List(_ context.Context, _, _ int) ([]entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := make([]entity.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, *order)
	}
	return orders, nil
}

func testAddress() entity.Address {
	return entity.Address{
		Name:    "Alice",
		Phone:   "5551234567",
		Line1:   "1 Main St",
		City:    "Springfield",
		State:   "IL",
		Country: "US",
		Zip:     "62701",
	}
}

func TestOrderCreateFromCart_SnapshotsAndClears(t *testing.T) {
	products := newFakeProductRepo()
	carts := newFakeCartRepo(products)
	orders := newFakeOrderRepo(carts)
	cartSvc := NewCartService(carts, products)
	svc := NewOrderService(orders, carts)
	userID := uuid.New()

	widget := products.add("widget", 9.99)
	gadget := products.add("gadget", 25.00)
	_, err := cartSvc.AddItem(context.Background(), userID, widget.ID, 2)
	require.NoError(t, err)
	_, err = cartSvc.AddItem(context.Background(), userID, gadget.ID, 1)
	require.NoError(t, err)

	order, err := svc.CreateFromCart(context.Background(), userID, CreateOrderInput{
		ShippingAddress: testAddress(),
		PaymentMethod:   "cod",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)
	assert.InDelta(t, 44.98, order.Subtotal, 1e-9)

	// Line prices are snapshots; later catalog edits do not matter.
	widget.Price = 1000
	require.NoError(t, products.Update(context.Background(), widget))
	stored, err := orders.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	for _, item := range stored.Items {
		if item.ProductID == widget.ID {
			assert.InDelta(t, 9.99, item.UnitPrice, 1e-9)
		}
	}

	// The cart is empty afterwards.
	view, err := cartSvc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestOrderCreateFromCart_FailureLeavesCart(t *testing.T) {
	products := newFakeProductRepo()
	carts := newFakeCartRepo(products)
	orders := newFakeOrderRepo(carts)
	cartSvc := NewCartService(carts, products)
	svc := NewOrderService(orders, carts)
	userID := uuid.New()

	widget := products.add("widget", 9.99)
	_, err := cartSvc.AddItem(context.Background(), userID, widget.ID, 2)
	require.NoError(t, err)

	orders.failure = errors.New("db down")
	_, err = svc.CreateFromCart(context.Background(), userID, CreateOrderInput{
		ShippingAddress: testAddress(),
		PaymentMethod:   "cod",
	})
	require.Error(t, err)

	// No half-committed state: no order row, and the cart survives so a
	// retry places exactly one order.
	assert.Empty(t, orders.orders)
	view, err := cartSvc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)

	orders.failure = nil
	_, err = svc.CreateFromCart(context.Background(), userID, CreateOrderInput{
		ShippingAddress: testAddress(),
		PaymentMethod:   "cod",
	})
	require.NoError(t, err)
	assert.Len(t, orders.orders, 1)
}

func TestOrderCreateFromCart_EmptyCart(t *testing.T) {
	products := newFakeProductRepo()
	carts := newFakeCartRepo(products)
	svc := NewOrderService(newFakeOrderRepo(carts), carts)

	_, err := svc.CreateFromCart(context.Background(), uuid.New(), CreateOrderInput{
		ShippingAddress: testAddress(),
		PaymentMethod:   "cod",
	})
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestOrderCreateFromCart_RequiresPaymentMethod(t *testing.T) {
	products := newFakeProductRepo()
	carts := newFakeCartRepo(products)
	svc := NewOrderService(newFakeOrderRepo(carts), carts)

	_, err := svc.CreateFromCart(context.Background(), uuid.New(), CreateOrderInput{
		ShippingAddress: testAddress(),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

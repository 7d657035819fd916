package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmaxstore/catalog-admin/app/models"
	"github.com/tmaxstore/catalog-admin/app/repositories"
)

type fakeOrderRepo struct {
	orders map[string]*models.Order
	listed []models.Order
}

func newFakeOrderRepo(orders ...*models.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: make(map[string]*models.Order)}
	for _, o := range orders {
		repo.orders[o.ID] = o
		repo.listed = append(repo.listed, *o)
	}
	return repo
}

func (f *fakeOrderRepo) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	out := make([]models.Order, 0, len(f.orders))
	for _, o := range f.listed {
		if current, ok := f.orders[o.ID]; ok {
			out = append(out, *current)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	f.orders[order.ID] = order
	f.listed = append(f.listed, *order)
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID string, status string) error {
	o, ok := f.orders[orderID]
	if !ok {
		return repositories.ErrNotFound
	}
	o.Status = status
	return nil
}

func (f *fakeOrderRepo) DeleteOrder(ctx context.Context, id string) error {
	if _, ok := f.orders[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

func order(id, userID, status, address string) *models.Order {
	return &models.Order{
		ID:              id,
		UserID:          userID,
		Status:          status,
		ShippingAddress: address,
		TotalAmount:     decimal.New(5000, -2),
	}
}

func TestChangeStatus_PermissiveMachine(t *testing.T) {
	repo := newFakeOrderRepo(order("o1", "u1", models.OrderStatusDelivered, "12 Main St"))
	svc := NewOrderService(repo)
	ctx := context.Background()

	// Every enumerated status is reachable from every other, including
	// moving a delivered order back to pending.
	for _, from := range models.OrderStatuses() {
		for _, to := range models.OrderStatuses() {
			repo.orders["o1"].Status = from
			require.NoError(t, svc.ChangeStatus(ctx, "o1", to))
			assert.Equal(t, to, repo.orders["o1"].Status)
		}
	}
}

func TestChangeStatus_IdempotentReapply(t *testing.T) {
	repo := newFakeOrderRepo(order("o1", "u1", models.OrderStatusShipped, "12 Main St"))
	svc := NewOrderService(repo)

	require.NoError(t, svc.ChangeStatus(context.Background(), "o1", models.OrderStatusShipped))
	assert.Equal(t, models.OrderStatusShipped, repo.orders["o1"].Status)
}

func TestChangeStatus_RejectsUnknownStatus(t *testing.T) {
	repo := newFakeOrderRepo(order("o1", "u1", models.OrderStatusPending, "12 Main St"))
	svc := NewOrderService(repo)

	err := svc.ChangeStatus(context.Background(), "o1", "REFUNDED")
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "status", ve.Field)
	// The stored order is untouched.
	assert.Equal(t, models.OrderStatusPending, repo.orders["o1"].Status)
}

func TestChangeStatus_MissingOrder(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	err := svc.ChangeStatus(context.Background(), "nope", models.OrderStatusShipped)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestList_SearchByIDOrAddress(t *testing.T) {
	repo := newFakeOrderRepo(
		order("abc-123", "u1", models.OrderStatusPending, "10 Elm Street"),
		order("def-456", "u2", models.OrderStatusShipped, "99 Oak Avenue"),
	)
	svc := NewOrderService(repo)
	ctx := context.Background()

	byID, err := svc.List(ctx, "ABC")
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "abc-123", byID[0].ID)

	byAddr, err := svc.List(ctx, "oak")
	require.NoError(t, err)
	require.Len(t, byAddr, 1)
	assert.Equal(t, "def-456", byAddr[0].ID)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCustomers_DerivedFromOrders(t *testing.T) {
	repo := newFakeOrderRepo(
		order("o1", "alice", models.OrderStatusPending, "a"),
		order("o2", "alice", models.OrderStatusShipped, "b"),
		order("o3", "bob", models.OrderStatusDelivered, "c"),
	)
	svc := NewOrderService(repo)

	customers, err := svc.Customers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, CustomerSummary{UserID: "alice", OrderCount: 2}, customers[0])
	assert.Equal(t, CustomerSummary{UserID: "bob", OrderCount: 1}, customers[1])
}

func TestDelete_AnyStatus(t *testing.T) {
	repo := newFakeOrderRepo(order("o1", "u1", models.OrderStatusDelivered, "a"))
	svc := NewOrderService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "o1"))
	_, err := svc.Get(ctx, "o1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

package services

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/tmaxstore/catalog-admin/app/models"
	"github.com/tmaxstore/catalog-admin/app/repositories"
)

type OrderService struct {
	orderRepo repositories.OrderRepositoryImpl
}

func NewOrderService(orderRepo repositories.OrderRepositoryImpl) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// List returns all orders, optionally narrowed by a case-insensitive
// substring match on the order id or shipping address.
func (s *OrderService) List(ctx context.Context, search string) ([]models.Order, error) {
	orders, err := s.orderRepo.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return orders, nil
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.ID), needle) ||
			strings.Contains(strings.ToLower(o.ShippingAddress), needle) {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// ChangeStatus moves an order to the given status. The machine is
// permissive: any enumerated status is reachable from any other, including
// backwards moves like DELIVERED to PENDING, and reapplying the current
// status succeeds. The only rejection is a value outside the enum.
func (s *OrderService) ChangeStatus(ctx context.Context, id, status string) error {
	if !models.ValidOrderStatus(status) {
		return NewValidationError("status", "unknown order status "+status)
	}
	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	log.Printf("ChangeStatus: order %s moved to %s", id, status)
	return nil
}

// Delete removes an order and its items. Irreversible, independent of the
// order's current status.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.orderRepo.DeleteOrder(ctx, id)
}

// CustomerSummary is the per-customer rollup shown on the users page. The
// core stores no customer records; these are derived from orders.
type CustomerSummary struct {
	UserID     string `json:"user_id"`
	OrderCount int    `json:"order_count"`
}

// Customers derives the distinct customers seen across all orders, most
// orders first.
func (s *OrderService) Customers(ctx context.Context) ([]CustomerSummary, error) {
	orders, err := s.orderRepo.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.UserID]++
	}

	summaries := make([]CustomerSummary, 0, len(counts))
	for id, n := range counts {
		summaries = append(summaries, CustomerSummary{UserID: id, OrderCount: n})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].OrderCount != summaries[j].OrderCount {
			return summaries[i].OrderCount > summaries[j].OrderCount
		}
		return summaries[i].UserID < summaries[j].UserID
	})
	return summaries, nil
}

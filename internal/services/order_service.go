package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"tradepost/internal/domain"
	"tradepost/internal/repos"
)

type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

// NewLine is one checkout line as the client submits it.
type NewLine struct {
	ItemID          string  `json:"itemId"`
	ItemName        string  `json:"itemName"`
	ItemDesc        string  `json:"itemDesc"`
	ItemPrice       float64 `json:"itemOrderPrice"`
	ItemQuantity    int     `json:"itemQuantity"`
	ShippingAddress string  `json:"shippingAddress"`
	CustomerID      string  `json:"customerId"`
	SellerID        string  `json:"sellerId"`
}

func (l NewLine) validate() error {
	switch {
	case l.ItemID == "", l.ItemName == "":
		return ErrValidation
	case l.ItemQuantity < 1, l.ItemPrice < 0:
		return ErrValidation
	case l.ShippingAddress == "", l.CustomerID == "", l.SellerID == "":
		return ErrValidation
	}
	return nil
}

// CreateBatch persists all lines or none of them. Every line is validated
// before anything is written, and the inserts share one transaction, so a
// batch with one bad line leaves zero rows behind.
func (s *OrderService) CreateBatch(lines []NewLine) ([]domain.OrderLine, error) {
	if len(lines) == 0 {
		return nil, ErrValidation
	}
	for _, l := range lines {
		if err := l.validate(); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	out := make([]domain.OrderLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, domain.OrderLine{
			ID:              uuid.NewString(),
			ItemID:          l.ItemID,
			ItemName:        l.ItemName,
			ItemDesc:        l.ItemDesc,
			ItemPrice:       l.ItemPrice,
			ItemQuantity:    l.ItemQuantity,
			ShippingAddress: l.ShippingAddress,
			CustomerID:      l.CustomerID,
			SellerID:        l.SellerID,
			Status:          domain.OrderPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}
	if err := s.Orders.InsertBatch(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *OrderService) Get(id string) (domain.OrderLine, error) {
	o, err := s.Orders.Get(id)
	if err == sql.ErrNoRows {
		return domain.OrderLine{}, ErrNotFound
	}
	return o, err
}

// MarkShipped moves PENDING to SHIPPED. Re-marking a shipped or completed
// order is a no-op, so sellers can retry safely.
func (s *OrderService) MarkShipped(id string) (domain.OrderLine, error) {
	o, err := s.Get(id)
	if err != nil {
		return domain.OrderLine{}, err
	}
	if o.Status == domain.OrderPending {
		if _, err := s.Orders.SetStatus(id, domain.OrderShipped, domain.OrderPending); err != nil {
			return domain.OrderLine{}, err
		}
	}
	return s.Get(id)
}

// MarkCompleted moves SHIPPED to COMPLETED. Completing an order that has
// not shipped is rejected; re-completing is a no-op. The status column is
// only flipped when it still reads SHIPPED, so a concurrent transition
// cannot be overwritten.
func (s *OrderService) MarkCompleted(id string) (domain.OrderLine, error) {
	o, err := s.Get(id)
	if err != nil {
		return domain.OrderLine{}, err
	}
	switch o.Status {
	case domain.OrderCompleted:
		return o, nil
	case domain.OrderPending:
		return domain.OrderLine{}, ErrStateTransition
	}
	if _, err := s.Orders.SetStatus(id, domain.OrderCompleted, domain.OrderShipped); err != nil {
		return domain.OrderLine{}, err
	}
	return s.Get(id)
}

func (s *OrderService) ListByCustomer(customerID string) ([]domain.OrderLine, error) {
	return s.Orders.ListByCustomer(customerID)
}

func (s *OrderService) ListBySeller(sellerID string) ([]domain.OrderLine, error) {
	return s.Orders.ListBySeller(sellerID)
}

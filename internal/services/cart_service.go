package services

import (
	"database/sql"

	"tradepost/internal/domain"
	"tradepost/internal/repos"
)

type CartService struct {
	Carts *repos.CartRepo
	Items *repos.ItemRepo
}

func NewCartService(carts *repos.CartRepo, items *repos.ItemRepo) *CartService {
	return &CartService{Carts: carts, Items: items}
}

// Get returns the user's cart; a user with no cart gets an empty slice.
func (s *CartService) Get(userID string) ([]domain.CartEntry, error) {
	return s.Carts.Entries(userID)
}

// Add increments the entry for itemID by delta, creating it when absent.
// delta < 1 is rejected so a negative add can never drive a stored
// quantity below 1. The item must exist and not be soft-deleted.
func (s *CartService) Add(userID, itemID string, delta int) error {
	if userID == "" || itemID == "" || delta < 1 {
		return ErrValidation
	}
	if _, err := s.Items.Get(itemID); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	return s.Carts.AddQty(userID, itemID, delta)
}

// Merge pushes a batch of client-held entries into the stored cart:
// quantity > 0 overwrites, quantity <= 0 removes. Entries the client does
// not mention keep their stored quantity (merge, not replacement).
func (s *CartService) Merge(userID string, entries []domain.CartEntry) ([]domain.CartEntry, error) {
	if userID == "" {
		return nil, ErrValidation
	}
	if err := s.Carts.Merge(userID, entries); err != nil {
		return nil, err
	}
	return s.Carts.Entries(userID)
}

// Remove deletes one entry; an absent entry is ErrNotFound.
func (s *CartService) Remove(userID, itemID string) ([]domain.CartEntry, error) {
	if userID == "" || itemID == "" {
		return nil, ErrValidation
	}
	removed, err := s.Carts.Remove(userID, itemID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, ErrNotFound
	}
	return s.Carts.Entries(userID)
}

// SetQuantity writes an exact quantity, creating the entry when absent.
// qty < 1 is rejected and the stored entry is left untouched; removal goes
// through Remove or a zero-quantity Merge instead.
func (s *CartService) SetQuantity(userID, itemID string, qty int) ([]domain.CartEntry, error) {
	if userID == "" || itemID == "" || qty < 1 {
		return nil, ErrValidation
	}
	if _, err := s.Items.Get(itemID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.Carts.SetQty(userID, itemID, qty); err != nil {
		return nil, err
	}
	return s.Carts.Entries(userID)
}

// Clear drops the whole cart; clearing an absent cart succeeds.
func (s *CartService) Clear(userID string) error {
	if userID == "" {
		return ErrValidation
	}
	return s.Carts.Clear(userID)
}

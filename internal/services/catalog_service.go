package services

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"tradepost/internal/domain"
	"tradepost/internal/repos"
)

type CatalogService struct {
	Items *repos.ItemRepo
}

func NewCatalogService(items *repos.ItemRepo) *CatalogService {
	return &CatalogService{Items: items}
}

// NewItem carries the client-supplied fields for create/update.
type NewItem struct {
	ShopID      string   `json:"shopId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Stock       int      `json:"stock"`
	Price       float64  `json:"price"`
	ImageURLs   []string `json:"imageUrls"`
	Category    string   `json:"category"`
}

func (n NewItem) validate() error {
	if n.Name == "" || n.Stock < 0 || n.Price < 0 {
		return ErrValidation
	}
	return nil
}

func encodeImages(urls []string) string {
	if len(urls) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(urls)
	return string(b)
}

func (s *CatalogService) Create(ownerID string, in NewItem) (domain.Item, error) {
	if ownerID == "" {
		return domain.Item{}, ErrValidation
	}
	if err := in.validate(); err != nil {
		return domain.Item{}, err
	}
	if in.Description == "" {
		in.Description = "No description available"
	}
	it := domain.Item{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		ShopID:      in.ShopID,
		Name:        in.Name,
		Description: in.Description,
		Stock:       in.Stock,
		Price:       in.Price,
		ImagesJSON:  encodeImages(in.ImageURLs),
		Category:    in.Category,
	}
	if err := s.Items.Create(it); err != nil {
		return domain.Item{}, err
	}
	return s.Get(it.ID)
}

func (s *CatalogService) Get(id string) (domain.Item, error) {
	it, err := s.Items.Get(id)
	if err == sql.ErrNoRows {
		return domain.Item{}, ErrNotFound
	}
	return it, err
}

func (s *CatalogService) ListByOwner(ownerID string) ([]domain.Item, error) {
	return s.Items.ListByOwner(ownerID)
}

// List clamps the requested amount to the 1..30 window (default 10),
// matching the public listing endpoint's contract.
func (s *CatalogService) List(amount int) ([]domain.Item, error) {
	if amount <= 0 {
		amount = 10
	}
	if amount > 30 {
		amount = 30
	}
	return s.Items.List(amount)
}

func (s *CatalogService) Batch(ids []string) ([]domain.Item, error) {
	return s.Items.Batch(ids)
}

// Update rewrites an item's mutable fields. Only the owner may mutate.
func (s *CatalogService) Update(actorID, id string, in NewItem) (domain.Item, error) {
	if err := in.validate(); err != nil {
		return domain.Item{}, err
	}
	it, err := s.Get(id)
	if err != nil {
		return domain.Item{}, err
	}
	if it.OwnerID != actorID {
		return domain.Item{}, ErrForbidden
	}
	it.ShopID = in.ShopID
	it.Name = in.Name
	it.Description = in.Description
	it.Stock = in.Stock
	it.Price = in.Price
	it.ImagesJSON = encodeImages(in.ImageURLs)
	it.Category = in.Category
	ok, err := s.Items.Update(it)
	if err != nil {
		return domain.Item{}, err
	}
	if !ok {
		return domain.Item{}, ErrNotFound
	}
	return s.Get(id)
}

// Delete is a soft delete: the flag is set and the row retained so order
// snapshots keep pointing at something. Only the owner may delete.
func (s *CatalogService) Delete(actorID, id string) (domain.Item, error) {
	it, err := s.Get(id)
	if err != nil {
		return domain.Item{}, err
	}
	if it.OwnerID != actorID {
		return domain.Item{}, ErrForbidden
	}
	if _, err := s.Items.SoftDelete(id); err != nil {
		return domain.Item{}, err
	}
	it.Deleted = true
	return it, nil
}

func (s *CatalogService) Search(q string) ([]domain.Item, error) {
	if q == "" {
		return nil, ErrValidation
	}
	return s.Items.Search(q)
}

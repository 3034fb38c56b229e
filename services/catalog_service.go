package services

import (
	"strings"

	"github.com/RodriLang/food-ordering-API-sub001/entity"
	"github.com/RodriLang/food-ordering-API-sub001/repository"

	"github.com/google/uuid"
)

// CatalogService is the owner-facing menu surface: categories, products, stock
// top-ups. Stock debits never happen here; those belong to the ledger.
type CatalogService struct {
	Repo *repository.ProductRepository
}

func NewCatalogService(repo *repository.ProductRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

type CreateCategoryReq struct {
	Name string `json:"name" binding:"required"`
}

func (s *CatalogService) CreateCategory(venueID uint, req *CreateCategoryReq) (*entity.Category, error) {
	c := entity.Category{
		PublicID: uuid.NewString(),
		Name:     strings.TrimSpace(req.Name),
		VenueID:  venueID,
	}
	if c.Name == "" {
		return nil, ErrInvalidArgument
	}
	if err := s.Repo.CreateCategory(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

type CreateProductReq struct {
	Name       string `json:"name" binding:"required"`
	Price      int64  `json:"price" binding:"required,min=1"`
	Stock      int    `json:"stock" binding:"min=0"`
	CategoryID string `json:"categoryId" binding:"required"`
}

func (s *CatalogService) CreateProduct(venueID uint, req *CreateProductReq) (*entity.Product, error) {
	cats, err := s.Repo.ListCategories(venueID)
	if err != nil {
		return nil, err
	}
	var catID uint
	for _, c := range cats {
		if c.PublicID == req.CategoryID {
			catID = c.ID
			break
		}
	}
	if catID == 0 {
		return nil, ErrEntityNotFound
	}

	p := entity.Product{
		PublicID:   uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		Price:      req.Price,
		Stock:      req.Stock,
		Available:  true,
		CategoryID: catID,
		VenueID:    venueID,
	}
	if err := s.Repo.Create(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

type UpdateProductReq struct {
	Name      *string `json:"name"`
	Price     *int64  `json:"price"`
	Available *bool   `json:"available"`
}

func (s *CatalogService) UpdateProduct(venueID uint, productID string, req *UpdateProductReq) error {
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return ErrInvalidArgument
		}
		updates["price"] = *req.Price
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if len(updates) == 0 {
		return ErrInvalidArgument
	}
	return s.Repo.Update(venueID, productID, updates)
}

func (s *CatalogService) Menu(venueID uint) ([]entity.Product, error) {
	return s.Repo.ListMenu(venueID)
}

func (s *CatalogService) Categories(venueID uint) ([]entity.Category, error) {
	return s.Repo.ListCategories(venueID)
}

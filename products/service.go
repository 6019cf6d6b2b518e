package products

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/google/uuid"

	"kiosk/entities"
)

type ProductRepository interface {
	Create(ctx context.Context, product entities.Product) error
	FindLatestProductNumber(ctx context.Context) (string, error)
	FindAllBySellingStatusIn(ctx context.Context, statuses []entities.ProductSellingStatus) ([]entities.Product, error)
}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) ProductService {
	if repo == nil {
		panic("repo is nil")
	}
	return ProductService{
		repo: repo,
	}
}

type CreateProductRequest struct {
	Type          entities.ProductType
	SellingStatus entities.ProductSellingStatus
	Name          string
	Price         int
}

// CreateProduct registers a product under the next sequential product
// number: the latest persisted number plus one, zero-padded ("009"
// becomes "010"), starting at "001" for an empty catalog.
func (s ProductService) CreateProduct(ctx context.Context, request CreateProductRequest) (entities.Product, error) {
	nextProductNumber, err := s.nextProductNumber(ctx)
	if err != nil {
		return entities.Product{}, err
	}

	product := entities.Product{
		ProductID:     uuid.New(),
		ProductNumber: nextProductNumber,
		Type:          request.Type,
		SellingStatus: request.SellingStatus,
		Name:          request.Name,
		Price:         request.Price,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return entities.Product{}, fmt.Errorf("could not save product: %w", err)
	}

	log.FromContext(ctx).WithField("product_number", product.ProductNumber).Info("Product created")

	return product, nil
}

func (s ProductService) GetSellingProducts(ctx context.Context) ([]entities.Product, error) {
	return s.repo.FindAllBySellingStatusIn(ctx, entities.SellingStatusesForDisplay())
}

func (s ProductService) nextProductNumber(ctx context.Context) (string, error) {
	latest, err := s.repo.FindLatestProductNumber(ctx)
	if err != nil {
		return "", fmt.Errorf("could not get latest product number: %w", err)
	}
	if latest == "" {
		return "001", nil
	}

	n, err := strconv.Atoi(latest)
	if err != nil {
		return "", fmt.Errorf("malformed product number %q: %w", latest, err)
	}

	return fmt.Sprintf("%03d", n+1), nil
}

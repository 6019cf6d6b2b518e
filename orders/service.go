package orders

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"

	"kiosk/entities"
)

type OrderService struct {
	uow UnitOfWork
}

func NewOrderService(uow UnitOfWork) OrderService {
	if uow == nil {
		panic("uow is nil")
	}
	return OrderService{
		uow: uow,
	}
}

// CreateOrder resolves the requested product numbers, deducts stock for
// the stock-tracked ones and persists the order, all inside a single
// unit of work. Duplicated product numbers become separate order lines.
// registeredAt comes from the caller so the flow stays deterministic.
func (s OrderService) CreateOrder(ctx context.Context, productNumbers []string, registeredAt time.Time) (entities.Order, error) {
	var order entities.Order

	err := s.uow.Do(ctx, func(ctx context.Context, r Repositories) error {
		products, err := resolveProducts(ctx, r.Catalog, productNumbers)
		if err != nil {
			return err
		}

		depleted, err := deductStockQuantities(ctx, r.Stock, products)
		if err != nil {
			return err
		}

		order = entities.NewOrder(products, registeredAt)
		if err := r.Orders.Create(ctx, order); err != nil {
			return fmt.Errorf("could not save order: %w", err)
		}

		err = r.Bus.Publish(ctx, entities.OrderPlaced_v1{
			Header:         entities.NewEventHeader(),
			OrderID:        order.OrderID,
			ProductNumbers: productNumbers,
			TotalPrice:     order.TotalPrice,
			RegisteredAt:   order.RegisteredAt,
		})
		if err != nil {
			return fmt.Errorf("could not publish OrderPlaced_v1: %w", err)
		}

		for _, productNumber := range depleted {
			err = r.Bus.Publish(ctx, entities.StockDepleted_v1{
				Header:        entities.NewEventHeader(),
				ProductNumber: productNumber,
			})
			if err != nil {
				return fmt.Errorf("could not publish StockDepleted_v1: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	log.FromContext(ctx).
		WithField("order_id", order.OrderID).
		WithField("total_price", order.TotalPrice).
		Info("Order placed")

	return order, nil
}

// resolveProducts fetches the distinct product numbers in one batch,
// builds a number->product map and projects the original sequence
// through it, so duplicates keep their positions. Unknown numbers
// reject the whole order.
func resolveProducts(ctx context.Context, catalog CatalogRepository, productNumbers []string) ([]entities.Product, error) {
	found, err := catalog.FindAllByProductNumberIn(ctx, distinct(productNumbers))
	if err != nil {
		return nil, fmt.Errorf("could not get products: %w", err)
	}

	productMap := make(map[string]entities.Product, len(found))
	for _, product := range found {
		productMap[product.ProductNumber] = product
	}

	products := make([]entities.Product, 0, len(productNumbers))
	var missing []string
	for _, productNumber := range productNumbers {
		product, ok := productMap[productNumber]
		if !ok {
			missing = append(missing, productNumber)
			continue
		}
		products = append(products, product)
	}
	if len(missing) > 0 {
		return nil, NotFoundError{ProductNumbers: distinct(missing)}
	}

	return products, nil
}

// deductStockQuantities validates every stock-tracked product before
// any quantity is written back; only when all pass are the deductions
// applied. Returns the product numbers whose stock reached zero.
func deductStockQuantities(ctx context.Context, stocks StockRepository, products []entities.Product) ([]string, error) {
	stockProductNumbers := extractStockProductNumbers(products)
	if len(stockProductNumbers) == 0 {
		return nil, nil
	}

	distinctNumbers := distinct(stockProductNumbers)
	sort.Strings(distinctNumbers)

	stockMap, err := createStockMapBy(ctx, stocks, distinctNumbers)
	if err != nil {
		return nil, err
	}
	countingMap := createCountingMapBy(stockProductNumbers)

	for _, productNumber := range distinctNumbers {
		stock, ok := stockMap[productNumber]
		if !ok || stock.IsQuantityLessThan(countingMap[productNumber]) {
			return nil, InsufficientStockError{ProductNumber: productNumber}
		}
	}

	var depleted []string
	for _, productNumber := range distinctNumbers {
		stock := stockMap[productNumber]
		if err := stock.DeductQuantity(countingMap[productNumber]); err != nil {
			return nil, err
		}
		if err := stocks.Update(ctx, stock); err != nil {
			return nil, fmt.Errorf("could not update stock for %s: %w", productNumber, err)
		}
		if stock.Quantity == 0 {
			depleted = append(depleted, productNumber)
		}
	}

	return depleted, nil
}

func extractStockProductNumbers(products []entities.Product) []string {
	var productNumbers []string
	for _, product := range products {
		if product.Type.StockTracked() {
			productNumbers = append(productNumbers, product.ProductNumber)
		}
	}
	return productNumbers
}

func createStockMapBy(ctx context.Context, stocks StockRepository, productNumbers []string) (map[string]entities.Stock, error) {
	found, err := stocks.FindAllByProductNumberIn(ctx, productNumbers)
	if err != nil {
		return nil, fmt.Errorf("could not get stocks: %w", err)
	}

	stockMap := make(map[string]entities.Stock, len(found))
	for _, stock := range found {
		stockMap[stock.ProductNumber] = stock
	}
	return stockMap, nil
}

func createCountingMapBy(productNumbers []string) map[string]int {
	counts := make(map[string]int, len(productNumbers))
	for _, productNumber := range productNumbers {
		counts[productNumber]++
	}
	return counts
}

func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

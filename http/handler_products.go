package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kiosk/entities"
	"kiosk/products"
)

type productCreateRequest struct {
	Type          entities.ProductType          `json:"type"`
	SellingStatus entities.ProductSellingStatus `json:"selling_status"`
	Name          string                        `json:"name"`
	Price         int                           `json:"price"`
}

func (h *Handler) PostProductsNew(c echo.Context) error {
	var productReq productCreateRequest

	err := c.Bind(&productReq)
	if err != nil {
		return err
	}

	if !productReq.Type.IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown product type: "+string(productReq.Type))
	}
	if !productReq.SellingStatus.IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown selling status: "+string(productReq.SellingStatus))
	}
	if productReq.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product name must not be empty")
	}
	if productReq.Price <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "product price must be greater than 0")
	}

	product, err := h.productService.CreateProduct(c.Request().Context(), products.CreateProductRequest{
		Type:          productReq.Type,
		SellingStatus: productReq.SellingStatus,
		Name:          productReq.Name,
		Price:         productReq.Price,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, product)
}

func (h *Handler) GetSellingProducts(c echo.Context) error {
	sellingProducts, err := h.productService.GetSellingProducts(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sellingProducts)
}

type stockUpsertRequest struct {
	ProductNumber string `json:"product_number"`
	Quantity      int    `json:"quantity"`
}

func (h *Handler) PostStocks(c echo.Context) error {
	var stockReq stockUpsertRequest

	err := c.Bind(&stockReq)
	if err != nil {
		return err
	}

	if stockReq.ProductNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product number must not be empty")
	}
	if stockReq.Quantity < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "stock quantity must not be negative")
	}

	err = h.stockRepo.Upsert(c.Request().Context(), entities.Stock{
		ProductNumber: stockReq.ProductNumber,
		Quantity:      stockReq.Quantity,
	})
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

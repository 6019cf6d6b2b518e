package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"kiosk/orders"
)

type orderCreateRequest struct {
	ProductNumbers []string `json:"product_numbers"`
}

type orderCreateResponse struct {
	OrderID        string    `json:"order_id"`
	Status         string    `json:"status"`
	TotalPrice     int       `json:"total_price"`
	RegisteredAt   time.Time `json:"registered_at"`
	ProductNumbers []string  `json:"product_numbers"`
}

func (h *Handler) PostOrdersNew(c echo.Context) error {
	var orderReq orderCreateRequest

	err := c.Bind(&orderReq)
	if err != nil {
		return err
	}

	if len(orderReq.ProductNumbers) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "product numbers must not be empty")
	}

	order, err := h.orderService.CreateOrder(c.Request().Context(), orderReq.ProductNumbers, time.Now().UTC())
	if err != nil {
		var notFoundErr orders.NotFoundError
		if errors.As(err, &notFoundErr) {
			orderRejectionsCounter.WithLabelValues("product_not_found").Inc()
			return echo.NewHTTPError(http.StatusNotFound, notFoundErr.Error())
		}

		var stockErr orders.InsufficientStockError
		if errors.As(err, &stockErr) {
			orderRejectionsCounter.WithLabelValues("insufficient_stock").Inc()
			return echo.NewHTTPError(http.StatusBadRequest, stockErr.Error())
		}

		if errors.Is(err, orders.ErrConflict) {
			orderRejectionsCounter.WithLabelValues("conflict").Inc()
			return echo.NewHTTPError(http.StatusConflict, "order could not be placed due to concurrent updates, please retry")
		}

		return err
	}

	ordersPlacedCounter.Inc()

	productNumbers := make([]string, 0, len(order.Products))
	for _, product := range order.Products {
		productNumbers = append(productNumbers, product.ProductNumber)
	}

	return c.JSON(http.StatusCreated, orderCreateResponse{
		OrderID:        order.OrderID.String(),
		Status:         string(order.Status),
		TotalPrice:     order.TotalPrice,
		RegisteredAt:   order.RegisteredAt,
		ProductNumbers: productNumbers,
	})
}

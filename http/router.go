package http

import (
	"net/http"

	libHttp "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func NewHttpRouter(
	cmdBus *cqrs.CommandBus,
	orderService OrderService,
	productService ProductService,
	stockRepo StockRepository,
	opsOrderRepo OpsOrderRepository,
) *echo.Echo {
	e := libHttp.NewEcho()
	e.Use(otelecho.Middleware("kiosk"))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler := Handler{
		cmdBus:         cmdBus,
		orderService:   orderService,
		productService: productService,
		stockRepo:      stockRepo,
		opsOrderRepo:   opsOrderRepo,
	}

	e.POST("/api/v1/orders/new", handler.PostOrdersNew)
	e.POST("/api/v1/products/new", handler.PostProductsNew)
	e.GET("/api/v1/products/selling", handler.GetSellingProducts)
	e.POST("/api/v1/stocks", handler.PostStocks)
	e.GET("/ops/orders", handler.GetOpsOrders)
	e.GET("/ops/orders/:id", handler.GetOpsOrderByID)
	e.POST("/ops/order-statistics", handler.PostOrderStatistics)

	return e
}

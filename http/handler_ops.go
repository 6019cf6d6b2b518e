package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"kiosk/db"
	"kiosk/entities"
)

func (h *Handler) GetOpsOrders(c echo.Context) error {
	resp, err := h.opsOrderRepo.GetAll(c.Request().Context())
	if err != nil {
		return fmt.Errorf("failed getting ops orders: %w", err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetOpsOrderByID(c echo.Context) error {
	orderID := c.Param("id")

	resp, err := h.opsOrderRepo.GetByID(c.Request().Context(), orderID)
	if err != nil {
		if errors.Is(err, db.ErrOpsOrderNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return fmt.Errorf("failed getting ops order: %w", err)
	}

	return c.JSON(http.StatusOK, resp)
}

type orderStatisticsRequest struct {
	Date  string `json:"date"`
	Email string `json:"email"`
}

func (h *Handler) PostOrderStatistics(c echo.Context) error {
	var statsReq orderStatisticsRequest

	err := c.Bind(&statsReq)
	if err != nil {
		return err
	}

	_, err = time.Parse("2006-01-02", statsReq.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD: "+err.Error())
	}
	if statsReq.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email must not be empty")
	}

	err = h.cmdBus.Send(c.Request().Context(), entities.SendOrderStatistics{
		Date:  statsReq.Date,
		Email: statsReq.Email,
	})
	if err != nil {
		return fmt.Errorf("failed sending order statistics command: %w", err)
	}

	return c.NoContent(http.StatusAccepted)
}

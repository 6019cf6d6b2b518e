package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiosk/api"
	"kiosk/db"
	"kiosk/entities"
	"kiosk/message"
	"kiosk/service"
)

func TestComponent(t *testing.T) {
	postgresURL := os.Getenv("POSTGRES_URL")
	redisAddr := os.Getenv("REDIS_ADDR")
	if postgresURL == "" || redisAddr == "" {
		t.Skip("POSTGRES_URL or REDIS_ADDR not set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn, err := db.NewDBConn(postgresURL)
	require.NoError(t, err)
	defer conn.Close()
	conn.MigrateSchema()

	redisClient := message.NewRedisClient(redisAddr)
	defer redisClient.Close()

	mailMock := &api.MailMock{}

	go func() {
		svc := service.New(
			redisClient,
			mailMock,
			conn,
			"no-reply@cafekiosk.test",
			"ops@cafekiosk.test",
		)
		assert.NoError(t, svc.Run(ctx))
	}()
	waitForHttpServer(t)

	americanoNumber := createProduct(t, CreateProductRequest{
		Type:          string(entities.ProductTypeBottle),
		SellingStatus: string(entities.SellingStatusSelling),
		Name:          "bottled americano",
		Price:         4000,
	})
	upsertStock(t, americanoNumber, 2)

	order, status := placeOrder(t, []string{americanoNumber, americanoNumber})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 8000, order.TotalPrice)
	assert.Equal(t, string(entities.OrderStatusInit), order.Status)
	assert.Equal(t, []string{americanoNumber, americanoNumber}, order.ProductNumbers)

	assertOpsOrderVisible(t, order.OrderID)
	assertStockDepletedMailSent(t, mailMock, americanoNumber)

	_, status = placeOrder(t, []string{americanoNumber})
	assert.Equal(t, http.StatusBadRequest, status)

	_, status = placeOrder(t, []string{"no-such-product"})
	assert.Equal(t, http.StatusNotFound, status)
}

func assertOpsOrderVisible(t *testing.T, orderID string) {
	t.Helper()

	assert.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			resp, err := http.Get("http://localhost:8080/ops/orders/" + orderID)
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			if !assert.Equal(t, http.StatusOK, resp.StatusCode) {
				return
			}

			var opsOrder entities.OpsOrder
			if !assert.NoError(t, json.NewDecoder(resp.Body).Decode(&opsOrder)) {
				return
			}

			assert.Equal(t, orderID, opsOrder.OrderID.String())
			assert.Equal(t, 8000, opsOrder.TotalPrice)
		},
		10*time.Second,
		100*time.Millisecond,
	)
}

func assertStockDepletedMailSent(t *testing.T, mailMock *api.MailMock, productNumber string) {
	t.Helper()

	assert.EventuallyWithT(
		t,
		func(collectT *assert.CollectT) {
			sentMails := len(mailMock.SentMails)
			t.Log("sent mails", sentMails)

			assert.Greater(collectT, sentMails, 0, "no mails sent")
		},
		10*time.Second,
		100*time.Millisecond,
	)

	var found bool
	for _, sentMail := range mailMock.SentMails {
		if sentMail.To == "ops@cafekiosk.test" {
			found = true
			break
		}
	}
	require.Truef(t, found, "stock depleted mail for product %s not found", productNumber)
}

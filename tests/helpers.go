package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/lithammer/shortuuid/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type CreateProductRequest struct {
	Type          string `json:"type"`
	SellingStatus string `json:"selling_status"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
}

type ProductResponse struct {
	ProductNumber string `json:"product_number"`
}

type UpsertStockRequest struct {
	ProductNumber string `json:"product_number"`
	Quantity      int    `json:"quantity"`
}

type CreateOrderRequest struct {
	ProductNumbers []string `json:"product_numbers"`
}

type OrderResponse struct {
	OrderID        string   `json:"order_id"`
	Status         string   `json:"status"`
	TotalPrice     int      `json:"total_price"`
	ProductNumbers []string `json:"product_numbers"`
}

func postJSON(t *testing.T, url string, req any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(payload))
	require.NoError(t, err)

	httpReq.Header.Set("Correlation-ID", shortuuid.New())
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(httpReq)
	require.NoError(t, err)

	return resp
}

func createProduct(t *testing.T, req CreateProductRequest) string {
	t.Helper()

	resp := postJSON(t, "http://localhost:8080/api/v1/products/new", req)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var product ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&product))
	require.NotEmpty(t, product.ProductNumber)

	return product.ProductNumber
}

func upsertStock(t *testing.T, productNumber string, quantity int) {
	t.Helper()

	resp := postJSON(t, "http://localhost:8080/api/v1/stocks", UpsertStockRequest{
		ProductNumber: productNumber,
		Quantity:      quantity,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func placeOrder(t *testing.T, productNumbers []string) (OrderResponse, int) {
	t.Helper()

	resp := postJSON(t, "http://localhost:8080/api/v1/orders/new", CreateOrderRequest{
		ProductNumbers: productNumbers,
	})
	defer resp.Body.Close()

	var order OrderResponse
	if resp.StatusCode == http.StatusCreated {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
	}

	return order, resp.StatusCode
}

func waitForHttpServer(t *testing.T) {
	t.Helper()

	require.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			resp, err := http.Get("http://localhost:8080/health")
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			if assert.Less(t, resp.StatusCode, 300, "API not ready, http status: %d", resp.StatusCode) {
				return
			}
		},
		time.Second*10,
		time.Millisecond*50,
	)
}

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiosk/entities"
	"kiosk/products"
)

type productServiceStub struct {
	product    entities.Product
	err        error
	gotRequest products.CreateProductRequest
}

func (s *productServiceStub) CreateProduct(ctx context.Context, request products.CreateProductRequest) (entities.Product, error) {
	s.gotRequest = request
	return s.product, s.err
}

func (s *productServiceStub) GetSellingProducts(ctx context.Context) ([]entities.Product, error) {
	return nil, nil
}

func postProductsNew(t *testing.T, handler *Handler, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/new", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return rec, handler.PostProductsNew(e.NewContext(req, rec))
}

func TestPostProductsNew(t *testing.T) {
	stub := &productServiceStub{product: entities.Product{
		ProductID:     uuid.New(),
		ProductNumber: "001",
		Type:          entities.ProductTypeBottle,
		SellingStatus: entities.SellingStatusSelling,
		Name:          "water",
		Price:         1000,
	}}
	handler := &Handler{productService: stub}

	rec, err := postProductsNew(t, handler, `{"type":"BOTTLE","selling_status":"SELLING","name":"water","price":1000}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "water", stub.gotRequest.Name)
	assert.Equal(t, entities.ProductTypeBottle, stub.gotRequest.Type)
}

func TestPostProductsNewRejectsUnknownEnums(t *testing.T) {
	handler := &Handler{productService: &productServiceStub{}}

	_, err := postProductsNew(t, handler, `{"type":"CANNED","selling_status":"SELLING","name":"soda","price":1000}`)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	_, err = postProductsNew(t, handler, `{"type":"BOTTLE","selling_status":"SOLD_OUT","name":"soda","price":1000}`)
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

// a failing create must carry the reason in the response, not an empty
// serialized error
func TestPostProductsNewServiceError(t *testing.T) {
	handler := &Handler{productService: &productServiceStub{
		err: errors.New("could not save product"),
	}}

	_, err := postProductsNew(t, handler, `{"type":"BOTTLE","selling_status":"SELLING","name":"water","price":1000}`)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Contains(t, httpErr.Message, "could not save product")
}

package httpserver_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dddlab/backend/adapters/event"
	"github.com/dddlab/backend/adapters/event/listeners"
	"github.com/dddlab/backend/adapters/httpserver"
	"github.com/dddlab/backend/adapters/inmemstore"
	"github.com/dddlab/backend/adapters/postgrestore"
	"github.com/dddlab/backend/adapters/services"
	"github.com/dddlab/backend/domain"
	"github.com/dddlab/backend/domain/customer"
	"github.com/dddlab/backend/pkg/apperror"
	"github.com/dddlab/backend/pkg/config"
	"github.com/dddlab/backend/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingHandler struct{}

func (failingHandler) Handle(domain.Event) error {
	return errors.New("handler failed")
}

type response struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Code    string          `json:"code"`
}

func newServer(t *testing.T) (*httpserver.Server, domain.EventDispatcher) {
	t.Helper()

	db, err := inmemstore.NewConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = inmemstore.Close(db) })

	registry := prometheus.NewRegistry()
	dispatcher := event.NewEventDispatcher(event.WithMetrics(metrics.NewDispatcher(registry, "dddlab")))
	listeners.RegisterAll(dispatcher, listeners.Dependencies{})

	server, err := httpserver.New(&config.Config{}, zap.NewNop().Sugar(), httpserver.WithMetricsGatherer(registry))
	require.NoError(t, err)

	customers := postgrestore.NewCustomerStore(db)
	products := postgrestore.NewProductStore(db)

	server.EventDispatcher = dispatcher
	server.CustomerService = services.NewCustomerService(customers, dispatcher)
	server.ProductService = services.NewProductService(products, dispatcher)
	server.OrderService = services.NewOrderService(postgrestore.NewOrderStore(db), customers, products)

	return server, dispatcher
}

func do(t *testing.T, server *httpserver.Server, method, target, body string) (*httptest.ResponseRecorder, response) {
	t.Helper()

	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	var resp response
	if strings.HasPrefix(recorder.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	}

	return recorder, resp
}

func TestHealthCheck(t *testing.T) {
	server, err := httpserver.New(&config.Config{}, zap.NewNop().Sugar())
	assert.NoError(t, err)

	response := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	server.ServeHTTP(response, request)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK!!!", response.Body.String())
}

func TestCustomerRoutes(t *testing.T) {
	t.Run("it should create a customer", func(t *testing.T) {
		server, _ := newServer(t)

		recorder, resp := do(t, server, http.MethodPost, "/api/customers", `{"name":"  Customer 1  "}`)
		require.Equal(t, http.StatusCreated, recorder.Code)

		var c customer.Customer
		require.NoError(t, json.Unmarshal(resp.Data, &c))
		assert.Equal(t, "Customer 1", c.Name)
		assert.NotEmpty(t, c.ID)

		recorder, resp = do(t, server, http.MethodGet, "/api/customers/"+c.ID, "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var got customer.Customer
		require.NoError(t, json.Unmarshal(resp.Data, &got))
		assert.Equal(t, c.ID, got.ID)
	})

	t.Run("it should reject an empty name", func(t *testing.T) {
		server, _ := newServer(t)

		recorder, resp := do(t, server, http.MethodPost, "/api/customers", `{"name":"   "}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apperror.ValidationCode, resp.Code)
	})

	t.Run("it should reject a page past the last allowed one", func(t *testing.T) {
		server, _ := newServer(t)

		recorder, resp := do(t, server, http.MethodGet, "/api/customers?page=9223372036854775807", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apperror.ValidationCode, resp.Code)
	})

	t.Run("it should return not found", func(t *testing.T) {
		server, _ := newServer(t)

		recorder, resp := do(t, server, http.MethodGet, "/api/customers/missing", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, apperror.EntityNotFoundCode, resp.Code)
	})

	t.Run("it should change the address", func(t *testing.T) {
		server, _ := newServer(t)
		_, resp := do(t, server, http.MethodPost, "/api/customers", `{"name":"Customer 1"}`)

		var c customer.Customer
		require.NoError(t, json.Unmarshal(resp.Data, &c))

		recorder, resp := do(t, server, http.MethodPut, "/api/customers/"+c.ID+"/address",
			`{"street":"Street 1","number":123,"zip":"13330-250","city":"São Paulo"}`)
		require.Equal(t, http.StatusOK, recorder.Code)

		var got customer.Customer
		require.NoError(t, json.Unmarshal(resp.Data, &got))
		require.NotNil(t, got.Address)
		assert.Equal(t, "Street 1, 123, 13330-250 São Paulo", got.Address.String())
	})

	t.Run("it should succeed when a handler fails after saving", func(t *testing.T) {
		server, dispatcher := newServer(t)
		dispatcher.Register(customer.CustomerCreatedEventName, failingHandler{})

		recorder, _ := do(t, server, http.MethodPost, "/api/customers", `{"name":"Customer 1"}`)
		assert.Equal(t, http.StatusCreated, recorder.Code)

		recorder, resp := do(t, server, http.MethodGet, "/api/customers", "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var list struct {
			Customers []customer.Customer `json:"customers"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &list))
		assert.Len(t, list.Customers, 1)
	})
}

func TestOrderRoutes(t *testing.T) {
	server, _ := newServer(t)

	_, resp := do(t, server, http.MethodPost, "/api/customers", `{"name":"Customer 1"}`)
	var c struct{ ID string }
	require.NoError(t, json.Unmarshal(resp.Data, &c))

	recorder, resp := do(t, server, http.MethodPost, "/api/products", `{"name":"Product 1","price":10}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	var p struct{ ID string }
	require.NoError(t, json.Unmarshal(resp.Data, &p))

	recorder, resp = do(t, server, http.MethodPost, "/api/orders",
		`{"customer_id":"`+c.ID+`","items":[{"product_id":"`+p.ID+`","quantity":2}]}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	var o struct{ ID string }
	require.NoError(t, json.Unmarshal(resp.Data, &o))

	recorder, _ = do(t, server, http.MethodPut, "/api/orders/"+o.ID+"/items",
		`{"items":[{"product_id":"`+p.ID+`","quantity":5}]}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder, resp = do(t, server, http.MethodGet, "/api/orders/"+o.ID, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	var got struct {
		Items []struct{ Quantity int }
	}
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	require.Len(t, got.Items, 1)
	assert.Equal(t, 5, got.Items[0].Quantity)

	recorder, resp = do(t, server, http.MethodPost, "/api/orders", `{"customer_id":"`+c.ID+`","items":[]}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, apperror.ValidationCode, resp.Code)

	recorder, _ = do(t, server, http.MethodGet, "/api/orders/missing", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestEventHandlersRoute(t *testing.T) {
	server, _ := newServer(t)

	recorder, resp := do(t, server, http.MethodGet, "/api/events/handlers", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var handlers map[string][]string
	require.NoError(t, json.Unmarshal(resp.Data, &handlers))
	assert.Equal(t, []string{
		"listeners.SendConsoleLog1Handler",
		"listeners.SendConsoleLog2Handler",
	}, handlers[customer.CustomerCreatedEventName])
}

func TestMetricsRoute(t *testing.T) {
	server, _ := newServer(t)
	do(t, server, http.MethodPost, "/api/customers", `{"name":"Customer 1"}`)

	recorder, _ := do(t, server, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `dddlab_events_notified_total{event="CustomerCreatedEvent"} 1`)
}

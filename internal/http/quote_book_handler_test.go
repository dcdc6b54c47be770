package http

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/domain/dto"
	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/guttosm/print-quote-service/internal/mocks"
	"github.com/guttosm/print-quote-service/internal/pricing"
	"github.com/guttosm/print-quote-service/internal/repository"
	"github.com/guttosm/print-quote-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bookNow puts the last six clock digits at 123456, so new refs end in 123456.
var bookNow = time.UnixMilli(1_780_000_123_456).UTC()

type bookMocks struct {
	quotes *mocks.MockQuotesRepositoryInterface
	orders *mocks.MockOrdersRepositoryInterface
}

func setupBookRouter(t *testing.T) (*gin.Engine, bookMocks) {
	m := bookMocks{
		quotes: &mocks.MockQuotesRepositoryInterface{},
		orders: &mocks.MockOrdersRepositoryInterface{},
	}
	t.Cleanup(func() {
		m.quotes.AssertExpectations(t)
		m.orders.AssertExpectations(t)
	})

	cfg := DefaultRouterConfig()
	cfg.Calculator = service.NewQuoteService(testRates())
	cfg.QuoteBook = service.NewQuoteBook(m.quotes, m.orders, service.WithClock(func() time.Time { return bookNow }))
	return NewRouter(NewHealthHandler(), cfg), m
}

// TestSaveQuote tests saving priced and manually priced quotes.
func TestSaveQuote(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(bookMocks)
		expectedStatus int
		checkResponse  func(*testing.T, model.QuoteRecord)
	}{
		{
			name: "priced by the server",
			body: `{"client": "Imprimerie Centrale", "pricing": {"product": "flyer", "quantity": 100, "options": {"paper": "offset-80"}}}`,
			setupMock: func(m bookMocks) {
				m.quotes.On("Save", mock.Anything, mock.MatchedBy(func(q *model.QuoteRecord) bool {
					return q.Ref == "Q-123456" && q.Price == "40.00" && q.Product == pricing.ProductFlyer && q.Quote != nil
				})).Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, q model.QuoteRecord) {
				assert.Equal(t, "Q-123456", q.Ref)
				assert.Equal(t, 100, q.Quantity)
				assert.Equal(t, model.QuoteStatusPending, q.Status)
				assert.Contains(t, q.Description, "Impression: Recto")
			},
		},
		{
			name: "manual price keeps the given ref",
			body: `{"ref": "Q-000777", "client": "Librairie du Lac", "product": "carte", "quantity": 200, "price": "48"}`,
			setupMock: func(m bookMocks) {
				m.quotes.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, q model.QuoteRecord) {
				assert.Equal(t, "Q-000777", q.Ref)
				assert.Equal(t, pricing.ProductCard, q.Product)
				assert.Equal(t, "48.00", q.Price)
				assert.Nil(t, q.Quote)
			},
		},
		{
			name:           "missing client",
			body:           `{"product": "carte", "quantity": 200, "price": "48"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unreadable price",
			body:           `{"client": "Librairie du Lac", "product": "carte", "quantity": 200, "price": "quarante"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "job cannot be priced",
			body:           `{"client": "Librairie du Lac", "pricing": {"product": "flyer", "quantity": 100, "options": {"mode": "rectoVerso"}}}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "store failure",
			body: `{"client": "Librairie du Lac", "product": "carte", "quantity": 200, "price": "48"}`,
			setupMock: func(m bookMocks) {
				m.quotes.On("Save", mock.Anything, mock.Anything).Return(assert.AnError).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupBookRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			w := postJSON(router, "/api/pricing/quotes", tt.body)

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				var q model.QuoteRecord
				decodeData(t, w, &q)
				tt.checkResponse(t, q)
			}
		})
	}
}

// TestQuoteLookups tests reading and listing quotes.
func TestQuoteLookups(t *testing.T) {
	t.Run("get existing quote", func(t *testing.T) {
		router, m := setupBookRouter(t)
		m.quotes.On("Get", mock.Anything, "Q-000777").
			Return(&model.QuoteRecord{Ref: "Q-000777", Client: "Librairie du Lac", Price: "48.00"}, nil).Once()

		w := doRequest(router, http.MethodGet, "/api/pricing/quotes/Q-000777", "")

		require.Equal(t, http.StatusOK, w.Code)
		var q model.QuoteRecord
		decodeData(t, w, &q)
		assert.Equal(t, "Librairie du Lac", q.Client)
	})

	t.Run("get unknown quote", func(t *testing.T) {
		router, m := setupBookRouter(t)
		m.quotes.On("Get", mock.Anything, "Q-404404").Return(nil, repository.ErrNotFound).Once()

		w := doRequest(router, http.MethodGet, "/api/pricing/quotes/Q-404404", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, decodeError(t, w).Error)
	})

	t.Run("empty list", func(t *testing.T) {
		router, m := setupBookRouter(t)
		m.quotes.On("List", mock.Anything, 10).Return(nil, nil).Once()

		w := doRequest(router, http.MethodGet, "/api/pricing/quotes?limit=10", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})
}

// TestUpdateQuoteStatus tests changing a quote status.
func TestUpdateQuoteStatus(t *testing.T) {
	t.Run("updates status", func(t *testing.T) {
		router, m := setupBookRouter(t)
		m.quotes.On("UpdateStatus", mock.Anything, "Q-000777", "sent").
			Return(&model.QuoteRecord{Ref: "Q-000777", Status: "sent"}, nil).Once()

		w := doRequest(router, http.MethodPatch, "/api/pricing/quotes/Q-000777/status", `{"status": "sent"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var q model.QuoteRecord
		decodeData(t, w, &q)
		assert.Equal(t, "sent", q.Status)
	})

	t.Run("blank status", func(t *testing.T) {
		router, _ := setupBookRouter(t)

		w := doRequest(router, http.MethodPatch, "/api/pricing/quotes/Q-000777/status", `{"status": "  "}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestConvertQuote tests turning a quote into a pending, unpaid order.
func TestConvertQuote(t *testing.T) {
	router, m := setupBookRouter(t)
	m.quotes.On("Get", mock.Anything, "Q-000777").Return(&model.QuoteRecord{
		Ref:      "Q-000777",
		Client:   "Librairie du Lac",
		Product:  pricing.ProductCard,
		Quantity: 200,
		Price:    "48.00",
		Status:   model.QuoteStatusPending,
	}, nil).Once()
	m.orders.On("Save", mock.Anything, mock.MatchedBy(func(o *model.OrderRecord) bool {
		return o.Ref == "D-123456" && o.ConvertedFrom == "Q-000777"
	})).Return(nil).Once()
	m.quotes.On("Save", mock.Anything, mock.MatchedBy(func(q *model.QuoteRecord) bool {
		return q.Status == model.QuoteStatusConverted && q.ConvertedTo == "D-123456"
	})).Return(nil).Once()

	w := doRequest(router, http.MethodPost, "/api/pricing/quotes/Q-000777/convert", "")

	require.Equal(t, http.StatusCreated, w.Code)
	var o model.OrderRecord
	decodeData(t, w, &o)
	assert.Equal(t, "D-123456", o.Ref)
	assert.Equal(t, model.ProductionPending, o.ProductionStatus)
	assert.Equal(t, model.AccountingUnpaid, o.AccountingStatus)
	assert.Equal(t, "48.00", o.Price)
}

// TestSaveOrder tests saving an order with default statuses.
func TestSaveOrder(t *testing.T) {
	router, m := setupBookRouter(t)
	m.orders.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	w := postJSON(router, "/api/pricing/orders", `{"client": "Librairie du Lac", "product": "affiches", "quantity": 3, "price": "96.5"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var o model.OrderRecord
	decodeData(t, w, &o)
	assert.Equal(t, "D-123456", o.Ref)
	assert.Equal(t, "96.50", o.Price)
	assert.Equal(t, model.ProductionPending, o.ProductionStatus)
	assert.Equal(t, model.AccountingUnpaid, o.AccountingStatus)
	assert.True(t, o.Date.Equal(bookNow))
}

// TestListOrders tests the status filters of the order list.
func TestListOrders(t *testing.T) {
	tests := []struct {
		name           string
		query          url.Values
		filter         *repository.OrderFilter
		expectedStatus int
	}{
		{
			name:           "production queue",
			query:          url.Values{"status": {model.ProductionPending}},
			filter:         &repository.OrderFilter{Kind: model.StatusProduction, Status: model.ProductionPending},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unpaid orders",
			query:          url.Values{"kind": {"compta"}, "status": {model.AccountingUnpaid}, "limit": {"20"}},
			filter:         &repository.OrderFilter{Kind: model.StatusAccounting, Status: model.AccountingUnpaid, Limit: 20},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown status kind",
			query:          url.Values{"kind": {"shipping"}},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupBookRouter(t)
			if tt.filter != nil {
				m.orders.On("List", mock.Anything, *tt.filter).
					Return([]model.OrderRecord{{Ref: "D-000001"}}, nil).Once()
			}

			w := doRequest(router, http.MethodGet, "/api/pricing/orders?"+tt.query.Encode(), "")

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.filter != nil {
				var orders []model.OrderRecord
				decodeData(t, w, &orders)
				assert.Len(t, orders, 1)
			}
		})
	}
}

// TestUpdateOrderStatus tests production and accounting status changes.
func TestUpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		kind           model.StatusKind
		status         string
		expectedStatus int
	}{
		{
			name:           "production defaults",
			body:           `{"status": "Terminé"}`,
			kind:           model.StatusProduction,
			status:         model.ProductionCompleted,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "accounting",
			body:           `{"status": "Payé", "kind": "compta"}`,
			kind:           model.StatusAccounting,
			status:         "Payé",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown kind",
			body:           `{"status": "Payé", "kind": "shipping"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing status",
			body:           `{"kind": "prod"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupBookRouter(t)
			if tt.expectedStatus == http.StatusOK {
				m.orders.On("UpdateStatus", mock.Anything, "D-000001", tt.kind, tt.status).
					Return(&model.OrderRecord{Ref: "D-000001"}, nil).Once()
			}

			w := doRequest(router, http.MethodPatch, "/api/pricing/orders/D-000001/status", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

// TestOrderStats tests the dashboard totals.
func TestOrderStats(t *testing.T) {
	router, m := setupBookRouter(t)
	m.orders.On("List", mock.Anything, repository.OrderFilter{}).Return([]model.OrderRecord{
		{Ref: "D-1", Price: "40.00", Date: bookNow, ProductionStatus: model.ProductionCompleted},
		{Ref: "D-2", Price: "10.50", Date: bookNow, ProductionStatus: model.ProductionPending},
		{Ref: "D-3", Price: "100", Date: bookNow.AddDate(-1, 0, 0), ProductionStatus: model.ProductionCompleted},
	}, nil).Once()

	w := doRequest(router, http.MethodGet, "/api/pricing/stats", "")

	require.Equal(t, http.StatusOK, w.Code)
	var stats model.OrderStats
	decodeData(t, w, &stats)
	assert.Equal(t, "150.50", stats.Revenue.All)
	assert.Equal(t, "50.50", stats.Revenue.Today)
	assert.Equal(t, "50.50", stats.Revenue.Month)
	require.Len(t, stats.ProductionQueue, 1)
	assert.Equal(t, "D-2", stats.ProductionQueue[0].Ref)
	require.Len(t, stats.CompletedToday, 1)
	assert.Equal(t, "D-1", stats.CompletedToday[0].Ref)
}

// TestQuoteBookRoutes_WithoutBook tests that the book routes need a quote book.
func TestQuoteBookRoutes_WithoutBook(t *testing.T) {
	router := setupRouter()

	for _, path := range []string{"/api/pricing/quotes", "/api/pricing/orders", "/api/pricing/stats"} {
		w := doRequest(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

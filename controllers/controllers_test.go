package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cashback-backend/controllers"
	"cashback-backend/models"
	"cashback-backend/repositories"
	mock_repositories "cashback-backend/repositories/mocks"
	"cashback-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mock_repositories.MockRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	repo := mock_repositories.NewMockRepository(ctrl)
	repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repositories.Repository) error) error {
			return fn(repo)
		}).AnyTimes()

	log, _ := test.NewNullLogger()
	translator := services.NewTranslator(services.SheetDateDecoder(time.Now), 3.2)

	importController := &controllers.ImportController{
		Imports:        services.NewImportService(repo, translator, log),
		MaxUploadBytes: 1 << 20,
	}
	transactionController := &controllers.TransactionController{
		Transactions: services.NewTransactionService(repo, log),
	}
	customerController := &controllers.CustomerController{
		Customers: services.NewCustomerService(repo, log),
	}

	r := gin.New()
	r.POST("/api/import", importController.ImportJSON)
	r.POST("/api/import/excel", importController.ImportExcel)
	r.GET("/api/template", importController.DownloadTemplate)
	r.POST("/api/transactions", transactionController.CreateTransaction)
	r.GET("/api/transactions", transactionController.GetTransactions)
	r.GET("/api/customers/:id", customerController.GetCustomer)
	return r, repo
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTransaction(t *testing.T) {
	customerID := uuid.New()

	tests := []struct {
		name        string
		body        gin.H
		setup       func(repo *mock_repositories.MockRepository)
		wantStatus  int
		wantMessage string
		wantBalance *int
	}{
		{
			name: "credit",
			body: gin.H{"customerId": customerID.String(), "type": "CREDIT", "points": 50, "description": "Bônus"},
			setup: func(repo *mock_repositories.MockRepository) {
				repo.EXPECT().FindCustomerByID(gomock.Any(), customerID).
					Return(&models.Customer{ID: customerID, TotalPoints: 100}, nil)
				repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().AddCustomerPoints(gomock.Any(), customerID, 50).Return(150, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "50 points added",
			wantBalance: intPtr(150),
		},
		{
			name: "debit",
			body: gin.H{"customerId": customerID.String(), "type": "DEBIT", "points": 30, "description": "Resgate"},
			setup: func(repo *mock_repositories.MockRepository) {
				repo.EXPECT().FindCustomerByID(gomock.Any(), customerID).
					Return(&models.Customer{ID: customerID, TotalPoints: 100}, nil)
				repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().AddCustomerPoints(gomock.Any(), customerID, -30).Return(70, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "30 points removed",
			wantBalance: intPtr(70),
		},
		{
			name: "insufficient balance",
			body: gin.H{"customerId": customerID.String(), "type": "DEBIT", "points": 150, "description": "Resgate"},
			setup: func(repo *mock_repositories.MockRepository) {
				repo.EXPECT().FindCustomerByID(gomock.Any(), customerID).
					Return(&models.Customer{ID: customerID, TotalPoints: 100}, nil)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "insufficient balance: current balance is 100 points",
		},
		{
			name: "unknown customer",
			body: gin.H{"customerId": customerID.String(), "type": "CREDIT", "points": 1, "description": "x"},
			setup: func(repo *mock_repositories.MockRepository) {
				repo.EXPECT().FindCustomerByID(gomock.Any(), customerID).Return(nil, repositories.ErrNotFound)
			},
			wantStatus:  http.StatusNotFound,
			wantMessage: "customer not found",
		},
		{
			name:        "negative points",
			body:        gin.H{"customerId": customerID.String(), "type": "CREDIT", "points": -5, "description": "x"},
			setup:       func(*mock_repositories.MockRepository) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid data",
		},
		{
			name: "storage failure",
			body: gin.H{"customerId": customerID.String(), "type": "CREDIT", "points": 1, "description": "x"},
			setup: func(repo *mock_repositories.MockRepository) {
				repo.EXPECT().FindCustomerByID(gomock.Any(), customerID).Return(nil, errors.New("connection refused"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to process transaction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, repo := newTestRouter(t)
			tt.setup(repo)

			w := doJSON(r, http.MethodPost, "/api/transactions", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			var result models.TransactionResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
			assert.Equal(t, tt.wantStatus == http.StatusOK, result.Success)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Equal(t, tt.wantBalance, result.NewBalance)
		})
	}
}

func TestImportJSON(t *testing.T) {
	t.Run("invalid batch", func(t *testing.T) {
		r, _ := newTestRouter(t)

		w := doJSON(r, http.MethodPost, "/api/import", gin.H{
			"customers": []gin.H{{"name": "Maria", "cpf": "123"}},
			"trips":     []gin.H{},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var result models.ImportResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.False(t, result.Success)
		assert.Contains(t, result.Errors, "customers.0.cpf: must contain 11 digits")
	})

	t.Run("malformed body", func(t *testing.T) {
		r, _ := newTestRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/api/import", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("trip without cashbackPercent", func(t *testing.T) {
		r, _ := newTestRouter(t)

		w := doJSON(r, http.MethodPost, "/api/import", gin.H{
			"customers": []gin.H{{"name": "Maria Silva", "cpf": "12345678901"}},
			"trips": []gin.H{{
				"reservationId": "RES001",
				"customerCpf":   "12345678901",
				"totalValue":    5000,
				"returnDate":    "2024-12-01T00:00:00Z",
				"status":        "COMPLETED",
			}},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var result models.ImportResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Contains(t, result.Errors, "trips.0.cashbackPercent: is required")
	})

	t.Run("quoted totalValue", func(t *testing.T) {
		r, _ := newTestRouter(t)

		w := doJSON(r, http.MethodPost, "/api/import", gin.H{
			"customers": []gin.H{{"name": "Maria Silva", "cpf": "12345678901"}},
			"trips": []gin.H{{
				"reservationId":   "RES001",
				"customerCpf":     "12345678901",
				"totalValue":      "5000",
				"returnDate":      "2024-12-01T00:00:00Z",
				"status":          "COMPLETED",
				"cashbackPercent": 5,
			}},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var result models.ImportResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, "invalid JSON body", result.Message)
	})

	t.Run("new customer and trip", func(t *testing.T) {
		r, repo := newTestRouter(t)
		customerID := uuid.New()

		gomock.InOrder(
			repo.EXPECT().FindCustomerByCPF(gomock.Any(), "12345678901").Return(nil, repositories.ErrNotFound),
			repo.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, c *models.Customer) error {
					c.ID = customerID
					return nil
				}),
			repo.EXPECT().FindCustomerByCPF(gomock.Any(), "12345678901").
				Return(&models.Customer{ID: customerID, CPF: "12345678901"}, nil),
			repo.EXPECT().FindTripByReservationID(gomock.Any(), "RES001").Return(nil, repositories.ErrNotFound),
			repo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).Return(nil),
			repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil),
			repo.EXPECT().AddCustomerPoints(gomock.Any(), customerID, 250).Return(250, nil),
		)

		w := doJSON(r, http.MethodPost, "/api/import", gin.H{
			"customers": []gin.H{{"name": "Maria Silva", "cpf": "12345678901"}},
			"trips": []gin.H{{
				"reservationId":   "RES001",
				"customerCpf":     "12345678901",
				"totalValue":      5000,
				"returnDate":      "2024-12-01T00:00:00Z",
				"status":          "COMPLETED",
				"cashbackPercent": 5,
			}},
		})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var result models.ImportResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.True(t, result.Success)
		assert.Equal(t, &models.ImportStats{
			CustomersCreated:    1,
			TripsCreated:        1,
			TransactionsCreated: 1,
			TotalPointsAdded:    250,
		}, result.Stats)
	})

	t.Run("storage failure", func(t *testing.T) {
		r, repo := newTestRouter(t)
		repo.EXPECT().FindCustomerByCPF(gomock.Any(), "12345678901").Return(nil, errors.New("connection refused"))

		w := doJSON(r, http.MethodPost, "/api/import", gin.H{
			"customers": []gin.H{{"name": "Maria Silva", "cpf": "12345678901"}},
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var result models.ImportResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, "Failed to import data", result.Message)
		assert.Equal(t, []string{"find customer: connection refused"}, result.Errors)
	})
}

func TestImportExcel(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		r, _ := newTestRouter(t)
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/import/excel", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong extension", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := uploadFile(t, r, "clientes.csv", []byte("nome,cpf\n"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var result models.ImportResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, "unsupported file type", result.Message)
	})

	t.Run("template upload", func(t *testing.T) {
		r, repo := newTestRouter(t)
		var template bytes.Buffer
		require.NoError(t, services.WriteTemplate(&template))

		customers := map[string]*models.Customer{}
		repo.EXPECT().FindCustomerByCPF(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cpf string) (*models.Customer, error) {
				if c, ok := customers[cpf]; ok {
					return c, nil
				}
				return nil, repositories.ErrNotFound
			}).AnyTimes()
		repo.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *models.Customer) error {
				c.ID = uuid.New()
				customers[c.CPF] = c
				return nil
			}).Times(2)
		repo.EXPECT().FindTripByReservationID(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound).Times(3)
		repo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).Return(nil).Times(3)
		repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		repo.EXPECT().AddCustomerPoints(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).Times(2)

		w := uploadFile(t, r, services.TemplateFileName, template.Bytes())

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var result models.ImportResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, "Import completed successfully", result.Message)
		assert.Equal(t, 570, result.Stats.TotalPointsAdded)
	})
}

func uploadFile(t *testing.T, r http.Handler, name string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/import/excel", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDownloadTemplate(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/template", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "modelo-importacao.xlsx")
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}

func TestGetCustomer(t *testing.T) {
	t.Run("bad id", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := doJSON(r, http.MethodGet, "/api/customers/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		r, repo := newTestRouter(t)
		id := uuid.New()
		repo.EXPECT().FindCustomerByID(gomock.Any(), id).Return(nil, repositories.ErrNotFound)

		w := doJSON(r, http.MethodGet, "/api/customers/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "customer not found")
	})

	t.Run("found", func(t *testing.T) {
		r, repo := newTestRouter(t)
		id := uuid.New()
		repo.EXPECT().FindCustomerByID(gomock.Any(), id).
			Return(&models.Customer{ID: id, Name: "Maria", CPF: "12345678901", TotalPoints: 42}, nil)

		w := doJSON(r, http.MethodGet, "/api/customers/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var customer models.Customer
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customer))
		assert.Equal(t, 42, customer.TotalPoints)
	})
}

func TestGetTransactions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r, repo := newTestRouter(t)
		repo.EXPECT().ListTransactions(gomock.Any(), models.TransactionFilter{Page: 1, Limit: 20}).
			Return([]models.Transaction{{ID: uuid.New(), Type: models.TransactionTypeCredit, Points: 5}}, int64(41), nil)

		w := doJSON(r, http.MethodGet, "/api/transactions", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var page models.TransactionPage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, int64(41), page.Total)
		assert.Equal(t, 3, page.TotalPages)
		assert.Len(t, page.Transactions, 1)
	})

	t.Run("invalid filter", func(t *testing.T) {
		r, _ := newTestRouter(t)

		w := doJSON(r, http.MethodGet, "/api/transactions?type=REFUND", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "type: must be one of CREDIT, DEBIT")
	})
}

func intPtr(n int) *int { return &n }

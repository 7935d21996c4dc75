package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/repository"
	invoicesvc "invoice-dashboard-backend/internal/services/invoices"
	"invoice-dashboard-backend/internal/validation"
)

type stubStore struct {
	createErr error
	created   int
	deleted   []uuid.UUID
}

func (s *stubStore) Create(ctx context.Context, rec *validation.NormalizedInvoice) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created++
	return nil
}

func (s *stubStore) Update(ctx context.Context, id uuid.UUID, rec *validation.NormalizedInvoice) error {
	return nil
}

func (s *stubStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func newTestRouter(h *InvoiceHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/invoices/:id", h.Get)
	r.POST("/api/invoices", h.Create)
	r.PUT("/api/invoices/:id", h.Update)
	r.DELETE("/api/invoices/:id", h.Delete)
	return r
}

func newMockRepo(t *testing.T) (*repository.InvoiceRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return repository.NewInvoiceRepository(gormDB), mock, mockDB
}

func performJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInvoiceHandler_Create(t *testing.T) {
	t.Run("valid form persists and returns the redirect", func(t *testing.T) {
		store := &stubStore{}
		service := invoicesvc.NewService(store, cache.NewMemoryViewCache(), zap.NewNop())
		r := newTestRouter(NewInvoiceHandler(service, nil))

		w := performJSON(r, http.MethodPost, "/api/invoices", gin.H{
			"customer_id": uuid.NewString(),
			"amount":      "50",
			"status":      "pending",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, store.created)

		var res invoicesvc.MutationResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, invoicesvc.InvoicesViewPath, res.Redirect)
	})

	t.Run("validation failure maps to 422 with field errors", func(t *testing.T) {
		store := &stubStore{}
		service := invoicesvc.NewService(store, cache.NewMemoryViewCache(), zap.NewNop())
		r := newTestRouter(NewInvoiceHandler(service, nil))

		w := performJSON(r, http.MethodPost, "/api/invoices", gin.H{
			"customer_id": "",
			"amount":      "50",
			"status":      "pending",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Zero(t, store.created)

		var res invoicesvc.MutationResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Contains(t, res.Errors, "customerId")
		assert.NotContains(t, res.Errors, "amount")
		assert.Equal(t, "Missing Fields. Failed to Create Invoice.", res.Message)
	})

	t.Run("malformed payload maps to 400", func(t *testing.T) {
		service := invoicesvc.NewService(&stubStore{}, cache.NewMemoryViewCache(), zap.NewNop())
		r := newTestRouter(NewInvoiceHandler(service, nil))

		req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestInvoiceHandler_Delete(t *testing.T) {
	t.Run("deletes and reports success", func(t *testing.T) {
		store := &stubStore{}
		views := cache.NewMemoryViewCache()
		service := invoicesvc.NewService(store, views, zap.NewNop())
		r := newTestRouter(NewInvoiceHandler(service, nil))

		id := uuid.New()
		w := performJSON(r, http.MethodDelete, "/api/invoices/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []uuid.UUID{id}, store.deleted)
		assert.True(t, views.Stale(invoicesvc.InvoicesViewPath))
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		service := invoicesvc.NewService(&stubStore{}, cache.NewMemoryViewCache(), zap.NewNop())
		r := newTestRouter(NewInvoiceHandler(service, nil))

		w := performJSON(r, http.MethodDelete, "/api/invoices/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestInvoiceHandler_Get(t *testing.T) {
	t.Run("missing invoice maps to 404", func(t *testing.T) {
		repo, mock, mockDB := newMockRepo(t)
		defer mockDB.Close()

		service := invoicesvc.NewService(&stubStore{}, cache.NewMemoryViewCache(), zap.NewNop())
		r := newTestRouter(NewInvoiceHandler(service, repo))

		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "invoices"`).
			WillReturnError(gorm.ErrRecordNotFound)

		w := performJSON(r, http.MethodGet, "/api/invoices/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schnuffelll/shop-backend/pkg/e"
)

func TestToHTTPResponse_ValidationError(t *testing.T) {
	code, msg := ToHTTPResponse(e.Validation("email", "Email tidak valid"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Email tidak valid", msg)
}

func TestToHTTPResponse_StockError(t *testing.T) {
	err := e.Wrap("OrderUseCase.CreateOrder", e.InsufficientStock("Netflix Premium", "1 Bulan"))

	code, msg := ToHTTPResponse(err)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Stok Netflix Premium (1 Bulan) tidak mencukupi", msg)
}

func TestToHTTPResponse_WrappedSentinels(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{e.Wrap("op", e.ErrEmptyCart), http.StatusBadRequest, "Keranjang kosong"},
		{e.Wrap("op", e.ErrCategoryNotEmpty), http.StatusBadRequest, "Kategori masih memiliki produk"},
		{e.Wrap("op", e.ErrInvalidCredentials), http.StatusUnauthorized, "Email atau password salah"},
		{e.Wrap("op", e.ErrTokenMissing), http.StatusUnauthorized, "Token tidak ditemukan"},
		{e.Wrap("op", e.ErrAdminOnly), http.StatusForbidden, "Akses ditolak. Admin only."},
		{e.Wrap("op", e.ErrProductNotFound), http.StatusNotFound, "Produk tidak ditemukan"},
		{e.Wrap("op", e.Wrap("inner", e.ErrOrderNotFound)), http.StatusNotFound, "Pesanan tidak ditemukan"},
	}

	for _, tt := range tests {
		code, msg := ToHTTPResponse(tt.err)
		assert.Equal(t, tt.wantCode, code, tt.wantMsg)
		assert.Equal(t, tt.wantMsg, msg)
	}
}

func TestToHTTPResponse_UnknownErrorHidesDetails(t *testing.T) {
	code, msg := ToHTTPResponse(fmt.Errorf("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Terjadi kesalahan pada server", msg)
}

func TestParsePagination_Defaults(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)

	page, limit := parsePagination(r, 12, 100)

	assert.Equal(t, 1, page)
	assert.Equal(t, 12, limit)
}

func TestParsePagination_FromQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/products?page=3&limit=24", nil)

	page, limit := parsePagination(r, 12, 100)

	assert.Equal(t, 3, page)
	assert.Equal(t, 24, limit)
}

func TestParsePagination_ClampsInvalidValues(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/products?page=-1&limit=9999", nil)

	page, limit := parsePagination(r, 12, 100)

	assert.Equal(t, 1, page)
	assert.Equal(t, 100, limit)
}

func TestWriteError_Body(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, e.Wrap("op", e.ErrProductNotFound))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":404,"message":"Produk tidak ditemukan"}`, w.Body.String())
}

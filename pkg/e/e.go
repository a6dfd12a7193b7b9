package e

import (
	"errors"
	"fmt"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// Внутренняя ошибка условного списания остатка
	ErrStockConflict = fmt.Errorf("stock conflict")

	// 400 Bad Request — сообщения для пользователя (по-индонезийски,
	// как в клиентском приложении магазина)
	ErrEmptyCart          = fmt.Errorf("Keranjang kosong")
	ErrProductUnavailable = fmt.Errorf("Beberapa produk tidak tersedia")
	ErrSlugTaken          = fmt.Errorf("Slug sudah digunakan")
	ErrEmailTaken         = fmt.Errorf("Email sudah terdaftar")
	ErrCouponCodeTaken    = fmt.Errorf("Kode kupon sudah digunakan")
	ErrInvalidCouponType  = fmt.Errorf("Tipe kupon tidak valid")
	ErrInvalidCouponValue = fmt.Errorf("Nilai kupon tidak valid")
	ErrInvalidStatus      = fmt.Errorf("Status pesanan tidak valid")
	ErrCategoryNotEmpty   = fmt.Errorf("Kategori masih memiliki produk")
	ErrInvalidStock       = fmt.Errorf("Stok harus berupa angka positif")
	ErrNoFile             = fmt.Errorf("File tidak ditemukan")
	ErrTooManyFiles       = fmt.Errorf("Maksimal 10 file sekaligus")
	ErrFileTooLarge       = fmt.Errorf("Ukuran file maksimal 5MB")
	ErrUnsupportedMedia   = fmt.Errorf("Hanya file gambar yang diperbolehkan (jpeg, jpg, png, gif, webp)")

	// 401 Unauthorized
	ErrInvalidCredentials = fmt.Errorf("Email atau password salah")
	ErrAccountDisabled    = fmt.Errorf("Akun dinonaktifkan")
	ErrTokenMissing       = fmt.Errorf("Token tidak ditemukan")
	ErrTokenInvalid       = fmt.Errorf("Token tidak valid atau expired")

	// 403 Forbidden
	ErrAdminOnly = fmt.Errorf("Akses ditolak. Admin only.")

	// 404 Not Found
	ErrProductNotFound  = fmt.Errorf("Produk tidak ditemukan")
	ErrCategoryNotFound = fmt.Errorf("Kategori tidak ditemukan")
	ErrOrderNotFound    = fmt.Errorf("Pesanan tidak ditemukan")
	ErrCouponNotFound   = fmt.Errorf("Kupon tidak ditemukan")
	ErrUserNotFound     = fmt.Errorf("User tidak ditemukan")
	ErrVariantNotFound  = fmt.Errorf("Varian tidak ditemukan")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("Terjadi kesalahan pada server")
)

// ValidationError — ошибка валидации одного поля запроса.
// Клиенту уходит сообщение первого непрошедшего поля.
type ValidationError struct {
	Field   string
	Message string
}

func (v *ValidationError) Error() string {
	return v.Message
}

// Validation создаёт ошибку валидации поля.
func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StockError — нехватка остатка по конкретному варианту товара.
type StockError struct {
	ProductName string
	VariantName string
}

func (s *StockError) Error() string {
	return fmt.Sprintf("Stok %s (%s) tidak mencukupi", s.ProductName, s.VariantName)
}

// InsufficientStock создаёт ошибку нехватки остатка.
func InsufficientStock(productName, variantName string) error {
	return &StockError{ProductName: productName, VariantName: variantName}
}

// VariantError — у товара нет варианта, доступного для покупки.
type VariantError struct {
	ProductName string
}

func (v *VariantError) Error() string {
	return fmt.Sprintf("Varian produk %s tidak tersedia", v.ProductName)
}

// NoVariant создаёт ошибку отсутствия варианта у товара.
func NoVariant(productName string) error {
	return &VariantError{ProductName: productName}
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// UserMessage возвращает текст ошибки, пригодный для показа пользователю,
// и признак того, что такой текст найден.
func UserMessage(err error) (string, bool) {
	var (
		vErr  *ValidationError
		sErr  *StockError
		varEr *VariantError
	)

	switch {
	case errors.As(err, &vErr):
		return vErr.Error(), true
	case errors.As(err, &sErr):
		return sErr.Error(), true
	case errors.As(err, &varEr):
		return varEr.Error(), true
	}

	return "", false
}

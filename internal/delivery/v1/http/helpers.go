package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/schnuffelll/shop-backend/internal/usecase"
	"github.com/schnuffelll/shop-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse переводит ошибку сценария в HTTP-статус и сообщение
// для пользователя. Неизвестные ошибки схлопываются в 500 без деталей.
func ToHTTPResponse(err error) (int, string) {
	if msg, ok := e.UserMessage(err); ok {
		return http.StatusBadRequest, msg
	}

	switch {
	case errors.Is(err, e.ErrEmptyCart),
		errors.Is(err, e.ErrProductUnavailable),
		errors.Is(err, e.ErrSlugTaken),
		errors.Is(err, e.ErrEmailTaken),
		errors.Is(err, e.ErrCouponCodeTaken),
		errors.Is(err, e.ErrInvalidCouponType),
		errors.Is(err, e.ErrInvalidCouponValue),
		errors.Is(err, e.ErrInvalidStatus),
		errors.Is(err, e.ErrCategoryNotEmpty),
		errors.Is(err, e.ErrInvalidStock),
		errors.Is(err, e.ErrNoFile),
		errors.Is(err, e.ErrTooManyFiles),
		errors.Is(err, e.ErrFileTooLarge),
		errors.Is(err, e.ErrUnsupportedMedia):
		return http.StatusBadRequest, userText(err)

	case errors.Is(err, e.ErrInvalidCredentials),
		errors.Is(err, e.ErrAccountDisabled),
		errors.Is(err, e.ErrTokenMissing),
		errors.Is(err, e.ErrTokenInvalid):
		return http.StatusUnauthorized, userText(err)

	case errors.Is(err, e.ErrAdminOnly):
		return http.StatusForbidden, userText(err)

	case errors.Is(err, e.ErrProductNotFound),
		errors.Is(err, e.ErrCategoryNotFound),
		errors.Is(err, e.ErrOrderNotFound),
		errors.Is(err, e.ErrCouponNotFound),
		errors.Is(err, e.ErrUserNotFound),
		errors.Is(err, e.ErrVariantNotFound):
		return http.StatusNotFound, userText(err)

	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

// userText достаёт текст sentinel-ошибки из цепочки обёрток.
func userText(err error) string {
	for unwrapped := err; unwrapped != nil; unwrapped = errors.Unwrap(unwrapped) {
		err = unwrapped
	}

	return err.Error()
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return e.Wrap(whereami.WhereAmI(), e.Validation("body", "Request body tidak valid"))
	}

	return nil
}

// parsePagination читает page и limit из query-параметров.
// Значения вне диапазона приводятся к разумным.
func parsePagination(r *http.Request, defaultLimit, maxLimit int) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrNoFile)
	}
	return r.ParseMultipartForm(maxMemory)
}

func parseFiles(files []*multipart.FileHeader, maxFiles int, maxFileSize int64) ([]usecase.UploadFile, error) {
	if len(files) == 0 {
		return nil, e.ErrNoFile
	}
	if len(files) > maxFiles {
		return nil, e.ErrTooManyFiles
	}

	result := make([]usecase.UploadFile, 0, len(files))
	for _, fh := range files {
		data, mimeType, err := readFile(fh, maxFileSize)
		if err != nil {
			return nil, err
		}

		result = append(result, usecase.UploadFile{
			Data:     data,
			MimeType: mimeType,
			Size:     int64(len(data)),
			Name:     fh.Filename,
		})
	}

	return result, nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}

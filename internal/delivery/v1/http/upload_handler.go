package http

import (
	"net/http"

	"github.com/schnuffelll/shop-backend/internal/cfg"
	"github.com/schnuffelll/shop-backend/internal/usecase"
	"github.com/schnuffelll/shop-backend/pkg/e"
	"github.com/schnuffelll/shop-backend/pkg/logger"
)

type UploadHandler struct {
	uploadUsecase usecase.UploadUC
	cfg           *cfg.UploadCfg
	logger        logger.Logger
}

func NewUploadHandler(uploadUsecase usecase.UploadUC, cfg *cfg.UploadCfg, logger logger.Logger) *UploadHandler {
	return &UploadHandler{uploadUsecase: uploadUsecase, cfg: cfg, logger: logger}
}

// uploadSingle
//
//	@Summary	Загрузка одного изображения
//	@Tags		admin
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Param		image	formData	file	true	"Изображение"
//	@Success	201		{object}	UploadResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/uploads/single [post]
func (u *UploadHandler) uploadSingle(w http.ResponseWriter, r *http.Request) {
	if err := ensureMultipartForm(r, u.cfg.MaxFileSize); err != nil {
		WriteError(w, err)
		return
	}

	headers := r.MultipartForm.File["image"]
	files, err := parseFiles(headers, 1, u.cfg.MaxFileSize)
	if err != nil {
		WriteError(w, err)
		return
	}

	uploads, err := u.uploadUsecase.UploadFiles(r.Context(), files)
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}
	if len(uploads) == 0 {
		WriteError(w, e.ErrInternalServerError)
		return
	}

	WriteSuccess(w, http.StatusCreated, newUploadResponse(&uploads[0]))
}

// uploadMultiple
//
//	@Summary	Загрузка нескольких изображений
//	@Tags		admin
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Param		images	formData	file	true	"Изображения"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	400		{object}	ErrorResponse
//	@Router		/uploads/multiple [post]
func (u *UploadHandler) uploadMultiple(w http.ResponseWriter, r *http.Request) {
	if err := ensureMultipartForm(r, u.cfg.MaxFileSize*int64(u.cfg.MaxFiles)); err != nil {
		WriteError(w, err)
		return
	}

	headers := r.MultipartForm.File["images"]
	files, err := parseFiles(headers, u.cfg.MaxFiles, u.cfg.MaxFileSize)
	if err != nil {
		WriteError(w, err)
		return
	}

	uploads, err := u.uploadUsecase.UploadFiles(r.Context(), files)
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	responses := make([]UploadResponse, 0, len(uploads))
	for i := range uploads {
		responses = append(responses, newUploadResponse(&uploads[i]))
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{"uploads": responses})
}

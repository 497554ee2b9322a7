package files

//go:generate mockgen -source=files.go -destination=files_mock.go -package=files

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/internal/dto"
	"github.com/GlebRadaev/furniture-crm/internal/handlers/httperr"
	"github.com/GlebRadaev/furniture-crm/pkg/utils"
)

const (
	formField = "file"
	// room for multipart headers on top of the file itself
	formOverhead = 1 << 20
)

type Service interface {
	Upload(ctx context.Context, orderID int64, name string, size int64, r io.Reader) (*domain.Attachment, error)
	List(ctx context.Context, orderID int64) ([]domain.Attachment, error)
	MaxSize() int64
}

type FileHandler struct {
	fileService Service
}

func New(fileService Service) *FileHandler {
	return &FileHandler{
		fileService: fileService,
	}
}

// UploadFile godoc
//
//	@Summary		Attach a file to an order
//	@Description	Upload a png, jpg, jpeg or pdf. A file with the same name is replaced.
//	@Tags			Files
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int		true	"Order ID"
//	@Param			file	formData	file	true	"File to attach"
//	@Success		201		{object}	dto.AttachmentResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing file"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		413		{object}	utils.Response	"File too large"
//	@Failure		415		{object}	utils.Response	"Unsupported file type"
//	@Router			/api/orders/{id}/files [post]
func (h *FileHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	orderID, ok := utils.IDParam(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.fileService.MaxSize()+formOverhead)
	file, header, err := r.FormFile(formField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httperr.Respond(w, domain.ErrFileTooLarge)
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			zap.L().Warn("can't close uploaded file", zap.Error(err))
		}
	}()

	attachment, err := h.fileService.Upload(r.Context(), orderID, header.Filename, header.Size, file)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.AttachmentResponseDTO{
		Name:      attachment.Name,
		URL:       attachment.URL,
		Size:      attachment.Size,
		UpdatedAt: attachment.UpdatedAt,
	})
}

// ListFiles godoc
//
//	@Summary		List order attachments
//	@Tags			Files
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Order ID"
//	@Success		200	{array}		dto.AttachmentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid order id"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Router			/api/orders/{id}/files [get]
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	orderID, ok := utils.IDParam(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	files, err := h.fileService.List(r.Context(), orderID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAttachmentsResponse(files))
}

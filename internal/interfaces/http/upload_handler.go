package http

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/wattwerk/wattwerk-api/internal/application/dto"
)

// Uploader is the storage backend surface the API needs. Both the local
// directory and the S3 backend satisfy it.
type Uploader interface {
	Save(r io.Reader, filename string) (string, error)
	Delete(url string) error
}

// FileOpener is implemented by backends that can serve stored files back
// over HTTP (the local backend; S3 URLs are public and fetched directly).
type FileOpener interface {
	Open(name string) (io.ReadCloser, error)
}

// UploadHandler file upload endpoints (logos, site photos).
type UploadHandler struct {
	storage Uploader
}

// NewUploadHandler builds the handler.
func NewUploadHandler(storage Uploader) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Upload POST /api/upload (multipart field "file")
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "multipart field 'file' required"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()
	url, err := h.storage.Save(f, fileHeader.Filename)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}

// Serve GET /api/upload/files/:name
func (h *UploadHandler) Serve(c *fiber.Ctx) error {
	opener, ok := h.storage.(FileOpener)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "files are served from object storage"})
	}
	f, err := opener.Open(c.Params("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStream(f)
}

// Delete DELETE /api/upload (body: {"url": "..."}).
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	var in struct {
		URL string `json:"url" validate:"required"`
	}
	if err := parseBody(c, &in); err != nil {
		return err
	}
	if err := h.storage.Delete(in.URL); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package admin

import (
	"fmt"
	"io"
	"net/http"

	"github.com/tmaxstore/catalog-admin/app/services"
)

// maxUploadBytes caps a single image upload at 8 MiB.
const maxUploadBytes = 8 << 20

// UploadImage accepts a multipart "file" part and returns the public URL
// to store on the entity. Nothing is persisted when the transfer fails.
func (h *AdminHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.renderError(w, "UploadImage", services.NewValidationError("file", "invalid multipart payload"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.renderError(w, "UploadImage", services.NewValidationError("file", "missing file part"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.renderError(w, "UploadImage", fmt.Errorf("%w: %v", services.ErrUpload, err))
		return
	}

	url, err := h.uploader.Upload(r.Context(), data, header.Filename)
	if err != nil {
		h.renderError(w, "UploadImage", err)
		return
	}
	h.render.JSON(w, http.StatusCreated, map[string]string{"public_url": url})
}

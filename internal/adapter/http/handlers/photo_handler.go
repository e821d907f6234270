package handlers

import (
	"io"
	"net/http"
	"strings"

	response "offertehub/internal/adapter/http/dto/response"
	"offertehub/internal/usecase/interfaces"
	"offertehub/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// maxPhotoBytes caps uploads at 10MB.
const maxPhotoBytes = 10 << 20

// PhotoHandler handles customer photo uploads from the widget. The returned
// URL is what the lead submission later references in its photos list.

type PhotoHandler struct {
	storage interfaces.IPhotoStorage
}

func NewPhotoHandler(storage interfaces.IPhotoStorage) *PhotoHandler {
	return &PhotoHandler{storage: storage}
}

// UploadPhoto godoc
// @Summary      Upload a project photo
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Param        photo  formData  file  true  "Image file, max 10MB"
// @Success      201    {object}  response.PhotoUploadResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Failure      503    {object}  pkg.HTTPError
// @Router       /v1/photos [post]
func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	if h.storage == nil {
		appErr := pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Photo storage is not configured", http.StatusServiceUnavailable)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PHOTO", "Missing photo file", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if fileHeader.Size > maxPhotoBytes {
		appErr := pkg.NewDomainErrorSimple("PHOTO_TOO_LARGE", "Photo exceeds the 10MB limit", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		appErr := pkg.NewDomainErrorSimple("UNSUPPORTED_CONTENT_TYPE", "Only image uploads are accepted", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(data) > maxPhotoBytes {
		appErr := pkg.NewDomainErrorSimple("PHOTO_TOO_LARGE", "Photo exceeds the 10MB limit", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	url, err := h.storage.Upload(c.Request.Context(), data, contentType, fileHeader.Filename)
	if err != nil {
		log.Warnf("[photo][handler] upload failed filename=%s err=%v", fileHeader.Filename, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.PhotoUploadResponse{URL: url})
}

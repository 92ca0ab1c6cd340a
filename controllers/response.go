package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourist-safety/apperrors"
	"tourist-safety/models"
)

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondError writes the error envelope for err. Internal errors are logged
// with their cause and reported with a generic message.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	kind := apperrors.KindOf(err)
	status := apperrors.HTTPStatus(kind)

	resp := models.ErrorResponse{
		Success: false,
		Message: "Internal server error",
		Error:   string(kind),
	}

	var appErr *apperrors.Error
	if status < http.StatusInternalServerError && errors.As(err, &appErr) {
		resp.Message = appErr.Message
		resp.Field = appErr.Field
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		_ = c.Error(err)
	}

	c.JSON(status, resp)
}

func invalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid request",
		Error:   string(apperrors.KindValidation),
	})
	_ = c.Error(err)
}

// intParam parses a positive integer from the route parameter name.
func intParam(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, apperrors.Validation(name, name+" must be a positive integer")
	}
	return id, nil
}

// intQuery parses a required positive integer from the query string.
func intQuery(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, apperrors.Validation(name, name+" is required")
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperrors.Validation(name, name+" must be a positive integer")
	}
	return id, nil
}

// formUpload opens the multipart file field. A missing field returns a nil
// upload and no error. The caller must close the returned file.
func formUpload(c *gin.Context, field string) (*models.Upload, multipart.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, nil
		}
		return nil, nil, apperrors.Validation(field, "Could not read uploaded file")
	}
	file, err := header.Open()
	if err != nil {
		return nil, nil, apperrors.Internal("Failed to open uploaded file", err)
	}
	return &models.Upload{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	}, file, nil
}

func closeUpload(file multipart.File) {
	if file != nil {
		file.Close()
	}
}

// absoluteURL resolves a store-relative path such as /uploads/x.png against
// baseURL, or against the request host when baseURL is empty.
func absoluteURL(c *gin.Context, baseURL, path string) string {
	if path == "" || !strings.HasPrefix(path, "/") {
		return path
	}
	if baseURL != "" {
		return strings.TrimRight(baseURL, "/") + path
	}
	scheme := "http"
	if c.Request.TLS != nil || strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + path
}

func withPhotoURL(c *gin.Context, baseURL string, profile *models.TouristProfile) *models.TouristProfile {
	if profile == nil {
		return nil
	}
	out := *profile
	out.PhotoURL = absoluteURL(c, baseURL, profile.PhotoURL)
	return &out
}

package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"tourist-safety/apperrors"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func ValidateImage(filename string, size, maxSize int64) error {
	if size <= 0 {
		return apperrors.Validation("profile_photo", "Profile photo is empty")
	}
	if maxSize > 0 && size > maxSize {
		return apperrors.Validation("profile_photo", fmt.Sprintf("File too large (max %d bytes)", maxSize))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExtensions[ext] {
		return apperrors.Validation("profile_photo", "Invalid file type. Only jpg, jpeg, png, gif, webp allowed")
	}
	return nil
}

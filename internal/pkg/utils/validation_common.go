package utils

import (
	"errors"
	"fmt"
	"mentor-service/internal/pkg/constvars"
	"strconv"
	"strings"
)

// ValidateImageUpload checks that an upload declares an image content type
// and fits within maxSizeInMegabytes.
func ValidateImageUpload(contentType string, size, maxSizeInMegabytes int64) error {
	if !strings.HasPrefix(strings.ToLower(contentType), constvars.MIMEImagePrefix) {
		return fmt.Errorf(constvars.ErrDevImageNotAnImage, contentType)
	}

	if maxSizeInMegabytes > 0 && size > maxSizeInMegabytes*1024*1024 {
		return fmt.Errorf(constvars.ErrDevImageTooLarge, maxSizeInMegabytes)
	}
	return nil
}

// ParseIndexParam parses a non-negative slot index taken from the URL path.
func ParseIndexParam(param string) (int, error) {
	if param == "" {
		return 0, errors.New("parameter is missing from url path")
	}

	index, err := strconv.Atoi(param)
	if err != nil {
		return 0, err
	}
	if index < 0 {
		return 0, fmt.Errorf("index %d must not be negative", index)
	}
	return index, nil
}

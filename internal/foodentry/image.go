package foodentry

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// MaxImageBytes caps the photo size sent to the backend
const MaxImageBytes = 10 << 20

// EncodeImage reads an image file and returns it as a data URL.
// The MIME type is sniffed from content; non-image files are rejected.
func EncodeImage(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("image path is a directory: %s", path)
	}
	if info.Size() > MaxImageBytes {
		return "", fmt.Errorf("image is too large: %d bytes (max %d)", info.Size(), MaxImageBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("file is not an image: %s (%s)", path, mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Package media provides image processing utilities
package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ComboLab/combolab-go/pkg/config"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// ImageProcessor handles notation element icon uploads.
type ImageProcessor struct {
	basePath string
}

// NewImageProcessor creates a new ImageProcessor instance
func NewImageProcessor(basePath string) *ImageProcessor {
	return &ImageProcessor{
		basePath: basePath,
	}
}

var base64Prefix = regexp.MustCompile(`^data:image/[a-z+.-]+;base64,`)

// ProcessElementIcon handles a base64 icon upload for a notation element.
// SVG icons are stored as-is; raster icons are resized to fit the configured
// max edge and re-encoded as WebP. Returns the relative URL path.
func (p *ImageProcessor) ProcessElementIcon(data, gameID, elementID string) (string, error) {
	if data == "" {
		return "", fmt.Errorf("empty base64 data")
	}

	ext := extractExtension(data)
	if ext == "" {
		return "", fmt.Errorf("unsupported image format")
	}

	targetDir := filepath.Join(p.basePath, "icons", gameID)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	if ext == "svg" {
		filename := fmt.Sprintf("%s.svg", elementID)
		if err := writeSVG(data, filepath.Join(targetDir, filename)); err != nil {
			return "", err
		}
		return iconURL(gameID, filename), nil
	}

	filename := fmt.Sprintf("%s.webp", elementID)
	if err := writeWebPIcon(data, filepath.Join(targetDir, filename)); err != nil {
		return "", err
	}
	return iconURL(gameID, filename), nil
}

// DeleteElementIcon removes any stored icon file for an element.
func (p *ImageProcessor) DeleteElementIcon(gameID, elementID string) {
	targetDir := filepath.Join(p.basePath, "icons", gameID)
	for _, ext := range []string{"svg", "webp"} {
		os.Remove(filepath.Join(targetDir, fmt.Sprintf("%s.%s", elementID, ext)))
	}
}

func writeSVG(data, fullPath string) error {
	if !strings.HasPrefix(data, "data:image/svg+xml;base64,") {
		return fmt.Errorf("invalid SVG base64 format")
	}

	decoded, err := base64.StdEncoding.DecodeString(base64Prefix.ReplaceAllString(data, ""))
	if err != nil {
		return fmt.Errorf("failed to decode base64: %w", err)
	}

	if err := os.WriteFile(fullPath, decoded, 0644); err != nil {
		return fmt.Errorf("failed to write SVG file: %w", err)
	}
	return nil
}

func writeWebPIcon(data, fullPath string) error {
	decoded, err := base64.StdEncoding.DecodeString(base64Prefix.ReplaceAllString(data, ""))
	if err != nil {
		return fmt.Errorf("failed to decode base64: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(decoded))
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	maxEdge := config.MediaIconMaxEdge
	bounds := img.Bounds()
	if bounds.Dx() > maxEdge || bounds.Dy() > maxEdge {
		img = imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)
	}

	out, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create icon file: %w", err)
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Quality: 85}); err != nil {
		return fmt.Errorf("failed to encode webp: %w", err)
	}
	return nil
}

func iconURL(gameID, filename string) string {
	return strings.ReplaceAll(filepath.Join("/media", "icons", gameID, filename), "\\", "/")
}

// extractExtension auto-detects file extension from MIME type
func extractExtension(data string) string {
	if strings.Contains(data, "data:image/svg+xml") {
		return "svg"
	} else if strings.Contains(data, "data:image/png") {
		return "png"
	} else if strings.Contains(data, "data:image/jpeg") || strings.Contains(data, "data:image/jpg") {
		return "jpg"
	} else if strings.Contains(data, "data:image/webp") {
		return "webp"
	}
	return ""
}

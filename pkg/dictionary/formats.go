package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat represents the word list encodings the loader accepts
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // newline-delimited plain text
)

// FormatInfo contains metadata about a word list file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64 // Minimum expected file size in bytes
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Word List",
		Extensions:  []string{".txt", ".lst", ".dic", ""},
		MinSize:     1,
	},
}

// ValidateFileFormat checks if a file matches the expected format
func ValidateFileFormat(filename string, expectedFormat FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory, not a word list", filename)
	}

	formatInfo, exists := GetFormatInfo(expectedFormat)
	if !exists {
		return fmt.Errorf("unknown format: %v", expectedFormat)
	}

	if fileInfo.Size() < formatInfo.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fileInfo.Size(), formatInfo.Description, formatInfo.MinSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, validExtension := range formatInfo.Extensions {
		if ext == validExtension {
			log.Debugf("Word list %s validated (%d bytes)", filename, fileInfo.Size())
			return nil
		}
	}
	return fmt.Errorf("file %s has invalid extension %s for format %s (expected: %v)",
		filename, ext, formatInfo.Description, formatInfo.Extensions)
}

// DetectFileFormat attempts to detect the format of a file
func DetectFileFormat(filename string) (FileFormat, error) {
	if err := ValidateFileFormat(filename, FormatText); err != nil {
		return FormatUnknown, fmt.Errorf("unable to detect format for file %s: %w", filename, err)
	}
	return FormatText, nil
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}

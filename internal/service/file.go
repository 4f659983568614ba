package service

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
)

const maxFilenameLen = 255

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// extractedFile is an upload reduced to what gets stored.
type extractedFile struct {
	Text        string
	Ext         string
	ContentType string
	Name        string
}

// extractText turns an uploaded file into submission text. Plain text is
// stored as is; PDFs get a placeholder body.
func extractText(filename string, content []byte, maxBytes int64) (*extractedFile, error) {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return nil, fmt.Errorf("file name is required: %w", errdefs.ErrValidation)
	}
	if len(name) > maxFilenameLen {
		// Keep the tail so the extension survives, starting on a rune boundary.
		name = name[len(name)-maxFilenameLen:]
		for len(name) > 0 && !utf8.RuneStart(name[0]) {
			name = name[1:]
		}
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("file is empty: %w", errdefs.ErrValidation)
	}
	if maxBytes > 0 && int64(len(content)) > maxBytes {
		return nil, fmt.Errorf("file exceeds %d bytes: %w", maxBytes, errdefs.ErrFileTooLarge)
	}

	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".txt":
		content = bytes.TrimPrefix(content, utf8BOM)
		if !utf8.Valid(content) {
			content = bytes.ToValidUTF8(content, []byte("\uFFFD"))
		}
		text := strings.TrimSpace(string(content))
		if text == "" {
			return nil, fmt.Errorf("file has no text: %w", errdefs.ErrValidation)
		}
		return &extractedFile{Text: text, Ext: ext, ContentType: "text/plain; charset=utf-8", Name: name}, nil
	case ".pdf":
		return &extractedFile{Text: domain.PDFPlaceholderText, Ext: ext, ContentType: "application/pdf", Name: name}, nil
	default:
		return nil, fmt.Errorf("only .txt and .pdf files are accepted: %w", errdefs.ErrUnsupportedFile)
	}
}

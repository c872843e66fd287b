// Package upload stores multipart attachments under a configurable directory
// and serves them back through the /uploads static route.
package upload

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// MaxAttachmentSize is the per-file upload limit (5 MB).
const MaxAttachmentSize = 5 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".xls":  true,
	".xlsx": true,
}

// Store writes uploaded files into a single base directory with
// collision-free random names.
type Store struct {
	basePath string
}

func NewStore(basePath string) *Store {
	return &Store{basePath: basePath}
}

// Save validates and persists one uploaded file. It returns the public URL
// path ("/uploads/{name}") recorded on the owning record.
func (s *Store) Save(c *gin.Context, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxAttachmentSize {
		return "", fmt.Errorf("upload: file exceeds %d bytes", MaxAttachmentSize)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("upload: file type %q not allowed", ext)
	}

	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return "", fmt.Errorf("upload: create dir: %w", err)
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("upload: random name: %w", err)
	}
	name := hex.EncodeToString(buf) + ext

	if err := c.SaveUploadedFile(fh, filepath.Join(s.basePath, name)); err != nil {
		return "", fmt.Errorf("upload: save file: %w", err)
	}
	return "/uploads/" + name, nil
}

// BasePath returns the directory files are written to, for the static route.
func (s *Store) BasePath() string {
	return s.basePath
}

package helper

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"tunedu_backend/internals/configs"
)

const MaxUploadSize = 50 * 1024 * 1024 // 50MB

var (
	ErrFileTooLarge = errors.New("file exceeds the 50MB limit")
	ErrNotPDF       = errors.New("only PDF files are allowed")
)

// SavePDFUpload validates a multipart file (size, extension and sniffed
// content type) and writes it under UPLOAD_DIR/<subdir> with a randomized
// filename. Returns the stored filename.
func SavePDFUpload(fh *multipart.FileHeader, subdir string) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		return "", ErrNotPDF
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	head := make([]byte, 3072)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}
	if !mimetype.Detect(head[:n]).Is("application/pdf") {
		return "", ErrNotPDF
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	dir := filepath.Join(configs.UploadDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ".pdf"
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}

// RemoveUpload deletes a previously stored file. Used to roll back an
// upload when a later step of the same request fails.
func RemoveUpload(subdir, name string) {
	if name == "" {
		return
	}
	_ = os.Remove(filepath.Join(configs.UploadDir, subdir, name))
}

package oss

import (
	"context"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/*
BlobService adalah facade upload yang seragam untuk controller.

Gambar (jpg/png/webp) di-recompress ke WebP dulu; file lain (video bukti
kendala dsb.) diunggah apa adanya. Dua-duanya mengembalikan URL publik yang
langsung bisa disimpan di dokumen laporan.
*/

type BlobService interface {
	UploadEvidence(ctx context.Context, fh *multipart.FileHeader) (publicURL string, err error)
}

// --------------------------------------------------
// Implementasi berbasis Aliyun OSS
// --------------------------------------------------

type OSSBlobService struct {
	svc *OSSService
}

// Buat instance dari ENV. prefix opsional (contoh: "bukti/")
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadEvidence(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	if isImageUpload(fh) {
		return b.svc.UploadAsWebP(ctx, fh)
	}
	return b.svc.UploadRaw(ctx, fh)
}

func isImageUpload(fh *multipart.FileHeader) bool {
	if ct := fh.Header.Get("Content-Type"); strings.HasPrefix(ct, "image/") {
		return true
	}
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	// sniff sebagai usaha terakhir
	src, err := fh.Open()
	if err != nil {
		return false
	}
	defer src.Close()
	head := make([]byte, 512)
	n, _ := src.Read(head)
	return strings.HasPrefix(http.DetectContentType(head[:n]), "image/")
}

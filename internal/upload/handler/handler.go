package handler

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/solarbazaar/marketplace-api/internal/upload/storage"
	"go.uber.org/zap"
)

const maxImageWidth = 1200

var imageExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".webp": {},
}

type UploadHandler struct {
	storage     *storage.Storage
	maxPDFBytes int64
	logger      *zap.Logger
}

func NewUploadHandler(st *storage.Storage, maxPDFBytes int64, log *zap.Logger) *UploadHandler {
	return &UploadHandler{storage: st, maxPDFBytes: maxPDFBytes, logger: log}
}

type presignRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

// Presign handles POST /api/upload: returns a short-lived PUT URL the client
// uploads against, plus the public URL the object will have.
func (h *UploadHandler) Presign(c *fiber.Ctx) error {
	if h.storage == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Uploads are not available"})
	}

	var req presignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.FileName == "" || req.FileType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File name and type are required."})
	}

	objectPath := objectKey(req.FileName)
	url, err := h.storage.SignUploadURL(objectPath, req.FileType)
	if err != nil {
		h.logger.Error("presign failed", zap.Error(err), zap.String("object", objectPath))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create upload URL."})
	}

	return c.JSON(fiber.Map{
		"url":       url,
		"publicUrl": h.storage.PublicURL(objectPath),
	})
}

// Direct handles POST /api/upload/direct: multipart upload stored server-side.
// PDFs are size-capped; images are downscaled and re-encoded before storing.
func (h *UploadHandler) Direct(c *fiber.Ctx) error {
	if h.storage == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Uploads are not available"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File is required"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	_, isImage := imageExts[ext]
	if ext != ".pdf" && !isImage {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported file type"})
	}
	if ext == ".pdf" && file.Size > h.maxPDFBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "PDF exceeds the 5 MB limit"})
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error("upload open failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Upload failed"})
	}
	defer src.Close()

	var (
		data        []byte
		contentType string
	)
	if isImage {
		img, err := imaging.Decode(src)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid image"})
		}
		if img.Bounds().Dx() > maxImageWidth {
			img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
		}
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
			h.logger.Error("image encode failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Upload failed"})
		}
		data = buf.Bytes()
		contentType = "image/jpeg"
		ext = ".jpg"
	} else {
		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(src); err != nil {
			h.logger.Error("upload read failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Upload failed"})
		}
		data = buf.Bytes()
		contentType = "application/pdf"
	}

	base := strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))
	objectPath := objectKey(base + ext)
	if err := h.storage.Write(c.Context(), objectPath, contentType, data); err != nil {
		h.logger.Error("upload write failed", zap.Error(err), zap.String("object", objectPath))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Upload failed"})
	}

	return c.JSON(fiber.Map{"url": h.storage.PublicURL(objectPath)})
}

// objectKey prefixes a sanitized file name with a fresh UUID so uploads never
// collide or overwrite.
func objectKey(fileName string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, filepath.Base(fileName))
	return fmt.Sprintf("uploads/%s-%s", uuid.New().String(), clean)
}

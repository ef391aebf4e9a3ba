package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoding
	"io"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/storage"
	"golang.org/x/image/draw"
)

// Proof photos are recompressed to stay within this size.
const maxProofBytes = 150 * 1024

type FileService interface {
	// UploadCheckInPhoto stores a check-in proof photo under
	// attendance/{date}/ and returns the stored path. The photo is
	// re-encoded as JPEG and compressed.
	UploadCheckInPhoto(ctx context.Context, userID string, date time.Time, content io.Reader, filename string) (string, error)

	DeletePhoto(ctx context.Context, path string) error
	PhotoURL(path string) string
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{storage: storage}
}

// UploadCheckInPhoto implements FileService.
func (s *fileServiceImpl) UploadCheckInPhoto(ctx context.Context, userID string, date time.Time, content io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	buffer, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("failed to read photo: %w", err)
	}

	compressed, err := compressPhoto(buffer, maxProofBytes)
	if err != nil {
		return "", fmt.Errorf("failed to compress photo: %w", err)
	}

	// attendance/{date}/{userID}-{uuid}.jpg, always JPEG after compression
	newFilename := fmt.Sprintf("%s-%s.jpg", userID, uuid.New().String())
	path := filepath.Join("attendance", date.Format("2006-01-02"), newFilename)

	storedPath, err := s.storage.Save(ctx, bytes.NewReader(compressed), path)
	if err != nil {
		return "", fmt.Errorf("failed to store check-in photo: %w", err)
	}

	return storedPath, nil
}

// DeletePhoto implements FileService.
func (s *fileServiceImpl) DeletePhoto(ctx context.Context, path string) error {
	return s.storage.Remove(ctx, path)
}

// PhotoURL implements FileService.
func (s *fileServiceImpl) PhotoURL(path string) string {
	return s.storage.PublicURL(path)
}

// compressPhoto re-encodes the image as JPEG under maxSize, first by
// lowering quality, then by downscaling if quality alone is not enough.
func compressPhoto(buffer []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var compressed []byte
	for quality := 85; quality >= 50; quality -= 5 {
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		compressed = buf.Bytes()
		if len(compressed) <= maxSize {
			return compressed, nil
		}
	}

	// Quality reduction was not enough; scale the image down toward the
	// size target.
	bounds := img.Bounds()
	ratio := math.Sqrt(float64(maxSize) / float64(len(compressed)))
	width := int(float64(bounds.Dx()) * ratio)
	height := int(float64(bounds.Dy()) * ratio)
	if width < 600 {
		width = 600
	}
	if height < 400 {
		height = 400
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, dst, &jpeg.Options{Quality: 70}); err != nil {
		return nil, fmt.Errorf("failed to encode resized image: %w", err)
	}

	return buf.Bytes(), nil
}

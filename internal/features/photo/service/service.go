package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"giveaway-wheel-backend/internal/common/errors"
	"giveaway-wheel-backend/internal/common/logger"
	"giveaway-wheel-backend/internal/common/validation"
	"giveaway-wheel-backend/internal/features/photo/models"
	"giveaway-wheel-backend/internal/features/photo/repository"
)

// PublicPathPrefix is where uploaded photos are served from.
const PublicPathPrefix = "/photos/"

// Форматы, которые принимает sendPhoto. SVG и прочие image/* отклоняются.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var (
	fileNamePattern  = regexp.MustCompile(`^[0-9]+-[0-9a-f-]{36}(\.[a-z0-9]{1,5})?$`)
	extensionPattern = regexp.MustCompile(`^\.[a-z0-9]{1,5}$`)
)

type Config struct {
	PublicBaseURL string
	TTL           time.Duration
	MaxSize       int64
}

// Upload is an image received from the dashboard.
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

type PhotoService interface {
	Upload(ctx context.Context, upload Upload) (*models.UploadResponse, error)
	Get(ctx context.Context, name string) (*models.Photo, error)
}

type photoService struct {
	repo repository.PhotoRepository
	cfg  Config
	now  func() time.Time
}

func NewPhotoService(repo repository.PhotoRepository, cfg Config) PhotoService {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = validation.DefaultMaxImageSize
	}
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	return &photoService{
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}
}

// Upload checks the declared and the sniffed type, then stores the image
// under a unique "<unix-ms>-<uuid>.<ext>" name.
func (s *photoService) Upload(ctx context.Context, upload Upload) (*models.UploadResponse, error) {
	size := int64(len(upload.Data))
	if err := validation.ValidateImage(upload.ContentType, size, s.cfg.MaxSize); err != nil {
		return nil, err
	}

	detected := mimetype.Detect(upload.Data)
	contentType := strings.Split(detected.String(), ";")[0]
	if !allowedTypes[contentType] {
		return nil, errors.NewValidationError("photo", "file must be a JPEG, PNG, GIF or WebP image").
			WithDetail("detected_type", contentType)
	}

	ext := detected.Extension()
	if ext == "" {
		if fromName := strings.ToLower(filepath.Ext(upload.FileName)); extensionPattern.MatchString(fromName) {
			ext = fromName
		}
	}

	name := fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), uuid.New().String(), ext)

	photo := &models.Photo{
		Name:        name,
		ContentType: contentType,
		Data:        upload.Data,
	}
	if err := s.repo.Save(ctx, photo, s.cfg.TTL); err != nil {
		return nil, errors.NewStorageError("save photo", err)
	}

	logger.Info().
		Str("file_name", name).
		Int64("size", size).
		Str("type", contentType).
		Msg("Photo uploaded")

	return &models.UploadResponse{
		Success:  true,
		URL:      s.cfg.PublicBaseURL + PublicPathPrefix + name,
		FileName: name,
		Size:     size,
		Type:     contentType,
	}, nil
}

func (s *photoService) Get(ctx context.Context, name string) (*models.Photo, error) {
	if !fileNamePattern.MatchString(name) {
		return nil, errors.NewNotFoundError("photo", name)
	}

	photo, err := s.repo.Get(ctx, name)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NewNotFoundError("photo", name)
	}
	if err != nil {
		return nil, errors.NewStorageError("get photo", err)
	}

	return photo, nil
}

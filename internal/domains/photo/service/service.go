package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Photo=MockPhotoService

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"seastay/config"
	"seastay/infras/otel"
	"seastay/infras/s3"
	"seastay/internal/domains/photo/model"
	"seastay/internal/domains/photo/model/dto"
	"seastay/internal/domains/photo/repository"
	propertyModel "seastay/internal/domains/property/model"
	propertyRepository "seastay/internal/domains/property/repository"
	"seastay/shared"
	"seastay/shared/cache"
	"seastay/shared/constant"
	"seastay/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheListPhotos = "photo:list"
)

type Photo interface {
	Upload(ctx context.Context, propertyID string, req dto.UploadPhotoRequest) (dto.PhotoResponse, error)
	List(ctx context.Context, propertyID string) (dto.GetPhotosResponse, error)
	Delete(ctx context.Context, propertyID, photoID string) error
}

type serviceImpl struct {
	repo         repository.Photo
	propertyRepo propertyRepository.Property
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	s3           s3.S3
}

func New(repo repository.Photo, propertyRepo propertyRepository.Property, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Photo {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		s3:           s3,
	}
}

func (s *serviceImpl) Upload(ctx context.Context, propertyID string, req dto.UploadPhotoRequest) (res dto.PhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureProperty(ctx, propertyID); err != nil {
		return res, err
	}

	file, err := req.Image.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open uploaded file")

		return res, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("failed to read uploaded file")

		return res, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	fileName := uuid.NewString() + filepath.Ext(req.Image.Filename)
	contentType := req.Image.Header.Get(constant.RequestHeaderContentType)

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, model.EntityName, fileName, contentType, fileData)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	photo := req.ToModel(propertyID, url)

	if err = s.repo.Insert(ctx, photo); err != nil {
		log.Error().Err(err).Msg("failed to insert photo")

		return res, fmt.Errorf("failed to insert photo: %w", err)
	}

	res.FromModel(photo)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheListPhotos)
	}()

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, propertyID string) (res dto.GetPhotosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheListPhotos, propertyID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for photos")

		return res, nil
	}

	if err = s.ensureProperty(ctx, propertyID); err != nil {
		return res, err
	}

	photos, err := s.repo.GetAllByProperty(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get photos")

		return res, fmt.Errorf("failed to get photos: %w", err)
	}

	res.FromModels(photos)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save photos to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, propertyID, photoID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(photoID, model.FieldID, model.TableName)

	photo, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get photo")

		return fmt.Errorf("failed to get photo: %w", err)
	}

	if photo.ID == constant.Empty || photo.PropertyID != propertyID {
		return failure.NotFound("photo not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete photo")

		return fmt.Errorf("failed to delete photo: %w", err)
	}

	objectName := s.s3.GetObjectNameFromURL(s.cfg.External.S3.BucketName, photo.URL)

	if delErr := s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, objectName); delErr != nil {
		log.Error().Err(delErr).Str("photoID", photoID).Msg("failed to delete photo object from S3")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheListPhotos)
	}()

	return nil
}

func (s *serviceImpl) ensureProperty(ctx context.Context, propertyID string) error {
	exist, err := s.propertyRepo.Exist(ctx, shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("propertyID", propertyID).Msg("failed to check property existence")

		return fmt.Errorf("failed to check property existence: %w", err)
	}

	if !exist {
		return failure.NotFound("property not found") //nolint:wrapcheck
	}

	return nil
}

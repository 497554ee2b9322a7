package fileservice

//go:generate mockgen -source=fileservice.go -destination=fileservice_mock.go -package=fileservice

import (
	"context"
	"errors"
	"io"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/pkg/filestore"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".pdf":  true,
}

type Store interface {
	Upload(ctx context.Context, objectPath string, r io.Reader) error
	List(ctx context.Context, prefix string) ([]filestore.Object, error)
	PublicURL(objectPath string) string
}

type OrderRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
}

type Service struct {
	store     Store
	orderRepo OrderRepo
	maxSize   int64
}

func New(store Store, orderRepo OrderRepo, maxSize int64) *Service {
	return &Service{
		store:     store,
		orderRepo: orderRepo,
		maxSize:   maxSize,
	}
}

func (s *Service) MaxSize() int64 {
	return s.maxSize
}

// Upload stores a file in the order's folder. A file with the same name is
// replaced.
func (s *Service) Upload(ctx context.Context, orderID int64, name string, size int64, r io.Reader) (*domain.Attachment, error) {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if !allowedExtensions[strings.ToLower(filepath.Ext(name))] || strings.HasPrefix(name, ".") {
		return nil, domain.ErrUnsupportedFile
	}
	if size > s.maxSize {
		return nil, domain.ErrFileTooLarge
	}
	if err := s.checkOrder(ctx, orderID); err != nil {
		return nil, err
	}

	objectPath := path.Join(strconv.FormatInt(orderID, 10), name)
	if err := s.store.Upload(ctx, objectPath, io.LimitReader(r, s.maxSize)); err != nil {
		zap.L().Error("failed to upload file", zap.String("path", objectPath), zap.Error(err))
		return nil, err
	}
	zap.L().Info("file uploaded", zap.Int64("order_id", orderID), zap.String("name", name))

	return &domain.Attachment{
		Name: name,
		Path: objectPath,
		URL:  s.store.PublicURL(objectPath),
		Size: size,
	}, nil
}

// List returns the order's attachments. An order without any uploads yet
// has an empty list.
func (s *Service) List(ctx context.Context, orderID int64) ([]domain.Attachment, error) {
	if err := s.checkOrder(ctx, orderID); err != nil {
		return nil, err
	}

	objects, err := s.store.List(ctx, strconv.FormatInt(orderID, 10))
	if errors.Is(err, filestore.ErrNotFound) {
		return []domain.Attachment{}, nil
	}
	if err != nil {
		zap.L().Error("failed to list files", zap.Int64("order_id", orderID), zap.Error(err))
		return nil, err
	}

	attachments := make([]domain.Attachment, 0, len(objects))
	for _, o := range objects {
		attachments = append(attachments, domain.Attachment{
			Name:      o.Name,
			Path:      o.Path,
			URL:       s.store.PublicURL(o.Path),
			Size:      o.Size,
			UpdatedAt: o.UpdatedAt,
		})
	}
	return attachments, nil
}

func (s *Service) checkOrder(ctx context.Context, orderID int64) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrOrderNotFound
	}
	return nil
}

package authservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/pkg/auth"
)

// Service logs a role in with its shared secret. Secrets are kept only as
// bcrypt hashes.
type Service struct {
	hashes      map[auth.Role]string
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	now         func() time.Time
}

func New(secrets map[auth.Role]string, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) (*Service, error) {
	hashes := make(map[auth.Role]string, len(secrets))
	for role, secret := range secrets {
		hash, err := hashService.HashPassword(secret)
		if err != nil {
			return nil, fmt.Errorf("hash %s secret: %w", role, err)
		}
		hashes[role] = hash
	}
	return &Service{
		hashes:      hashes,
		hashService: hashService,
		jwtService:  jwtService,
		now:         time.Now,
	}, nil
}

func (s *Service) Authenticate(_ context.Context, role auth.Role, password string) error {
	hash, ok := s.hashes[role]
	if !ok || !s.hashService.ComparePassword(hash, password) {
		zap.L().Info("invalid credentials", zap.String("role", string(role)))
		return domain.ErrInvalidCredentials
	}
	zap.L().Info("role successfully authenticated", zap.String("role", string(role)))
	return nil
}

func (s *Service) GenerateToken(role auth.Role) (string, time.Time, error) {
	expirationTime := s.now().Add(auth.TokenTTL)

	token, err := s.jwtService.GenerateJWT(role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", time.Time{}, err
	}
	return token, expirationTime, nil
}

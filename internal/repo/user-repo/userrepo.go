package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, full_name, created_at FROM users WHERE id = $1", id).
		Scan(&user.ID, &user.FullName, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Int64("user_id", id), zap.Error(err))
		return nil, pg.StorageErr(err)
	}
	return &user, nil
}

func (repo *Repository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := repo.db.Query(ctx, "SELECT id, full_name, created_at FROM users ORDER BY full_name")
	if err != nil {
		zap.L().Error("can't get users", zap.Error(err))
		return nil, pg.StorageErr(err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.FullName, &user.CreatedAt); err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, pg.StorageErr(err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.StorageErr(err)
	}
	return users, nil
}

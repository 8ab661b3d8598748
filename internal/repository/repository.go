package repository

import (
	"context"
	"database/sql"
	"time"

	"reliability_calc/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// CalculationRepo stores audit summaries of finished calculations.
type CalculationRepo interface {
	Append(ctx context.Context, c models.Calculation) error
	List(ctx context.Context, from, to time.Time, status string) ([]models.Calculation, error)
}

type Repository struct {
	CalculationRepo CalculationRepo
	Auth            Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		CalculationRepo: NewCalculationSQLite(db),
		Auth:            NewUserRepository(db),
	}
}

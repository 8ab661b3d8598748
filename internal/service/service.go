package service

import (
	"context"
	"time"

	"reliability_calc/internal/models"
	"reliability_calc/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Calculator runs one request-scoped reliability computation.
type Calculator interface {
	Validate(startText, endText string) ParseResult
	Calculate(ctx context.Context, in CalculationInput) (models.Report, error)
}

// History exposes the read side of the calculation audit trail.
type History interface {
	List(ctx context.Context, f HistoryFilter) ([]models.Calculation, error)
}

// Options carries the tunables main reads from config.
type Options struct {
	SigningKey   string
	TokenTTL     time.Duration
	AuditEnabled bool
}

type Service struct {
	Calculator
	History
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	var audit repository.CalculationRepo
	if opts.AuditEnabled {
		audit = repos.CalculationRepo
	}
	return &Service{
		Calculator:    NewCalculatorService(audit),
		History:       NewHistoryService(repos.CalculationRepo),
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
	}
}

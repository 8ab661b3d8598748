package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"reliability_calc/internal/models"
	"reliability_calc/internal/repository"
)

// HistoryFilter narrows the audit trail by creation time and status.
type HistoryFilter struct {
	From   time.Time // inclusive; zero means no lower bound
	To     time.Time // inclusive; zero means no upper bound
	Status string    // "", "ok", "no_data"
}

type HistoryService struct {
	calcRepo repository.CalculationRepo
}

func NewHistoryService(calcRepo repository.CalculationRepo) *HistoryService {
	return &HistoryService{calcRepo: calcRepo}
}

var (
	errInvalidTimeRange = errors.New("invalid time range: From must be <= To")
	errInvalidStatus    = errors.New("invalid status: must be ok or no_data")
)

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeStatus trims spaces and lowercases the status filter.
func normalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeAndValidateFilter prepares query parameters and validates them.
func normalizeAndValidateFilter(f HistoryFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}

	status := normalizeStatus(f.Status)
	switch status {
	case "", models.StatusOK, models.StatusNoData:
	default:
		return time.Time{}, time.Time{}, "", errInvalidStatus
	}
	return from, to, status, nil
}

func (s *HistoryService) List(ctx context.Context, f HistoryFilter) ([]models.Calculation, error) {
	from, to, status, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.calcRepo.List(ctx, from, to, status)
}

// IsFilterError reports whether err came from filter validation.
func IsFilterError(err error) bool {
	return errors.Is(err, errInvalidTimeRange) || errors.Is(err, errInvalidStatus)
}

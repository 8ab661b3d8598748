package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"reliability_calc/internal/models"

	"github.com/google/uuid"
)

type CalculationSQLite struct {
	db *sql.DB
}

func NewCalculationSQLite(db *sql.DB) *CalculationSQLite { return &CalculationSQLite{db: db} }

const (
	insertCalculationSQL = `
		INSERT INTO calculations (id, created_at, status, failure_count, mttr_hours, mtbf_hours, mtbf_status, diagnostics)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	selectCalculationsSQL = `SELECT id, created_at, status, failure_count, mttr_hours, mtbf_hours, mtbf_status, diagnostics FROM calculations`

	sqliteTimestampLayout = "2006-01-02 15:04:05"
)

// Append inserts a calculation summary. If ID or CreatedAt are empty, they're set.
func (r *CalculationSQLite) Append(ctx context.Context, c models.Calculation) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	var diagPtr *string
	if len(c.Diagnostics) > 0 {
		if b, err := json.Marshal(c.Diagnostics); err == nil {
			s := string(b)
			diagPtr = &s
		}
	}

	_, err := r.db.ExecContext(ctx, insertCalculationSQL,
		c.ID,
		c.CreatedAt.UTC().Format(sqliteTimestampLayout),
		c.Status,
		c.FailureCount,
		c.MTTRHours,
		c.MTBFHours,
		c.MTBFStatus,
		diagPtr,
	)
	return err
}

// List returns calculations filtered by [from, to] (inclusive) and/or status, oldest first.
func (r *CalculationSQLite) List(ctx context.Context, from, to time.Time, status string) ([]models.Calculation, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "created_at >= ?")
		args = append(args, from.UTC().Format(sqliteTimestampLayout))
	}
	if !to.IsZero() {
		conds = append(conds, "created_at <= ?")
		args = append(args, to.UTC().Format(sqliteTimestampLayout))
	}
	if status = strings.ToLower(strings.TrimSpace(status)); status != "" {
		conds = append(conds, "status = ?")
		args = append(args, status)
	}

	q := selectCalculationsSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Calculation, 0, 64)
	for rows.Next() {
		var (
			c          models.Calculation
			mttr, mtbf sql.NullFloat64
			mtbfStatus sql.NullString
			diagStr    sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.CreatedAt, &c.Status, &c.FailureCount, &mttr, &mtbf, &mtbfStatus, &diagStr); err != nil {
			return nil, err
		}
		c.CreatedAt = c.CreatedAt.UTC()
		if mttr.Valid {
			v := mttr.Float64
			c.MTTRHours = &v
		}
		if mtbf.Valid {
			v := mtbf.Float64
			c.MTBFHours = &v
		}
		c.MTBFStatus = mtbfStatus.String

		if diagStr.Valid && diagStr.String != "" {
			var counts map[string]int
			if err := json.Unmarshal([]byte(diagStr.String), &counts); err == nil {
				c.Diagnostics = counts
			}
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"reliability_calc/internal/models"
)

var errEmptyTable = errors.New("uploaded file is empty")

// ReadCSVTable reads a CSV stream whose first record is the header row.
// Rows may have differing field counts; short rows fail validation later.
func ReadCSVTable(r io.Reader) (*models.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errEmptyTable
	}
	return &models.Table{Columns: records[0], Rows: records[1:]}, nil
}

// TemplateCSV returns a CSV with the required header and one example row.
func TemplateCSV() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTemplateCSV(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTemplateCSV(dst io.Writer) error {
	w := csv.NewWriter(dst)
	records := [][]string{
		{ColumnStartTime, ColumnEndTime},
		{"2024-01-01 10:00:00", "2024-01-01 10:30:00"},
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write csv template: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv template: %w", err)
	}
	return nil
}

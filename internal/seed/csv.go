// Package seed provides the initial catalog of a session and loads
// additional products from CSV files.
package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rogerio-castellano/catalog-manager/internal/models"
	"github.com/rogerio-castellano/catalog-manager/internal/validation"
)

// Inserter is the part of the repository the importer needs.
type Inserter interface {
	Insert(product models.Product) (models.Product, error)
}

// RowError describes a CSV row that was skipped.
type RowError struct {
	Row     int                `json:"row"`
	Errors  models.FieldErrors `json:"errors,omitempty"`
	Message string             `json:"message,omitempty"`
}

func (e RowError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.Message)
	}
	parts := make([]string, 0, len(e.Errors))
	for _, f := range models.Fields {
		if msg, ok := e.Errors[f]; ok {
			parts = append(parts, f+" "+msg)
		}
	}
	return fmt.Sprintf("row %d: %s", e.Row, strings.Join(parts, ", "))
}

// ImportResult summarises a CSV import.
type ImportResult struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors"`
}

// ReadCSV reads raw product rows. The header row names the columns
// (name, price, category, stock, description) in any order; name, price
// and category are mandatory.
func ReadCSV(r io.Reader) ([]models.ProductInput, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header: %w", err)
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range validation.RequiredFields {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("invalid CSV header: missing %q column", required)
		}
	}

	var rows []models.ProductInput
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

		var in models.ProductInput
		for _, field := range models.Fields {
			if i, ok := index[field]; ok && i < len(record) {
				in = in.Set(field, record[i])
			}
		}
		rows = append(rows, in)
	}
	return rows, nil
}

// ImportCSV validates every row and inserts the accepted ones so that the
// first row of the file ends up first in the catalog. Invalid rows are
// reported and skipped.
func ImportCSV(r io.Reader, store Inserter) (ImportResult, error) {
	rows, err := ReadCSV(r)
	if err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Errors: []RowError{}}
	type acceptedRow struct {
		row     int
		product models.Product
	}
	accepted := make([]acceptedRow, 0, len(rows))
	for i, in := range rows {
		rowNum := i + 2 // header is row 1

		patch, errs := validation.Parse(in)
		if len(errs) > 0 {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Errors: errs})
			continue
		}
		accepted = append(accepted, acceptedRow{row: rowNum, product: patch.Apply(models.Product{})})
	}

	// Insert prepends, so walk backwards to keep file order.
	for i := len(accepted) - 1; i >= 0; i-- {
		if _, err := store.Insert(accepted[i].product); err != nil {
			result.Errors = append(result.Errors, RowError{Row: accepted[i].row, Message: err.Error()})
			continue
		}
		result.Imported++
	}
	return result, nil
}

// ImportFile imports the CSV file at path.
func ImportFile(path string, store Inserter) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return ImportCSV(f, store)
}

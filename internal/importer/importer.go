// Package importer parses collection exports (Manabox, Moxfield and
// similar CSV layouts) into inventory rows.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/donaldgifford/tcg-collection-tracker/internal/metrics"
	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

// ErrMissingColumns is returned when the header lacks a name or quantity
// column.
var ErrMissingColumns = errors.New("CSV must include name and quantity columns")

// ErrEmpty is returned for input without a header row.
var ErrEmpty = errors.New("CSV is empty")

// Header aliases, matched case-insensitively after trimming.
var (
	nameHeaders     = []string{"name"}
	quantityHeaders = []string{"quantity", "count"}
	setHeaders      = []string{"edition", "set", "set name"}
	numberHeaders   = []string{"collector number", "collector_number", "number"}
)

// columns holds resolved header positions; -1 means absent.
type columns struct {
	name, quantity, set, number int
}

func resolveColumns(header []string) columns {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if i == 0 {
			key = strings.TrimPrefix(key, "\ufeff")
		}
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	find := func(aliases []string) int {
		for _, a := range aliases {
			if i, ok := index[a]; ok {
				return i
			}
		}
		return -1
	}

	return columns{
		name:     find(nameHeaders),
		quantity: find(quantityHeaders),
		set:      find(setHeaders),
		number:   find(numberHeaders),
	}
}

// Parse reads a CSV export with a header row. Rows with a blank name or a
// non-numeric quantity are skipped and counted in the report.
func Parse(r io.Reader) ([]domain.Card, domain.ImportReport, error) {
	var report domain.ImportReport

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, report, ErrEmpty
	}
	if err != nil {
		return nil, report, fmt.Errorf("reading CSV header: %w", err)
	}

	cols := resolveColumns(header)
	if cols.name < 0 || cols.quantity < 0 {
		return nil, report, ErrMissingColumns
	}

	cards := []domain.Card{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, report, fmt.Errorf("reading CSV row: %w", err)
		}
		if blank(record) {
			continue
		}

		card, ok := parseRow(record, cols)
		if !ok {
			report.Skipped++
			continue
		}
		cards = append(cards, card)
	}

	report.Parsed = len(cards)
	metrics.ImportRowsTotal.WithLabelValues("parsed").Add(float64(report.Parsed))
	metrics.ImportRowsTotal.WithLabelValues("skipped").Add(float64(report.Skipped))

	return cards, report, nil
}

func parseRow(record []string, cols columns) (domain.Card, bool) {
	name := field(record, cols.name)
	if name == "" {
		return domain.Card{}, false
	}

	qty, ok := parseQuantity(field(record, cols.quantity))
	if !ok {
		return domain.Card{}, false
	}

	return domain.Card{
		Name:            name,
		Quantity:        qty,
		SetName:         field(record, cols.set),
		CollectorNumber: field(record, cols.number),
	}, true
}

// parseQuantity floors numeric input and clamps it at zero. A blank cell
// counts as zero.
func parseQuantity(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	if math.IsInf(f, 1) {
		return math.MaxInt32, true
	}
	f = math.Floor(f)
	if f < 0 {
		return 0, true
	}
	if f > math.MaxInt32 {
		return math.MaxInt32, true
	}
	return int(f), true
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

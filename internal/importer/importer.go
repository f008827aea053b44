package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SAP-F-2025/fieldvalidation/internal/models"
	"github.com/SAP-F-2025/fieldvalidation/internal/utils"
	"github.com/SAP-F-2025/fieldvalidation/pkg/validation"
	"github.com/SAP-F-2025/fieldvalidation/pkg/validator"
	"github.com/xuri/excelize/v2"
)

var (
	ErrNoSheets = errors.New("excel file has no sheets")
	ErrNoRows   = errors.New("excel must have header row and at least one data row")
)

// Columns read from the first sheet; header matching is case-insensitive.
const (
	ColumnName     = "name"
	ColumnPrice    = "price"
	ColumnRangeMin = "range min"
	ColumnRangeMax = "range max"
	ColumnTags     = "tags"
)

// Result summarises an import. Errors paths start with the spreadsheet row
// number, e.g. [3, "range", "min"].
type Result struct {
	TotalRows    int                          `json:"total_rows"`
	SuccessCount int                          `json:"success_count"`
	ErrorCount   int                          `json:"error_count"`
	Listings     []*models.Listing            `json:"-"`
	Errors       []validation.FieldValidation `json:"errors"`
}

type Importer struct {
	validator *validator.Validator
	logger    utils.Logger
}

func NewImporter(v *validator.Validator, logger utils.Logger) *Importer {
	return &Importer{
		validator: v,
		logger:    logger,
	}
}

// ImportListings parses listings from an xlsx workbook and validates each
// row. Valid listings are returned for saving; invalid rows are reported as
// flattened failures.
func (i *Importer) ImportListings(ctx context.Context, reader io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrNoRows
	}

	headerMap := make(map[string]int)
	for i, header := range rows[0] {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}

	result := &Result{TotalRows: len(rows) - 1}
	var rowItems []validation.ValidationErrorItem

	for rowIndex, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rowNumber := rowIndex + 2
		listing, parseItems := parseRow(row, headerMap)

		var items []validation.ValidationErrorItem
		items = append(items, parseItems...)
		if err := i.validator.Validate(listing); err != nil {
			verr, ok := validation.AsValidationError(err)
			if !ok {
				return nil, fmt.Errorf("failed to validate row %d: %w", rowNumber, err)
			}
			items = append(items, withoutParsed(verr.Errors, parseItems)...)
		}

		if len(items) > 0 {
			nested := validation.FlattenValidationErrors(validation.NewValidationError(items...), nil)
			rowItems = append(rowItems, validation.NestedItem(rowNumber, nested))
			result.ErrorCount++
			continue
		}
		result.Listings = append(result.Listings, listing)
		result.SuccessCount++
	}

	result.Errors = validation.FlattenValidationErrors(validation.NewValidationError(rowItems...), nil)

	i.logger.InfoContext(ctx, "Excel import completed",
		"total_rows", result.TotalRows,
		"success_count", result.SuccessCount,
		"error_count", result.ErrorCount)

	return result, nil
}

// parseRow maps a sheet row onto a listing. Cells that cannot be parsed are
// reported as items; the field keeps its zero value.
func parseRow(row []string, headerMap map[string]int) (*models.Listing, []validation.ValidationErrorItem) {
	cell := func(column string) string {
		if idx, ok := headerMap[column]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	var items []validation.ValidationErrorItem
	var r models.Range
	var rangeErrs []validation.FieldValidation

	price, err := parseNumber(cell(ColumnPrice))
	if err != nil {
		items = append(items, validation.NewValidationErrorItem("price", "must be a number", "numeric", cell(ColumnPrice)))
	}

	if r.Min, err = parseInt(cell(ColumnRangeMin)); err != nil {
		rangeErrs = append(rangeErrs, validation.NewFieldValidation("must be an integer", "min"))
	}
	if r.Max, err = parseInt(cell(ColumnRangeMax)); err != nil {
		rangeErrs = append(rangeErrs, validation.NewFieldValidation("must be an integer", "max"))
	}
	if len(rangeErrs) > 0 {
		items = append(items, validation.NestedItem("range", rangeErrs))
	}

	var tags []models.Tag
	if raw := cell(ColumnTags); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			tags = append(tags, models.Tag{Name: strings.TrimSpace(name)})
		}
	}

	return models.NewListing(cell(ColumnName), price, r, tags...), items
}

// withoutParsed drops validator items for fields that already failed to parse.
func withoutParsed(items, parsed []validation.ValidationErrorItem) []validation.ValidationErrorItem {
	if len(parsed) == 0 {
		return items
	}
	skip := make(map[any]bool, len(parsed))
	for _, item := range parsed {
		skip[item.Path] = true
	}

	var out []validation.ValidationErrorItem
	for _, item := range items {
		if !skip[item.Path] {
			out = append(out, item)
		}
	}
	return out
}

func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

package importer

import (
	"fmt"

	"github.com/SAP-F-2025/fieldvalidation/pkg/validation"
	"github.com/xuri/excelize/v2"
)

const reportSheet = "Errors"

// WriteErrorReport renders flattened failures as an xlsx workbook with a
// Path and a Message column.
func WriteErrorReport(errs []validation.FieldValidation) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	if err := f.SetSheetRow(reportSheet, "A1", &[]interface{}{"Path", "Message"}); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	for i, fv := range errs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(reportSheet, cell, &[]interface{}{fv.Path.String(), fv.Message}); err != nil {
			return nil, fmt.Errorf("failed to write report row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

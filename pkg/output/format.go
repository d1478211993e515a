// Package output renders schedules as CSV, spreadsheets and terminal tables.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/format"
	"github.com/iwvelando/loan-schedule/pkg/loans"
	"github.com/xuri/excelize/v2"
)

// Row is one exported schedule line, already formatted.
type Row struct {
	Month     int    `json:"month"`
	DueDate   string `json:"dueDate"`
	Interest  string `json:"interest"`
	Principal string `json:"principal"`
	Total     string `json:"total"`
	Balance   string `json:"balance"`
}

// Rows formats every entry of schedule for export. Absent due dates become
// "-" and amounts carry two decimals.
func Rows(schedule loans.Schedule) []Row {
	rows := make([]Row, 0, len(schedule))
	for _, entry := range schedule {
		rows = append(rows, Row{
			Month:     entry.Month,
			DueDate:   datetime.FormatDate(entry.DueDate),
			Interest:  format.Amount(entry.Interest),
			Principal: format.Amount(entry.Principal),
			Total:     format.Amount(entry.Total()),
			Balance:   format.Amount(entry.RemainingBalance),
		})
	}
	return rows
}

func (r Row) strings() []string {
	return []string{strconv.Itoa(r.Month), r.DueDate, r.Interest, r.Principal, r.Total, r.Balance}
}

// WriteCSV writes schedule as comma-separated values with a header line.
func WriteCSV(w io.Writer, schedule loans.Schedule) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(constants.ScheduleColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range Rows(schedule) {
		if err := writer.Write(row.strings()); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", row.Month, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// CsvString returns the CSV rendering of schedule.
func CsvString(schedule loans.Schedule) string {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = WriteCSV(&buf, schedule)
	return buf.String()
}

// WriteXLSX writes schedule as a single-sheet workbook. Month numbers are
// stored as numbers and amounts as their two-decimal strings.
func WriteXLSX(w io.Writer, schedule loans.Schedule) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheet := constants.ScheduleSheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	header := make([]interface{}, len(constants.ScheduleColumns))
	for i, column := range constants.ScheduleColumns {
		header[i] = column
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write worksheet header: %w", err)
	}

	for i, row := range Rows(schedule) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{row.Month, row.DueDate, row.Interest, row.Principal, row.Total, row.Balance}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write worksheet row %d: %w", row.Month, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Write renders schedule in the given export format (csv or xlsx).
func Write(w io.Writer, outputFormat string, schedule loans.Schedule) error {
	switch outputFormat {
	case constants.OutputFormatCSV:
		return WriteCSV(w, schedule)
	case constants.OutputFormatXLSX:
		return WriteXLSX(w, schedule)
	}
	return fmt.Errorf("expected export format of %s or %s, got %s",
		constants.OutputFormatCSV, constants.OutputFormatXLSX, outputFormat)
}

// ContentType returns the MIME type for an export format.
func ContentType(outputFormat string) string {
	if outputFormat == constants.OutputFormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// FileName builds "<name>_schedule.<ext>" with characters that are unsafe in
// file names replaced by underscores.
func FileName(loanName, outputFormat string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if r < 0x20 {
			return '_'
		}
		return r
	}, strings.TrimSpace(loanName))
	if name == "" {
		name = "loan"
	}
	return name + "_schedule." + outputFormat
}

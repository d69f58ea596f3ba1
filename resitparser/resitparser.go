package resitparser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"timetable_ingest/helper"
	"timetable_ingest/model"
)

// Headers is the column sequence of a special resit export.
var Headers = []string{"DATE", "COURSE NO.", "COURSE NAME", "DEPARTMENT", "NUMBER", "ROOM", "EXAMINER", "SESSION"}

var (
	xlsxMagic     = []byte("PK\x03\x04")
	utf8BOM       = []byte("\xef\xbb\xbf")
	ordinalSuffix = regexp.MustCompile(`(?i)^(\d{1,2})(st|nd|rd|th)\b`)
)

// ParseResitSchedule parses a resit table given as CSV text or an xlsx
// workbook. The table is rejected as a whole when any row is invalid; the
// returned *BatchError lists every row error.
func ParseResitSchedule(data []byte) ([]model.ResitEntry, error) {
	entries, rowErrs, err := ParseResitSchedulePartial(data)
	if err != nil {
		return nil, err
	}
	if len(rowErrs) > 0 {
		return nil, &BatchError{Errors: rowErrs}
	}
	return entries, nil
}

// ParseResitSchedulePartial is ParseResitSchedule keeping the valid rows.
// Entries and row errors never describe the same row.
func ParseResitSchedulePartial(data []byte) ([]model.ResitEntry, []string, error) {
	rows, err := readRows(data)
	if err != nil {
		return nil, nil, err
	}
	return ValidateRows(rows)
}

func readRows(data []byte) ([][]string, error) {
	if bytes.HasPrefix(data, xlsxMagic) {
		return readWorkbookRows(data)
	}
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read resit csv")
	}
	return rows, nil
}

func readWorkbookRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "open resit workbook")
	}
	defer func(f *excelize.File) {
		if err := f.Close(); err != nil {
			log.Println(err)
		}
	}(f)

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrHeaderNotFound
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %q", sheets[0])
	}
	return rows, nil
}

// locateHeader finds the first row holding Headers in order, starting at any column.
func locateHeader(rows [][]string) (row, col int, ok bool) {
	for r, cells := range rows {
		for c := 0; c+len(Headers) <= len(cells); c++ {
			if headerAt(cells[c:]) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func headerAt(cells []string) bool {
	for i, h := range Headers {
		if !strings.Contains(strings.ToUpper(strings.TrimSpace(cells[i])), h) {
			return false
		}
	}
	return true
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if helper.IsNotEmpty(c) {
			return false
		}
	}
	return true
}

// ValidateRows validates every row below the header row. Blank rows are
// ignored. Row numbers in messages are 1-based and count from the top of the
// table, columns likewise.
func ValidateRows(rows [][]string) ([]model.ResitEntry, []string, error) {
	headerRow, offset, ok := locateHeader(rows)
	if !ok {
		return nil, nil, errors.WithStack(ErrHeaderNotFound)
	}

	entries := make([]model.ResitEntry, 0)
	var rowErrs []string
	for r := headerRow + 1; r < len(rows); r++ {
		cells := rows[r]
		if isBlankRow(cells) {
			continue
		}
		entry, errs := validateRow(r+1, offset, cells)
		if len(errs) > 0 {
			rowErrs = append(rowErrs, errs...)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, rowErrs, nil
}

func validateRow(rowNum, offset int, cells []string) (model.ResitEntry, []string) {
	if len(cells) < offset+len(Headers) {
		return model.ResitEntry{}, []string{fmt.Sprintf("Row %d: expected %d columns, found %d",
			rowNum, len(Headers), max(len(cells)-offset, 0))}
	}
	cols := make([]string, len(Headers))
	for i, c := range cells[offset : offset+len(Headers)] {
		cols[i] = strings.TrimSpace(c)
	}

	row := resitRow{
		Date:       ordinalSuffix.ReplaceAllString(cols[0], "$1"),
		CourseCode: strings.ToUpper(cols[1]),
		CourseName: cols[2],
		Department: cols[3],
		Number:     cols[4],
		Room:       cols[5],
		Examiner:   cols[6],
		Session:    strings.ToUpper(cols[7]),
	}
	if err := validate.Struct(row); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return model.ResitEntry{}, []string{fmt.Sprintf("Row %d: %v", rowNum, err)}
		}
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("Row %d, column %d: %s", rowNum, offset+columnOf(fe.Field())+1, fieldMessage(fe)))
		}
		return model.ResitEntry{}, msgs
	}

	number, _ := strconv.Atoi(row.Number)
	return model.ResitEntry{
		Date:             row.Date,
		CourseCode:       row.CourseCode,
		CourseName:       row.CourseName,
		Department:       row.Department,
		NumberOfStudents: number,
		Room:             row.Room,
		Examiner:         row.Examiner,
		Session:          model.Session(row.Session),
	}, nil
}

func columnOf(header string) int {
	for i, h := range Headers {
		if h == header {
			return i
		}
	}
	return 0
}

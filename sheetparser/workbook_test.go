package sheetparser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

type testSheet struct {
	name   string
	cells  map[string]string
	merges [][2]string
}

// header fills the five title rows the parser skips.
func header(cells map[string]string) map[string]string {
	cells["A1"] = "UNIVERSITY OF MINES AND TECHNOLOGY"
	cells["A2"] = "FACULTY OF ENGINEERING"
	cells["A3"] = "MASTER TIMETABLE"
	cells["A4"] = "SECOND SEMESTER"
	cells["A5"] = "ROOM"
	cells["G5"] = "BREAK"
	return cells
}

func buildWorkbook(t *testing.T, sheets ...testSheet) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				t.Fatal(err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			t.Fatal(err)
		}
		for axis, v := range header(s.cells) {
			if err := f.SetCellValue(s.name, axis, v); err != nil {
				t.Fatal(err)
			}
		}
		for _, m := range s.merges {
			if err := f.MergeCell(s.name, m[0], m[1]); err != nil {
				t.Fatal(err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

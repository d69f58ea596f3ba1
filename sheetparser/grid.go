package sheetparser

import (
	"bytes"
	"log"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"timetable_ingest/helper"
)

// HeaderRows is the size of the title block above the room rows on every sheet.
const HeaderRows = 5

type cellCoords struct {
	row int
	col int
}

// sheetGrid is one day of the workbook as row-major strings.
type sheetGrid struct {
	day   string
	rows  [][]string
	spans map[cellCoords]int
}

func (g *sheetGrid) span(row, col int) int {
	if s, ok := g.spans[cellCoords{row: row, col: col}]; ok && s > 1 {
		return s
	}
	return 1
}

// placedCell is a decoded cell positioned on the slot grid.
type placedCell struct {
	day   string
	room  string
	start int
	end   int
	cell  DecodedCell
}

func readWorkbook(data []byte, logger *log.Logger) ([]sheetGrid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer func(f *excelize.File) {
		if err := f.Close(); err != nil {
			logger.Println(err)
		}
	}(f)

	var grids []sheetGrid
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, errors.Wrapf(err, "read sheet %q", name)
		}
		spans, err := getMergedSpans(f, name)
		if err != nil {
			// Without merges every class is one slot wide; still usable.
			logger.Printf("sheetparser: merges of %q: %v", name, err)
		}
		grids = append(grids, sheetGrid{day: name, rows: rows, spans: spans})
	}
	return grids, nil
}

// getMergedSpans returns the column span of every merge region keyed by its
// top-left cell, 0-based. Regions that cannot be resolved are dropped.
func getMergedSpans(f *excelize.File, name string) (map[cellCoords]int, error) {
	merged, err := f.GetMergeCells(name)
	if err != nil {
		return nil, err
	}
	spans := make(map[cellCoords]int, len(merged))
	for _, m := range merged {
		startCol, startRow, err := excelize.CellNameToCoordinates(m.GetStartAxis())
		if err != nil {
			continue
		}
		endCol, _, err := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err != nil || endCol < startCol {
			continue
		}
		spans[cellCoords{row: startRow - 1, col: startCol - 1}] = endCol - startCol + 1
	}
	return spans, nil
}

// walk visits every class cell of grids in sheet, row, column order.
func walk(grids []sheetGrid, rule LecturerRule, visit func(placedCell)) {
	for gi := range grids {
		g := &grids[gi]
		for r := HeaderRows; r < len(g.rows); r++ {
			row := g.rows[r]
			if len(row) == 0 || !helper.IsNotEmpty(row[0]) {
				continue
			}
			room := strings.TrimSpace(row[0])
			for c := 1; c < len(row); c++ {
				content := row[c]
				if !helper.IsNotEmpty(content) || helper.IsBreak(content) {
					continue
				}
				span := g.span(r, c)
				decoded, ok := decodeCell(content, rule)
				if !ok {
					continue
				}
				start := ColumnToSlotIndex(c)
				visit(placedCell{
					day:   g.day,
					room:  room,
					start: start,
					end:   start + span - 1,
					cell:  decoded,
				})
				c += span - 1
			}
		}
	}
}

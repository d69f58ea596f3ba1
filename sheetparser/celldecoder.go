package sheetparser

import (
	"regexp"
	"strings"

	"timetable_ingest/helper"
)

// DefaultLecturer is used when a cell names no lecturer.
const DefaultLecturer = "TBA"

var cellSeparator = regexp.MustCompile(`[\n,]`)

// DecodedCell is the content of one timetable cell.
type DecodedCell struct {
	CourseCode string
	Lecturer   string
}

// LecturerRule picks the lecturer out of a cell's entries and returns the
// remaining course parts. entries is never empty.
type LecturerRule func(entries []string) (courseParts []string, lecturer string)

// LastEntryIsLecturer treats the last entry of a multi-entry cell as the
// lecturer. A cell written lecturer-first is misread; the sheets give nothing
// better to go on.
func LastEntryIsLecturer(entries []string) ([]string, string) {
	if len(entries) < 2 {
		return entries, DefaultLecturer
	}
	return entries[:len(entries)-1], entries[len(entries)-1]
}

func splitEntries(cell string) []string {
	var entries []string
	for _, e := range cellSeparator.Split(cell, -1) {
		if e = strings.TrimSpace(e); e != "" {
			entries = append(entries, e)
		}
	}
	return entries
}

// DecodeCell decodes a cell with LastEntryIsLecturer.
func DecodeCell(cell string) (DecodedCell, bool) {
	return decodeCell(cell, LastEntryIsLecturer)
}

func decodeCell(cell string, rule LecturerRule) (DecodedCell, bool) {
	if !helper.IsNotEmpty(cell) || helper.IsBreak(cell) {
		return DecodedCell{}, false
	}
	entries := splitEntries(cell)
	if len(entries) == 0 {
		return DecodedCell{}, false
	}
	parts, lecturer := rule(entries)
	code := strings.Join(parts, " ")
	if code == "" {
		return DecodedCell{}, false
	}
	return DecodedCell{CourseCode: code, Lecturer: lecturer}, true
}

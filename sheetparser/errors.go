package sheetparser

import "github.com/pkg/errors"

var (
	// ErrNoScheduleData means the workbook was read but held no classes.
	ErrNoScheduleData = errors.New("file could not be parsed or contains no valid schedule data")
	// ErrParseFailed means the input is not a readable workbook. The cause is
	// logged, not returned.
	ErrParseFailed = errors.New("failed to parse")
)

package resitparser

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrHeaderNotFound = errors.New("header row not found")

// BatchError carries every row error of a rejected resit table.
type BatchError struct {
	Errors []string
}

func (e *BatchError) Error() string {
	return "parsing failed with errors: " + strings.Join(e.Errors, "; ")
}

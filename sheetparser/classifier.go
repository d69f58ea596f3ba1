package sheetparser

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/exp/slices"
)

var (
	digitRun        = regexp.MustCompile(`\d+`)
	initialSplitter = regexp.MustCompile(`[/\s]+`)
	initialStripper = strings.NewReplacer(".", "", "-", "")
)

// Classification is what a course code says about a class.
type Classification struct {
	CourseCode  string
	Level       int
	Departments []string
}

type Classifier struct {
	departments DepartmentTable
}

func NewClassifier(departments DepartmentTable) *Classifier {
	return &Classifier{departments: departments}
}

// Classify decodes level and departments from a raw code such as "CE/EL 151".
// The level is the first digit of the first number times 100, or 0.
func (c *Classifier) Classify(code string) Classification {
	res := Classification{Departments: []string{}}
	if run := digitRun.FindString(code); run != "" {
		res.Level = int(run[0]-'0') * 100
	}

	var numbers, initials []string
	for _, token := range strings.Fields(code) {
		// A token like "CE101" is both; the checks are independent.
		if unicode.IsDigit(rune(token[0])) {
			numbers = append(numbers, token)
		}
		if strings.IndexFunc(token, unicode.IsLetter) >= 0 {
			initial := initialStripper.Replace(token)
			if initial != "" && !slices.Contains(initials, initial) {
				initials = append(initials, initial)
			}
		}
	}

	for _, initial := range initials {
		for _, part := range initialSplitter.Split(initial, -1) {
			if part == "" {
				continue
			}
			name := c.departments.Name(part)
			if !slices.Contains(res.Departments, name) {
				res.Departments = append(res.Departments, name)
			}
		}
	}

	res.CourseCode = strings.TrimSpace(strings.Join(initials, " ") + " " + strings.Join(numbers, " "))
	return res
}

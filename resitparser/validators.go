package resitparser

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	// custom validation tags
	notBlankTag    = "notblank"
	courseCodeTag  = "coursecode"
	resitDateTag   = "resitdate"
	positiveIntTag = "positiveint"

	courseCodeRegex = regexp.MustCompile(`^[A-Z]{2}\s\d{3}$`)
	dateRegex       = regexp.MustCompile(`^\d{1,2}-[A-Z]{3}-\d{4}$`)
	digitsRegex     = regexp.MustCompile(`^\d+$`)
)

func init() {
	validate = validator.New()

	// Report fields by their sheet header.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("header")
	})

	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
	_ = validate.RegisterValidation(courseCodeTag, regexValidation(courseCodeRegex))
	_ = validate.RegisterValidation(resitDateTag, regexValidation(dateRegex))
	_ = validate.RegisterValidation(positiveIntTag, positiveIntValidation)
}

// resitRow is one data row after normalization, before conversion.
type resitRow struct {
	Date       string `header:"DATE" validate:"resitdate"`
	CourseCode string `header:"COURSE NO." validate:"coursecode"`
	CourseName string `header:"COURSE NAME" validate:"notblank"`
	Department string `header:"DEPARTMENT" validate:"notblank"`
	Number     string `header:"NUMBER" validate:"positiveint"`
	Room       string `header:"ROOM" validate:"notblank"`
	Examiner   string `header:"EXAMINER"`
	Session    string `header:"SESSION" validate:"oneof=M A"`
}

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

func regexValidation(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func positiveIntValidation(fl validator.FieldLevel) bool {
	str := fl.Field().String()
	if !digitsRegex.MatchString(str) {
		return false
	}
	n, err := strconv.Atoi(str)
	return err == nil && n > 0
}

// fieldMessage renders a failed field check.
func fieldMessage(fe validator.FieldError) string {
	value, _ := fe.Value().(string)
	switch fe.Tag() {
	case positiveIntTag:
		return "Invalid NUMBER value " + strconv.Quote(value) + ", expected a positive whole number"
	case courseCodeTag:
		return "Invalid COURSE NO. format " + strconv.Quote(value) + ", expected e.g. \"CE 151\""
	case resitDateTag:
		return "Invalid DATE format " + strconv.Quote(value) + ", expected e.g. \"12-MAR-2024\""
	case "oneof":
		return "Invalid SESSION value " + strconv.Quote(value) + ", expected \"M\" or \"A\""
	case notBlankTag:
		return fe.Field() + " is required"
	default:
		return "Invalid " + fe.Field() + " value " + strconv.Quote(value)
	}
}

package csvexport

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"timetable_ingest/model"
)

type entryRow struct {
	Day         string `csv:"day"`
	Room        string `csv:"room"`
	Time        string `csv:"time"`
	CourseCode  string `csv:"course_code"`
	Lecturer    string `csv:"lecturer"`
	Level       int    `csv:"level"`
	Departments string `csv:"departments"`
}

type freeSlotRow struct {
	Day      string `csv:"day"`
	Location string `csv:"location"`
	Time     string `csv:"time"`
}

type resitRow struct {
	Date             string `csv:"date"`
	CourseCode       string `csv:"course_code"`
	CourseName       string `csv:"course_name"`
	Department       string `csv:"department"`
	NumberOfStudents int    `csv:"number_of_students"`
	Room             string `csv:"room"`
	Examiner         string `csv:"examiner"`
	Session          string `csv:"session"`
}

// DepartmentSeparator joins an entry's departments into one column.
const DepartmentSeparator = "; "

func WriteEntries(w io.Writer, entries []model.ScheduleEntry) error {
	rows := make([]*entryRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, &entryRow{
			Day:         e.Day,
			Room:        e.Room,
			Time:        e.Time,
			CourseCode:  e.CourseCode,
			Lecturer:    e.Lecturer,
			Level:       e.Level,
			Departments: strings.Join(e.Departments, DepartmentSeparator),
		})
	}
	return gocsv.Marshal(&rows, w)
}

func WriteFreeSlots(w io.Writer, slots []model.FreeSlot) error {
	rows := make([]*freeSlotRow, 0, len(slots))
	for _, s := range slots {
		rows = append(rows, &freeSlotRow{Day: s.Day, Location: s.Location, Time: s.Time})
	}
	return gocsv.Marshal(&rows, w)
}

func WriteResits(w io.Writer, resits []model.ResitEntry) error {
	rows := make([]*resitRow, 0, len(resits))
	for _, r := range resits {
		rows = append(rows, &resitRow{
			Date:             r.Date,
			CourseCode:       r.CourseCode,
			CourseName:       r.CourseName,
			Department:       r.Department,
			NumberOfStudents: r.NumberOfStudents,
			Room:             r.Room,
			Examiner:         r.Examiner,
			Session:          string(r.Session),
		})
	}
	return gocsv.Marshal(&rows, w)
}

// WriteDataset writes timetable.csv, free_slots.csv and resits.csv into dir,
// replacing earlier exports.
func WriteDataset(dir string, data *model.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}
	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"timetable.csv", func(w io.Writer) error { return WriteEntries(w, data.Entries) }},
		{"free_slots.csv", func(w io.Writer) error { return WriteFreeSlots(w, data.FreeSlots) }},
		{"resits.csv", func(w io.Writer) error { return WriteResits(w, data.Resits) }},
	}
	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.write); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := write(out); err != nil {
		out.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(out.Close(), "close %s", path)
}

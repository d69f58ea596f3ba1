package model

// Session of a resit paper: morning or afternoon.
type Session string

const (
	Morning   Session = "M"
	Afternoon Session = "A"
)

type ResitEntry struct {
	Date             string  `json:"date"`
	CourseCode       string  `json:"courseCode"`
	CourseName       string  `json:"courseName"`
	Department       string  `json:"department"`
	NumberOfStudents int     `json:"numberOfStudents"`
	Room             string  `json:"room"`
	Examiner         string  `json:"examiner"`
	Session          Session `json:"session"`
}

package model

type ScheduleEntry struct {
	Day         string   `json:"day"`
	Room        string   `json:"room"`
	Time        string   `json:"time"`
	CourseCode  string   `json:"courseCode"`
	Lecturer    string   `json:"lecturer"`
	Level       int      `json:"level"`
	Departments []string `json:"departments"`
}

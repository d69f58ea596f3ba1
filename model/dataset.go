package model

// Dataset is everything one refresh publishes.
type Dataset struct {
	Entries   []ScheduleEntry `json:"timetable"`
	FreeSlots []FreeSlot      `json:"freeSlots"`
	Resits    []ResitEntry    `json:"resits"`
}

package model

type FreeSlot struct {
	Day      string `json:"day"`
	Location string `json:"location"`
	Time     string `json:"time"`
}

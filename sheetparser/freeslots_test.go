package sheetparser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"timetable_ingest/model"
)

func freeFor(slots []model.FreeSlot, day, room string) []string {
	var times []string
	for _, s := range slots {
		if s.Day == day && s.Location == room {
			times = append(times, s.Time)
		}
	}
	return times
}

func labelsExcept(taken ...int) []string {
	var labels []string
	for i := 0; i < SlotCount; i++ {
		skip := false
		for _, t := range taken {
			if t == i {
				skip = true
			}
		}
		if !skip {
			labels = append(labels, SlotLabel(i))
		}
	}
	return labels
}

func TestComputeFreeSlotsSingleClass(t *testing.T) {
	data := buildWorkbook(t, testSheet{
		name:  "Monday",
		cells: map[string]string{"A6": "A101", "E6": "CE 151"},
	})
	got, err := NewParser(quiet).ComputeFreeSlots(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 11 {
		t.Fatalf("got %d free slots, want 11", len(got))
	}
	if diff := cmp.Diff(labelsExcept(3), freeFor(got, "Monday", "A101")); diff != "" {
		t.Errorf("free times mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeFreeSlots(t *testing.T) {
	got, err := NewParser(quiet).ComputeFreeSlots(fixtureWorkbook(t))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		day, room string
		want      []string
	}{
		{day: "Monday", room: "A101", want: labelsExcept(3)},
		{day: "Monday", room: "LT 2", want: labelsExcept(0, 1, 5)},
		{day: "Monday", room: "Room Z", want: nil},
		{day: "Tuesday", room: "A101", want: labelsExcept(1, 2)},
		{day: "Tuesday", room: "LT 2", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.day+"/"+tt.room, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, freeFor(got, tt.day, tt.room)); diff != "" {
				t.Errorf("free times mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if len(got) != 11+9+10 {
		t.Errorf("got %d free slots, want 30", len(got))
	}
}

func TestFreeSlotStrategiesAgree(t *testing.T) {
	fixtures := map[string][]byte{
		"fixture": fixtureWorkbook(t),
		"wide merge": buildWorkbook(t, testSheet{
			name:   "Thursday",
			cells:  map[string]string{"A6": "A101", "B6": "CE 151\nDr. Mensah", "A7": "A102", "H7": "MN 151", "N7": "MN 152"},
			merges: [][2]string{{"B6", "F6"}, {"H7", "J7"}},
		}),
		"full room": buildWorkbook(t, testSheet{
			name:   "Friday",
			cells:  map[string]string{"A6": "A101", "B6": "CE 151", "H6": "CE 152", "A7": "A102", "C7": "EL 151"},
			merges: [][2]string{{"B6", "F6"}, {"H6", "N6"}},
		}),
	}
	for name, data := range fixtures {
		t.Run(name, func(t *testing.T) {
			p := NewParser(quiet)
			entries, err := p.ParseSchedule(data)
			if err != nil {
				t.Fatal(err)
			}
			fromGrid, err := p.ComputeFreeSlots(data)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(fromGrid, FreeSlotsFromEntries(entries)); diff != "" {
				t.Errorf("strategies disagree (-grid +entries):\n%s", diff)
			}
		})
	}
}

func TestFreeSlotRoomsComeFromEntries(t *testing.T) {
	data := fixtureWorkbook(t)
	p := NewParser(quiet)
	entries, err := p.ParseSchedule(data)
	if err != nil {
		t.Fatal(err)
	}
	slots, err := p.ComputeFreeSlots(data)
	if err != nil {
		t.Fatal(err)
	}

	type key struct{ Day, Room string }
	fromEntries := map[key]bool{}
	for _, e := range entries {
		fromEntries[key{e.Day, e.Room}] = true
	}
	fromSlots := map[key]bool{}
	for _, s := range slots {
		fromSlots[key{s.Day, s.Location}] = true
	}
	if diff := cmp.Diff(fromEntries, fromSlots); diff != "" {
		t.Errorf("room/day keys differ (-entries +slots):\n%s", diff)
	}
}

func TestComputeFreeSlotsEmpty(t *testing.T) {
	slots, err := NewParser(quiet).ComputeFreeSlots(buildWorkbook(t, testSheet{name: "Monday", cells: map[string]string{}}))
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 0 {
		t.Errorf("got %d free slots, want 0", len(slots))
	}

	if _, err := NewParser(quiet).ComputeFreeSlots([]byte("garbage")); !errors.Is(err, ErrParseFailed) {
		t.Errorf("ComputeFreeSlots(garbage) error = %v, want ErrParseFailed", err)
	}
}

func TestFreeSlotsFromEntriesOffCatalog(t *testing.T) {
	got := FreeSlotsFromEntries([]model.ScheduleEntry{{Day: "Monday", Room: "A101", Time: "12:15-1:00 PM"}})
	if len(got) != SlotCount {
		t.Errorf("got %d free slots, want %d", len(got), SlotCount)
	}
}

package sheetparser

import "strings"

// BreakColumn is the sheet column that holds the lunch break. It has no slot.
const BreakColumn = 6

// SlotCount is the number of class periods in a day.
const SlotCount = 12

type timeSlot struct {
	start string // "8:00"
	end   string // "9:00 AM"
}

func (s timeSlot) label() string {
	return s.start + "-" + s.end
}

// 12:00 - 1:30 PM is lunch and deliberately missing.
var timeSlots = [SlotCount]timeSlot{
	{"7:00", "8:00 AM"},
	{"8:00", "9:00 AM"},
	{"9:00", "10:00 AM"},
	{"10:00", "11:00 AM"},
	{"11:00", "12:00 PM"},
	{"1:30", "2:30 PM"},
	{"2:30", "3:30 PM"},
	{"3:30", "4:30 PM"},
	{"4:30", "5:30 PM"},
	{"5:30", "6:30 PM"},
	{"6:30", "7:00 PM"},
	{"7:00", "7:30 PM"},
}

// SlotLabel returns the label of slot index, e.g. "9:00-10:00 AM".
// It returns "" when index is outside the catalog.
func SlotLabel(index int) string {
	if index < 0 || index >= SlotCount {
		return ""
	}
	return timeSlots[index].label()
}

// ColumnToSlotIndex maps a sheet column (column 0 is the room) to a slot index.
// Columns after the break column are shifted back by one.
func ColumnToSlotIndex(column int) int {
	index := column - 1
	if column > BreakColumn {
		index--
	}
	return index
}

func clampSlot(index int) int {
	if index < 0 {
		return 0
	}
	if index >= SlotCount {
		return SlotCount - 1
	}
	return index
}

// CombineRange joins the start of slot start and the end of slot end into
// "8:00 - 10:00 AM". A single slot, or an inverted range, yields the label of start.
func CombineRange(start, end int) string {
	start, end = clampSlot(start), clampSlot(end)
	if start >= end {
		return SlotLabel(start)
	}
	return timeSlots[start].start + " - " + timeSlots[end].end
}

// SlotRange is the inverse of CombineRange and SlotLabel. A single-slot label
// uses "-", a combined range uses " - " and always spans at least two slots.
func SlotRange(time string) (start, end int, ok bool) {
	time = strings.TrimSpace(time)
	for i, s := range timeSlots {
		if s.label() == time {
			return i, i, true
		}
	}

	parts := strings.SplitN(time, " - ", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	from, to := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])

	end = -1
	for i, s := range timeSlots {
		if s.end == to {
			end = i
			break
		}
	}
	for i := 0; i < end; i++ {
		if timeSlots[i].start == from {
			return i, end, true
		}
	}
	return 0, 0, false
}

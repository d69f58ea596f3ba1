package sheetparser

import (
	"github.com/elliotchance/orderedmap/v2"

	"timetable_ingest/model"
)

type roomSlots = orderedmap.OrderedMap[string, *[SlotCount]bool]

// occupancy records taken slots per day and room in first-seen order.
type occupancy struct {
	days *orderedmap.OrderedMap[string, *roomSlots]
}

func newOccupancy() *occupancy {
	return &occupancy{days: orderedmap.NewOrderedMap[string, *roomSlots]()}
}

func (o *occupancy) mark(day, room string, start, end int) {
	rooms, ok := o.days.Get(day)
	if !ok {
		rooms = orderedmap.NewOrderedMap[string, *[SlotCount]bool]()
		o.days.Set(day, rooms)
	}
	taken, ok := rooms.Get(room)
	if !ok {
		taken = new([SlotCount]bool)
		rooms.Set(room, taken)
	}
	if start > end {
		return
	}
	for i := clampSlot(start); i <= clampSlot(end); i++ {
		taken[i] = true
	}
}

func (o *occupancy) freeSlots() []model.FreeSlot {
	slots := make([]model.FreeSlot, 0)
	for d := o.days.Front(); d != nil; d = d.Next() {
		for r := d.Value.Front(); r != nil; r = r.Next() {
			for i, taken := range r.Value {
				if taken {
					continue
				}
				slots = append(slots, model.FreeSlot{Day: d.Key, Location: r.Key, Time: SlotLabel(i)})
			}
		}
	}
	return slots
}

// FreeSlotsFromEntries computes free slots from parsed entries instead of the
// grid. Entries whose time is not on the slot catalog occupy nothing but still
// make their room known. For entries from ParseSchedule the result equals
// ComputeFreeSlots on the same workbook.
func FreeSlotsFromEntries(entries []model.ScheduleEntry) []model.FreeSlot {
	occ := newOccupancy()
	for _, e := range entries {
		start, end, ok := SlotRange(e.Time)
		if !ok {
			start, end = 0, -1
		}
		occ.mark(e.Day, e.Room, start, end)
	}
	return occ.freeSlots()
}

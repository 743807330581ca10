package constants

// SlotDurations maps a task time slot to its duration in minutes.
// Regular shift slots run two hours; the end-of-day slot and both
// overtime slots run one hour. Unknown slots resolve to 0 at the
// lookup site.
var SlotDurations = map[string]float64{
	"7:30 to 9:30":  120,
	"9:30 to 11:30": 120,
	"11:30 to 1:30": 120,
	"2:00 to 4:00":  120,
	"5:00 to 7:00":  120,
	"4:00 to 5:00":  60,
	"Overtime 1":    60,
	"Overtime 2":    60,
}

// TimeSlots is the display order used by the planning UI.
var TimeSlots = []string{
	"7:30 to 9:30",
	"9:30 to 11:30",
	"11:30 to 1:30",
	"2:00 to 4:00",
	"4:00 to 5:00",
	"5:00 to 7:00",
	"Overtime 1",
	"Overtime 2",
}

package production

import (
	"math"

	"lagam-golang/internal/storage"
)

// Objective is how many units an operator is expected to finish in the
// task's time slot, given the section's standard time per unit.
// Returns 0 when the section has no standard time or the slot is
// unrecognized; a missing lagam or section resolves to 0 as well,
// since historical tasks may outlive blueprint edits.
func Objective(task storage.ProductionTask, lagams []storage.Lagam) int {
	stdTime := resolveSectionStdTime(task, lagams)
	if stdTime <= 0 {
		return 0
	}
	return int(math.Floor(SlotDuration(task.TimeSlot) / stdTime))
}

// Attainment is the task's output as a percentage of its objective. A
// task with no defined objective but nonzero output counts as 100%,
// never penalized.
func Attainment(task storage.ProductionTask, lagams []storage.Lagam) float64 {
	actual := EffectiveProduced(task).Total
	objective := Objective(task, lagams)
	if objective > 0 {
		return float64(actual) / float64(objective) * 100
	}
	if actual > 0 {
		return 100
	}
	return 0
}

func resolveSectionStdTime(task storage.ProductionTask, lagams []storage.Lagam) float64 {
	for _, lagam := range lagams {
		if lagam.LagamID != task.LagamID {
			continue
		}
		if section, ok := lagam.Section(task.SectionName); ok {
			return SectionStandardTime(section)
		}
		return 0
	}
	return 0
}

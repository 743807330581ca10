package production

import (
	"lagam-golang/internal/constants"
	"lagam-golang/internal/storage"
)

// ProducedTotals is the accounting view of a task's output.
type ProducedTotals struct {
	Total  int
	BySize map[string]int
}

// EffectiveProduced resolves what a task counts as having produced.
// A task marked Completed is assumed to have delivered its full plan,
// so its planned sizeQuantities/quantity are used; any other status
// uses the recorded produced fields, defaulting to zero when absent.
// Every accounting call site must go through here.
func EffectiveProduced(task storage.ProductionTask) ProducedTotals {
	sizes := task.SizeQuantitiesProduced
	total := task.QuantityProduced
	if task.Status == storage.TaskCompleted {
		sizes = task.SizeQuantities
		total = task.Quantity
	}

	bySize := make(map[string]int, len(sizes))
	for _, sq := range sizes {
		bySize[sq.Size] += sq.Quantity
	}

	return ProducedTotals{Total: total, BySize: bySize}
}

// SlotDuration returns the duration of a time slot in minutes, 0 for
// an unknown or empty slot.
func SlotDuration(timeSlot string) float64 {
	return constants.SlotDurations[timeSlot]
}

// SectionStandardTime is the standard time per unit for a blueprint
// section, the sum of its planned operations' tiempo.
func SectionStandardTime(section storage.ProductionBlueprintSection) float64 {
	var total float64
	for _, op := range section.PlannedOperations {
		total += op.Tiempo
	}
	return total
}

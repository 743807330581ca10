package production

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lagam-golang/internal/storage"
)

func TestSlotDuration(t *testing.T) {
	assert.Equal(t, 120.0, SlotDuration("7:30 to 9:30"))
	assert.Equal(t, 120.0, SlotDuration("2:00 to 4:00"))
	assert.Equal(t, 60.0, SlotDuration("4:00 to 5:00"))
	assert.Equal(t, 60.0, SlotDuration("Overtime 1"))
	assert.Equal(t, 60.0, SlotDuration("Overtime 2"))
	assert.Equal(t, 0.0, SlotDuration("unknown"))
	assert.Equal(t, 0.0, SlotDuration(""))
}

func TestObjective(t *testing.T) {
	lagam := newLagam([]storage.SizeQuantity{{Size: "S", Quantity: 100}}, "Cutting")
	// Section std time is 2 min/unit, slot 120 min.
	task := newTask("TSK-1", lagam, "Cutting", storage.TaskInProgress, nil, nil)
	task.TimeSlot = "7:30 to 9:30"

	assert.Equal(t, 60, Objective(task, []storage.Lagam{lagam}))
}

func TestObjective_ZeroStandardTime(t *testing.T) {
	lagam := newLagam([]storage.SizeQuantity{{Size: "S", Quantity: 100}}, "Cutting")
	lagam.ProductionBlueprint[0].PlannedOperations = nil
	task := newTask("TSK-1", lagam, "Cutting", storage.TaskInProgress, nil, nil)
	task.TimeSlot = "7:30 to 9:30"

	assert.Equal(t, 0, Objective(task, []storage.Lagam{lagam}))
}

func TestObjective_UnresolvedLagam(t *testing.T) {
	task := storage.ProductionTask{ID: "TSK-1", LagamID: "LGM-gone", SectionName: "Cutting", TimeSlot: "7:30 to 9:30"}

	assert.Equal(t, 0, Objective(task, nil))
}

func TestAttainment(t *testing.T) {
	lagam := newLagam([]storage.SizeQuantity{{Size: "S", Quantity: 100}}, "Cutting")

	task := newTask("TSK-1", lagam, "Cutting", storage.TaskInProgress, nil,
		[]storage.SizeQuantity{{Size: "S", Quantity: 30}})
	task.TimeSlot = "7:30 to 9:30" // objective 60

	assert.InDelta(t, 50.0, Attainment(task, []storage.Lagam{lagam}), 0.001)
}

func TestAttainment_NoObjectiveWithOutput(t *testing.T) {
	lagam := newLagam([]storage.SizeQuantity{{Size: "S", Quantity: 100}}, "Cutting")

	// Unknown slot, so no objective. Output still counts as 100%.
	task := newTask("TSK-1", lagam, "Cutting", storage.TaskInProgress, nil,
		[]storage.SizeQuantity{{Size: "S", Quantity: 5}})
	task.TimeSlot = "lunch break"

	assert.Equal(t, 100.0, Attainment(task, []storage.Lagam{lagam}))
}

func TestAttainment_NoObjectiveNoOutput(t *testing.T) {
	lagam := newLagam([]storage.SizeQuantity{{Size: "S", Quantity: 100}}, "Cutting")

	task := newTask("TSK-1", lagam, "Cutting", storage.TaskInProgress, nil, nil)

	assert.Equal(t, 0.0, Attainment(task, []storage.Lagam{lagam}))
}

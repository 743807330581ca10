package production

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lagam-golang/internal/storage"
)

func newLagam(sizes []storage.SizeQuantity, sections ...string) storage.Lagam {
	blueprint := make([]storage.ProductionBlueprintSection, 0, len(sections))
	for _, name := range sections {
		blueprint = append(blueprint, storage.ProductionBlueprintSection{
			SectionName: name,
			PlannedOperations: []storage.Operation{
				{Descripcion: "coser", Maquina: "overlock", Tiempo: 2},
			},
		})
	}
	return storage.Lagam{
		LagamID: "LGM-1700000000000",
		ProductInfo: storage.ProductInfo{
			ProductName:   "Polo shirt",
			ProductCode:   "PL-01",
			Sizes:         sizes,
			TotalQuantity: storage.SumSizes(sizes),
		},
		ProductionBlueprint: blueprint,
	}
}

func newTask(id string, lagam storage.Lagam, section string, status storage.TaskStatus, planned, produced []storage.SizeQuantity) storage.ProductionTask {
	return storage.ProductionTask{
		ID:                     id,
		LagamID:                lagam.LagamID,
		SectionName:            section,
		Status:                 status,
		SizeQuantities:         planned,
		SizeQuantitiesProduced: produced,
		Quantity:               storage.SumSizes(planned),
		QuantityProduced:       storage.SumSizes(produced),
	}
}

func TestEffectiveProduced_CompletedUsesPlan(t *testing.T) {
	lagam := newLagam([]storage.SizeQuantity{{Size: "S", Quantity: 100}}, "Cutting")

	// Completed but nothing ever reported: still counts its full plan.
	task := newTask("TSK-1", lagam, "Cutting", storage.TaskCompleted,
		[]storage.SizeQuantity{{Size: "S", Quantity: 40}}, nil)

	got := EffectiveProduced(task)
	assert.Equal(t, 40, got.Total)
	assert.Equal(t, 40, got.BySize["S"])
}

func TestEffectiveProduced_InProgressUsesReported(t *testing.T) {
	lagam := newLagam([]storage.SizeQuantity{{Size: "S", Quantity: 100}}, "Cutting")

	task := newTask("TSK-1", lagam, "Cutting", storage.TaskInProgress,
		[]storage.SizeQuantity{{Size: "S", Quantity: 40}},
		[]storage.SizeQuantity{{Size: "S", Quantity: 15}})

	got := EffectiveProduced(task)
	assert.Equal(t, 15, got.Total)
	assert.Equal(t, 15, got.BySize["S"])
}

func TestReconcileSection_TwoTasks(t *testing.T) {
	lagam := newLagam([]storage.SizeQuantity{
		{Size: "S", Quantity: 100},
		{Size: "M", Quantity: 100},
	}, "Cutting")

	tasks := []storage.ProductionTask{
		newTask("TSK-A", lagam, "Cutting", storage.TaskInProgress,
			[]storage.SizeQuantity{{Size: "S", Quantity: 50}},
			[]storage.SizeQuantity{{Size: "S", Quantity: 30}}),
		newTask("TSK-B", lagam, "Cutting", storage.TaskCompleted,
			[]storage.SizeQuantity{{Size: "M", Quantity: 100}}, nil),
	}

	got := ReconcileSection(lagam, "Cutting", tasks)

	assert.Equal(t, "Cutting", got.SectionName)
	assert.Equal(t, 130, got.Produced)
	assert.Equal(t, 200, got.Planned)
	assert.False(t, got.IsCompleted)
	assert.Equal(t, []storage.SizeQuantity{
		{Size: "S", Quantity: 30},
		{Size: "M", Quantity: 100},
	}, got.ProducedBySize)
}

func TestReconcileSection_CompletionAndLagamStatus(t *testing.T) {
	lagam := newLagam([]storage.SizeQuantity{
		{Size: "S", Quantity: 100},
		{Size: "M", Quantity: 100},
	}, "Cutting")

	tasks := []storage.ProductionTask{
		newTask("TSK-A", lagam, "Cutting", storage.TaskInProgress,
			[]storage.SizeQuantity{{Size: "S", Quantity: 50}},
			[]storage.SizeQuantity{{Size: "S", Quantity: 30}}),
		newTask("TSK-B", lagam, "Cutting", storage.TaskCompleted,
			[]storage.SizeQuantity{{Size: "M", Quantity: 100}}, nil),
		newTask("TSK-C", lagam, "Cutting", storage.TaskCompleted,
			[]storage.SizeQuantity{{Size: "S", Quantity: 70}}, nil),
	}

	got := ReconcileSection(lagam, "Cutting", tasks)
	assert.Equal(t, 200, got.Produced)
	assert.True(t, got.IsCompleted)

	assert.Equal(t, storage.LagamCompleted, Status(lagam, tasks))
}

func TestReconcileSection_UnknownSizeDropped(t *testing.T) {
	lagam := newLagam([]storage.SizeQuantity{{Size: "S", Quantity: 100}}, "Cutting")

	tasks := []storage.ProductionTask{
		newTask("TSK-1", lagam, "Cutting", storage.TaskInProgress, nil,
			[]storage.SizeQuantity{{Size: "S", Quantity: 10}, {Size: "XXL", Quantity: 25}}),
	}

	got := ReconcileSection(lagam, "Cutting", tasks)
	assert.Equal(t, 10, got.Produced)
	assert.Equal(t, []storage.SizeQuantity{{Size: "S", Quantity: 10}}, got.ProducedBySize)
}

func TestReconcileSection_NoSizes(t *testing.T) {
	lagam := newLagam(nil, "Cutting")

	got := ReconcileSection(lagam, "Cutting", nil)
	assert.Equal(t, 0, got.Produced)
	assert.Empty(t, got.ProducedBySize)
}

func TestReconcileSection_Idempotent(t *testing.T) {
	lagam := newLagam([]storage.SizeQuantity{{Size: "S", Quantity: 100}}, "Cutting")
	tasks := []storage.ProductionTask{
		newTask("TSK-1", lagam, "Cutting", storage.TaskInProgress, nil,
			[]storage.SizeQuantity{{Size: "S", Quantity: 10}}),
	}

	first := ReconcileSection(lagam, "Cutting", tasks)
	second := ReconcileSection(lagam, "Cutting", tasks)
	assert.Equal(t, first, second)
	assert.Equal(t, 10, tasks[0].SizeQuantitiesProduced[0].Quantity)
}

func TestAvailableQuantity_CountsAllStatuses(t *testing.T) {
	lagam := newLagam([]storage.SizeQuantity{
		{Size: "S", Quantity: 100},
		{Size: "M", Quantity: 50},
	}, "Cutting")

	tasks := []storage.ProductionTask{
		newTask("TSK-1", lagam, "Cutting", storage.TaskPending,
			[]storage.SizeQuantity{{Size: "S", Quantity: 60}}, nil),
		newTask("TSK-2", lagam, "Cutting", storage.TaskCompleted,
			[]storage.SizeQuantity{{Size: "S", Quantity: 20}, {Size: "M", Quantity: 10}}, nil),
	}

	got := AvailableQuantity(lagam, "Cutting", tasks, "")
	assert.Equal(t, []SizeHeadroom{
		{Size: "S", Max: 20},
		{Size: "M", Max: 40},
	}, got)
}

func TestAvailableQuantity_ExcludesEditedTask(t *testing.T) {
	lagam := newLagam([]storage.SizeQuantity{{Size: "S", Quantity: 100}}, "Cutting")

	tasks := []storage.ProductionTask{
		newTask("TSK-1", lagam, "Cutting", storage.TaskPending,
			[]storage.SizeQuantity{{Size: "S", Quantity: 60}}, nil),
	}

	got := AvailableQuantity(lagam, "Cutting", tasks, "TSK-1")
	assert.Equal(t, []SizeHeadroom{{Size: "S", Max: 100}}, got)
}

func TestValidateTaskQuantities_RejectsOverScheduling(t *testing.T) {
	lagam := newLagam([]storage.SizeQuantity{{Size: "S", Quantity: 100}}, "Cutting")

	tasks := []storage.ProductionTask{
		newTask("TSK-1", lagam, "Cutting", storage.TaskPending,
			[]storage.SizeQuantity{{Size: "S", Quantity: 60}}, nil),
	}

	err := ValidateTaskQuantities(lagam, "Cutting", tasks, "",
		[]storage.SizeQuantity{{Size: "S", Quantity: 41}})

	var qerr *QuantityError
	assert.ErrorAs(t, err, &qerr)
	assert.Equal(t, "S", qerr.Size)
	assert.Equal(t, 41, qerr.Requested)
	assert.Equal(t, 40, qerr.Available)
	assert.Contains(t, qerr.Error(), `size "S"`)
}

func TestValidateTaskQuantities_UnknownSizeRejected(t *testing.T) {
	lagam := newLagam([]storage.SizeQuantity{{Size: "S", Quantity: 100}}, "Cutting")

	err := ValidateTaskQuantities(lagam, "Cutting", nil, "",
		[]storage.SizeQuantity{{Size: "XL", Quantity: 1}})

	var qerr *QuantityError
	assert.ErrorAs(t, err, &qerr)
	assert.Equal(t, "XL", qerr.Size)
}

func TestValidateTaskQuantities_WithinHeadroom(t *testing.T) {
	lagam := newLagam([]storage.SizeQuantity{{Size: "S", Quantity: 100}}, "Cutting")

	tasks := []storage.ProductionTask{
		newTask("TSK-1", lagam, "Cutting", storage.TaskPending,
			[]storage.SizeQuantity{{Size: "S", Quantity: 60}}, nil),
	}

	err := ValidateTaskQuantities(lagam, "Cutting", tasks, "",
		[]storage.SizeQuantity{{Size: "S", Quantity: 40}})
	assert.NoError(t, err)
}

package production

import (
	"fmt"

	"lagam-golang/internal/storage"
)

// SectionReconciliation reports how much of the lagam's order a single
// blueprint section has produced. Planned is the lagam's overall total
// quantity: every section is expected to eventually pass the full
// order through (sequential manufacturing stages, not parallel
// sub-assembly), so IsCompleted compares against that total.
type SectionReconciliation struct {
	SectionName    string                 `json:"sectionName"`
	Produced       int                    `json:"produced"`
	Planned        int                    `json:"planned"`
	IsCompleted    bool                   `json:"isCompleted"`
	ProducedBySize []storage.SizeQuantity `json:"producedBySize"`
}

// ReconcileSection sums effective production for one lagam section
// across all tasks. The size vocabulary is fixed by
// lagam.productInfo.sizes; contributions for sizes outside it are
// dropped. Pure over its inputs.
func ReconcileSection(lagam storage.Lagam, sectionName string, tasks []storage.ProductionTask) SectionReconciliation {
	producedBySize := make([]storage.SizeQuantity, 0, len(lagam.ProductInfo.Sizes))
	for _, size := range lagam.ProductInfo.Sizes {
		producedBySize = append(producedBySize, storage.SizeQuantity{Size: size.Size})
	}

	for _, task := range tasks {
		if task.LagamID != lagam.LagamID || task.SectionName != sectionName {
			continue
		}
		bySize := EffectiveProduced(task).BySize
		for i := range producedBySize {
			producedBySize[i].Quantity += bySize[producedBySize[i].Size]
		}
	}

	produced := storage.SumSizes(producedBySize)
	planned := lagam.ProductInfo.TotalQuantity

	return SectionReconciliation{
		SectionName:    sectionName,
		Produced:       produced,
		Planned:        planned,
		IsCompleted:    produced >= planned,
		ProducedBySize: producedBySize,
	}
}

// SizeHeadroom is the remaining schedulable quantity for one size.
type SizeHeadroom struct {
	Size string `json:"size"`
	Max  int    `json:"max"`
}

// AvailableQuantity computes per-size headroom for scheduling new work
// in a section. Allocation counts the planned sizeQuantities of every
// task regardless of status; excludeTaskID carves out the task being
// edited so its own allocation does not count against it.
func AvailableQuantity(lagam storage.Lagam, sectionName string, tasks []storage.ProductionTask, excludeTaskID string) []SizeHeadroom {
	scheduled := make(map[string]int)
	for _, task := range tasks {
		if task.LagamID != lagam.LagamID || task.SectionName != sectionName {
			continue
		}
		if excludeTaskID != "" && task.ID == excludeTaskID {
			continue
		}
		for _, sq := range task.SizeQuantities {
			scheduled[sq.Size] += sq.Quantity
		}
	}

	headroom := make([]SizeHeadroom, 0, len(lagam.ProductInfo.Sizes))
	for _, size := range lagam.ProductInfo.Sizes {
		headroom = append(headroom, SizeHeadroom{
			Size: size.Size,
			Max:  size.Quantity - scheduled[size.Size],
		})
	}
	return headroom
}

// QuantityError rejects a scheduling request that exceeds the
// remaining headroom for a size. Never silently clamped.
type QuantityError struct {
	Size      string
	Requested int
	Available int
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("size %q: requested %d units but only %d available", e.Size, e.Requested, e.Available)
}

// ValidateTaskQuantities checks a requested allocation against the
// section's headroom. Sizes outside the lagam's vocabulary have no
// headroom, so any positive request for them is rejected too.
func ValidateTaskQuantities(lagam storage.Lagam, sectionName string, tasks []storage.ProductionTask, excludeTaskID string, requested []storage.SizeQuantity) error {
	headroom := AvailableQuantity(lagam, sectionName, tasks, excludeTaskID)
	max := make(map[string]int, len(headroom))
	known := make(map[string]bool, len(headroom))
	for _, h := range headroom {
		max[h.Size] = h.Max
		known[h.Size] = true
	}

	for _, sq := range requested {
		if sq.Quantity <= 0 {
			continue
		}
		if !known[sq.Size] || sq.Quantity > max[sq.Size] {
			return &QuantityError{Size: sq.Size, Requested: sq.Quantity, Available: max[sq.Size]}
		}
	}
	return nil
}

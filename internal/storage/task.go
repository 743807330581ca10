package storage

type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
	TaskCancelled  TaskStatus = "Cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskCancelled:
		return true
	}
	return false
}

// ProductionTask is one scheduled work slot for a lagam section.
// Quantity must equal the sum of SizeQuantities, QuantityProduced the
// sum of SizeQuantitiesProduced; callers recompute both on mutation.
// OperationStatus carries one done-flag per planned operation of the
// section (completion checklist).
type ProductionTask struct {
	ID                     string         `json:"id"`
	LagamID                string         `json:"lagamId"`
	SectionName            string         `json:"sectionName"`
	TeamMemberID           string         `json:"teamMemberId,omitempty"`
	Date                   string         `json:"date,omitempty"`
	TimeSlot               string         `json:"timeSlot,omitempty"`
	Status                 TaskStatus     `json:"status"`
	SizeQuantities         []SizeQuantity `json:"sizeQuantities"`
	SizeQuantitiesProduced []SizeQuantity `json:"sizeQuantitiesProduced"`
	Quantity               int            `json:"quantity"`
	QuantityProduced       int            `json:"quantityProduced"`
	EstimatedTime          float64        `json:"estimatedTime"`
	ActualTime             *float64       `json:"actualTime"`
	OperationStatus        []bool         `json:"operationStatus"`
}

// RecomputeTotals keeps the scalar quantity fields in sync with the
// size breakdowns.
func (t *ProductionTask) RecomputeTotals() {
	t.Quantity = SumSizes(t.SizeQuantities)
	t.QuantityProduced = SumSizes(t.SizeQuantitiesProduced)
}

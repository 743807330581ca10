package storage

type LagamStatus string

const (
	LagamDraft     LagamStatus = "Draft"
	LagamActive    LagamStatus = "Active"
	LagamCompleted LagamStatus = "Completed"
)

// SizeQuantity pairs a size label with a unit count. An empty size
// label means the product has no size breakdown.
type SizeQuantity struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

func SumSizes(sizes []SizeQuantity) int {
	total := 0
	for _, s := range sizes {
		total += s.Quantity
	}
	return total
}

type ProductInfo struct {
	ProductName       string         `json:"productName"`
	ProductCode       string         `json:"productCode"`
	Sizes             []SizeQuantity `json:"sizes"`
	TotalQuantity     int            `json:"totalQuantity"`
	TotalStandardTime string         `json:"totalStandardTime,omitempty"`
}

// RecomputeTotal keeps totalQuantity equal to the sum of sizes.
// Must be called on every mutation of Sizes.
func (p *ProductInfo) RecomputeTotal() {
	p.TotalQuantity = SumSizes(p.Sizes)
}

type LagamTeamInfo struct {
	AssignedTeamID   string `json:"assignedTeamId"`
	AssignedTeamName string `json:"assignedTeamName"`
	TeamMemberCount  int    `json:"teamMemberCount"`
	OperatorCount    int    `json:"operatorCount"`
	ManagerName      string `json:"managerName"`
}

type AssignedOperator struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductionBlueprintSection is one manufacturing stage of a lagam.
// An empty AssignedOperators list means the section is open to the
// whole assigned team.
type ProductionBlueprintSection struct {
	SectionName       string             `json:"sectionName"`
	AssignedOperators []AssignedOperator `json:"assignedOperators"`
	PlannedOperations []Operation        `json:"plannedOperations"`
}

// Lagam is a production order. Status is derived from tasks, never
// stored authoritatively.
type Lagam struct {
	LagamID             string                       `json:"lagamId"`
	ProductInfo         ProductInfo                  `json:"productInfo"`
	TeamInfo            LagamTeamInfo                `json:"teamInfo"`
	ProductionBlueprint []ProductionBlueprintSection `json:"productionBlueprint"`
}

// Section finds a blueprint section by name. Section names are unique
// within a lagam.
func (l Lagam) Section(name string) (ProductionBlueprintSection, bool) {
	for _, s := range l.ProductionBlueprint {
		if s.SectionName == name {
			return s, true
		}
	}
	return ProductionBlueprintSection{}, false
}

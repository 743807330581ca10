package production

import "lagam-golang/internal/storage"

// Status derives a lagam's lifecycle state from its tasks. Draft means
// no task references the lagam at all; Completed means every blueprint
// section reconciles complete. This is the authoritative rule and
// gates new-task creation.
func Status(lagam storage.Lagam, tasks []storage.ProductionTask) storage.LagamStatus {
	referenced := false
	for _, task := range tasks {
		if task.LagamID == lagam.LagamID {
			referenced = true
			break
		}
	}
	if !referenced {
		return storage.LagamDraft
	}

	if len(lagam.ProductionBlueprint) == 0 {
		return storage.LagamActive
	}
	for _, section := range lagam.ProductionBlueprint {
		if !ReconcileSection(lagam, section.SectionName, tasks).IsCompleted {
			return storage.LagamActive
		}
	}
	return storage.LagamCompleted
}

// DisplayStatus is the cheaper approximation used by the dashboard
// list: total effective production across all of the lagam's tasks
// against the order total, without per-section reconciliation. Display
// only; never use it to gate writes.
func DisplayStatus(lagam storage.Lagam, tasks []storage.ProductionTask) storage.LagamStatus {
	referenced := false
	produced := 0
	for _, task := range tasks {
		if task.LagamID != lagam.LagamID {
			continue
		}
		referenced = true
		produced += EffectiveProduced(task).Total
	}
	if !referenced {
		return storage.LagamDraft
	}
	if produced >= lagam.ProductInfo.TotalQuantity {
		return storage.LagamCompleted
	}
	return storage.LagamActive
}

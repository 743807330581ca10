package storage

// Operation is a single catalog operation. Tiempo is the standard time
// per unit in minutes. Field names follow the floor's terminology.
type Operation struct {
	Descripcion string  `json:"descripcion"`
	Maquina     string  `json:"maquina"`
	Tiempo      float64 `json:"tiempo"`
}

// CatalogSection is keyed by its section name.
type CatalogSection struct {
	Seccion     string      `json:"seccion"`
	Operaciones []Operation `json:"operaciones"`
}

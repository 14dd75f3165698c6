package entities

// DetectionResult is what one detection request produces. It is never
// persisted; saving a remedy back into the solutions table is a separate,
// explicit admin action.
type DetectionResult struct {
	Disease          string  `json:"disease"`
	Confidence       float64 `json:"confidence"`
	OrganicSolution  string  `json:"organicSolution"`
	ChemicalSolution string  `json:"chemicalSolution"`
}

package docs

import "fmt"

// StructuredNote is the structured result of a generate_structured_note
// operation: a SOAP note broken into its four sections plus billing codes.
type StructuredNote struct {
	Subjective string   `json:"subjective"`
	Objective  string   `json:"objective"`
	Assessment string   `json:"assessment"`
	Plan       string   `json:"plan"`
	ICDCodes   []string `json:"icdCodes"`
	CPTCodes   []string `json:"cptCodes"`
}

// Validate rejects a note missing any of its four sections. A structured
// note with an empty section is upstream output that failed the contract.
func (n *StructuredNote) Validate() error {
	sections := map[string]string{
		"subjective": n.Subjective,
		"objective":  n.Objective,
		"assessment": n.Assessment,
		"plan":       n.Plan,
	}
	for _, name := range []string{"subjective", "objective", "assessment", "plan"} {
		if sections[name] == "" {
			return fmt.Errorf("structured note missing %s section", name)
		}
	}
	return nil
}

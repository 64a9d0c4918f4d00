package clinicalai

import "fmt"

// RiskLevel is the overall patient risk stratification.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RecommendationCategory classifies a clinical recommendation.
type RecommendationCategory string

const (
	CategoryDiagnostic RecommendationCategory = "diagnostic"
	CategoryTreatment  RecommendationCategory = "treatment"
	CategoryMonitoring RecommendationCategory = "monitoring"
	CategoryReferral   RecommendationCategory = "referral"
)

// RecommendationPriority orders recommendations by urgency.
type RecommendationPriority string

const (
	PriorityLow    RecommendationPriority = "low"
	PriorityMedium RecommendationPriority = "medium"
	PriorityHigh   RecommendationPriority = "high"
	PriorityUrgent RecommendationPriority = "urgent"
)

// DiagnosisProbability grades a differential diagnosis candidate.
type DiagnosisProbability string

const (
	ProbabilityLow      DiagnosisProbability = "low"
	ProbabilityModerate DiagnosisProbability = "moderate"
	ProbabilityHigh     DiagnosisProbability = "high"
)

// AlertType classifies a clinical alert.
type AlertType string

const (
	AlertDrugInteraction  AlertType = "drug_interaction"
	AlertAllergy          AlertType = "allergy"
	AlertContraindication AlertType = "contraindication"
	AlertCriticalValue    AlertType = "critical_value"
)

// AlertSeverity grades a clinical alert.
type AlertSeverity string

const (
	AlertSeverityLow      AlertSeverity = "low"
	AlertSeverityMedium   AlertSeverity = "medium"
	AlertSeverityHigh     AlertSeverity = "high"
	AlertSeverityCritical AlertSeverity = "critical"
)

// InteractionSeverity grades a pairwise drug interaction.
type InteractionSeverity string

const (
	InteractionMinor           InteractionSeverity = "minor"
	InteractionModerate        InteractionSeverity = "moderate"
	InteractionMajor           InteractionSeverity = "major"
	InteractionContraindicated InteractionSeverity = "contraindicated"
)

// InteractionRisk is the overall risk across all detected interactions.
type InteractionRisk string

const (
	InteractionRiskLow      InteractionRisk = "low"
	InteractionRiskModerate InteractionRisk = "moderate"
	InteractionRiskHigh     InteractionRisk = "high"
	InteractionRiskCritical InteractionRisk = "critical"
)

// ClinicalAssessment is the structured result of a clinical_assessment
// operation. Created fresh per request and never mutated.
type ClinicalAssessment struct {
	RiskLevel             RiskLevel               `json:"riskLevel"`
	PrimaryConcerns       []string                `json:"primaryConcerns"`
	Recommendations       []Recommendation        `json:"recommendations"`
	DifferentialDiagnosis []DifferentialDiagnosis `json:"differentialDiagnosis"`
	Alerts                []ClinicalAlert         `json:"alerts"`
}

type Recommendation struct {
	Category  RecommendationCategory `json:"category"`
	Priority  RecommendationPriority `json:"priority"`
	Action    string                 `json:"action"`
	Rationale string                 `json:"rationale"`
}

type DifferentialDiagnosis struct {
	Condition         string               `json:"condition"`
	Probability       DiagnosisProbability `json:"probability"`
	SupportingFactors []string             `json:"supportingFactors"`
	AdditionalTests   []string             `json:"additionalTests,omitempty"`
}

type ClinicalAlert struct {
	Type     AlertType     `json:"type"`
	Severity AlertSeverity `json:"severity"`
	Message  string        `json:"message"`
	Action   string        `json:"action"`
}

// DrugInteractionReport is the structured result of a drug_interaction
// operation.
type DrugInteractionReport struct {
	Interactions    []DrugInteraction `json:"interactions"`
	OverallRisk     InteractionRisk   `json:"overallRisk"`
	Recommendations []string          `json:"recommendations"`
}

type DrugInteraction struct {
	Drug1          string              `json:"drug1"`
	Drug2          string              `json:"drug2"`
	Severity       InteractionSeverity `json:"severity"`
	Description    string              `json:"description"`
	ClinicalEffect string              `json:"clinicalEffect"`
	Management     string              `json:"management"`
	Alternatives   []string            `json:"alternatives,omitempty"`
}

// Validate checks every enum field against its closed set. An out-of-set
// value means the upstream output violated the declared schema.
func (a *ClinicalAssessment) Validate() error {
	switch a.RiskLevel {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
	default:
		return fmt.Errorf("riskLevel %q outside closed set", a.RiskLevel)
	}
	for i, rec := range a.Recommendations {
		switch rec.Category {
		case CategoryDiagnostic, CategoryTreatment, CategoryMonitoring, CategoryReferral:
		default:
			return fmt.Errorf("recommendations[%d].category %q outside closed set", i, rec.Category)
		}
		switch rec.Priority {
		case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		default:
			return fmt.Errorf("recommendations[%d].priority %q outside closed set", i, rec.Priority)
		}
	}
	for i, dd := range a.DifferentialDiagnosis {
		switch dd.Probability {
		case ProbabilityLow, ProbabilityModerate, ProbabilityHigh:
		default:
			return fmt.Errorf("differentialDiagnosis[%d].probability %q outside closed set", i, dd.Probability)
		}
	}
	for i, alert := range a.Alerts {
		switch alert.Type {
		case AlertDrugInteraction, AlertAllergy, AlertContraindication, AlertCriticalValue:
		default:
			return fmt.Errorf("alerts[%d].type %q outside closed set", i, alert.Type)
		}
		switch alert.Severity {
		case AlertSeverityLow, AlertSeverityMedium, AlertSeverityHigh, AlertSeverityCritical:
		default:
			return fmt.Errorf("alerts[%d].severity %q outside closed set", i, alert.Severity)
		}
	}
	return nil
}

// Validate checks every enum field against its closed set.
func (r *DrugInteractionReport) Validate() error {
	switch r.OverallRisk {
	case InteractionRiskLow, InteractionRiskModerate, InteractionRiskHigh, InteractionRiskCritical:
	default:
		return fmt.Errorf("overallRisk %q outside closed set", r.OverallRisk)
	}
	for i, in := range r.Interactions {
		switch in.Severity {
		case InteractionMinor, InteractionModerate, InteractionMajor, InteractionContraindicated:
		default:
			return fmt.Errorf("interactions[%d].severity %q outside closed set", i, in.Severity)
		}
	}
	return nil
}

package clinicalai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validAssessment() ClinicalAssessment {
	return ClinicalAssessment{
		RiskLevel:       RiskHigh,
		PrimaryConcerns: []string{"possible acute coronary syndrome"},
		Recommendations: []Recommendation{
			{Category: CategoryDiagnostic, Priority: PriorityUrgent, Action: "12-lead ECG", Rationale: "chest pain with risk factors"},
		},
		DifferentialDiagnosis: []DifferentialDiagnosis{
			{Condition: "unstable angina", Probability: ProbabilityModerate, SupportingFactors: []string{"exertional pain"}},
		},
		Alerts: []ClinicalAlert{
			{Type: AlertCriticalValue, Severity: AlertSeverityHigh, Message: "elevated troponin", Action: "repeat in 3h"},
		},
	}
}

func TestClinicalAssessmentValidate(t *testing.T) {
	a := validAssessment()
	assert.NoError(t, a.Validate())

	a = validAssessment()
	a.RiskLevel = "catastrophic"
	assert.ErrorContains(t, a.Validate(), "riskLevel")

	a = validAssessment()
	a.Recommendations[0].Category = "surgical"
	assert.ErrorContains(t, a.Validate(), "category")

	a = validAssessment()
	a.Recommendations[0].Priority = ""
	assert.ErrorContains(t, a.Validate(), "priority")

	a = validAssessment()
	a.DifferentialDiagnosis[0].Probability = "certain"
	assert.ErrorContains(t, a.Validate(), "probability")

	a = validAssessment()
	a.Alerts[0].Type = "reminder"
	assert.ErrorContains(t, a.Validate(), "type")

	a = validAssessment()
	a.Alerts[0].Severity = "extreme"
	assert.ErrorContains(t, a.Validate(), "severity")
}

func TestDrugInteractionReportValidate(t *testing.T) {
	r := DrugInteractionReport{
		Interactions: []DrugInteraction{
			{
				Drug1:          "lisinopril",
				Drug2:          "ibuprofen",
				Severity:       InteractionModerate,
				Description:    "NSAIDs blunt the antihypertensive effect of ACE inhibitors",
				ClinicalEffect: "reduced blood pressure control, renal impairment risk",
				Management:     "monitor blood pressure and renal function",
			},
		},
		OverallRisk:     InteractionRiskModerate,
		Recommendations: []string{"consider acetaminophen instead"},
	}
	assert.NoError(t, r.Validate())

	// A missing required enum decodes as the zero value and must be rejected.
	r.OverallRisk = ""
	assert.ErrorContains(t, r.Validate(), "overallRisk")

	r.OverallRisk = InteractionRiskLow
	r.Interactions[0].Severity = "extreme"
	assert.ErrorContains(t, r.Validate(), "severity")

	// Empty interaction list with a valid overall risk is fine.
	r = DrugInteractionReport{OverallRisk: InteractionRiskLow, Recommendations: []string{}}
	assert.NoError(t, r.Validate())
}

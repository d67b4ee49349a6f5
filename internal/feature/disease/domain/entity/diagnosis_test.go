package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnose_Healthy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		isPlant  float64
		wantConf int
	}{
		{"uses is_plant probability", 0.987, 99},
		{"missing probability defaults to 90", 0, 90},
		{"rounds half up", 0.725, 73},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := Diagnose(HealthAssessment{IsPlantProbability: tt.isPlant})

			assert.Equal(t, "Healthy Plant", d.Name)
			assert.Equal(t, tt.wantConf, d.Confidence)
			assert.Equal(t, SeverityLow, d.Severity)
			assert.Equal(t, "No visible disease detected.", d.Description)
			assert.Equal(t, []string{}, d.Treatment)
			assert.Equal(t, []string{"Maintain proper watering schedule", "Ensure adequate sunlight", "Monitor leaves weekly"}, d.Prevention)
		})
	}
}

func TestDiagnose_Disease(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		suggestion   DiseaseSuggestion
		wantConf     int
		wantSeverity Severity
		wantDesc     string
		wantTreat    []string
	}{
		{
			name:         "high severity above 80",
			suggestion:   DiseaseSuggestion{Name: "Late blight", Probability: 0.81, Description: "Caused by Phytophthora.", Treatment: []string{"Copper spray"}},
			wantConf:     81,
			wantSeverity: SeverityHigh,
			wantDesc:     "Caused by Phytophthora.",
			wantTreat:    []string{"Copper spray"},
		},
		{
			name:         "exactly 80 is medium",
			suggestion:   DiseaseSuggestion{Name: "Rust", Probability: 0.8},
			wantConf:     80,
			wantSeverity: SeverityMedium,
			wantDesc:     "Disease detected.",
			wantTreat:    []string{"Apply recommended fungicide"},
		},
		{
			name:         "exactly 50 is medium",
			suggestion:   DiseaseSuggestion{Name: "Mildew", Probability: 0.5},
			wantConf:     50,
			wantSeverity: SeverityMedium,
			wantDesc:     "Disease detected.",
			wantTreat:    []string{"Apply recommended fungicide"},
		},
		{
			name:         "below 50 is low",
			suggestion:   DiseaseSuggestion{Name: "Leaf spot", Probability: 0.494, Treatment: []string{}},
			wantConf:     49,
			wantSeverity: SeverityLow,
			wantDesc:     "Disease detected.",
			wantTreat:    []string{},
		},
		{
			name:         "missing probability defaults to 50",
			suggestion:   DiseaseSuggestion{Name: "Unknown fungus"},
			wantConf:     50,
			wantSeverity: SeverityMedium,
			wantDesc:     "Disease detected.",
			wantTreat:    []string{"Apply recommended fungicide"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := Diagnose(HealthAssessment{
				IsPlantProbability: 0.99,
				Suggestions:        []DiseaseSuggestion{tt.suggestion, {Name: "second", Probability: 0.1}},
			})

			assert.Equal(t, tt.suggestion.Name, d.Name)
			assert.Equal(t, tt.wantConf, d.Confidence)
			assert.Equal(t, tt.wantSeverity, d.Severity)
			assert.Equal(t, tt.wantDesc, d.Description)
			assert.Equal(t, tt.wantTreat, d.Treatment)
			assert.Equal(t, []string{"Avoid overwatering", "Ensure proper drainage", "Use certified seeds"}, d.Prevention)
		})
	}
}

func TestSeverity_Label(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Healthy / Low Risk", SeverityLow.Label())
	assert.Equal(t, "Moderate Disease", SeverityMedium.Label())
	assert.Equal(t, "Severe Infection", SeverityHigh.Label())
}

// Package entity defines the domain models for the yield feature.
package entity

// Rating is the qualitative yield tier.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingAverage   Rating = "average"
	RatingPoor      Rating = "poor"
)

// Label returns the human readable headline for the rating.
func (r Rating) Label() string {
	switch r {
	case RatingExcellent:
		return "Excellent Yield Expected"
	case RatingGood:
		return "Good Yield Expected"
	case RatingAverage:
		return "Average Yield Expected"
	default:
		return "Below Average — Action Needed"
	}
}

const (
	UnitTonsPerAcre    = "tons/acre"
	UnitTonsPerHectare = "tons/hectare"
)

// YieldQuery is the input of a single estimate.
// SoilCategory is independent of the soil feature's three labels.
type YieldQuery struct {
	Crop         string
	SoilCategory string
	RainfallMm   float64
	TemperatureC float64
}

// YieldEstimate is the deterministic output for a YieldQuery.
type YieldEstimate struct {
	Crop       string
	Yield      float64 // one decimal place
	Unit       string
	Confidence int // 60..95
	Rating     Rating
	Advice     []string // always three entries
}

// Crops lists the crops offered by the estimator form.
var Crops = []string{
	"Wheat", "Rice", "Maize", "Sugarcane", "Cotton",
	"Soybean", "Groundnut", "Mustard", "Barley", "Chickpea",
}

// SoilCategories lists the soil options of the estimator form.
var SoilCategories = []string{
	"Alluvial", "Black (Regur)", "Red & Yellow", "Laterite",
	"Arid/Desert", "Forest & Mountain", "Peaty & Marshy",
}

// States lists the states offered by the estimator form.
var States = []string{
	"Andhra Pradesh", "Bihar", "Gujarat", "Haryana", "Karnataka",
	"Madhya Pradesh", "Maharashtra", "Punjab", "Rajasthan",
	"Tamil Nadu", "Telangana", "Uttar Pradesh", "West Bengal",
}

// DefaultBaseYield is used for crops missing from the base yield table.
const DefaultBaseYield = 2.5

var baseYields = map[string]float64{
	"Wheat":     3.2,
	"Rice":      4.5,
	"Maize":     3.8,
	"Sugarcane": 65,
	"Cotton":    1.8,
	"Soybean":   2.1,
	"Groundnut": 1.9,
	"Mustard":   1.5,
	"Barley":    2.8,
	"Chickpea":  1.3,
}

// BaseYield returns the per-crop base yield, falling back to DefaultBaseYield.
func BaseYield(crop string) float64 {
	if v, ok := baseYields[crop]; ok {
		return v
	}
	return DefaultBaseYield
}

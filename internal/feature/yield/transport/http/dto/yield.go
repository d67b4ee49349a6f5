// Package dto defines data transfer objects for the yield HTTP API.
package dto

// EstimateRequest is the body of POST /v1/yield/estimate.
// Pointers distinguish a missing number from zero.
type EstimateRequest struct {
	Crop         string   `json:"crop" binding:"required"`
	SoilType     string   `json:"soil_type" binding:"required"`
	State        string   `json:"state" binding:"required"`
	RainfallMm   *float64 `json:"rainfall_mm" binding:"required,gte=0"`
	TemperatureC *float64 `json:"temperature_c" binding:"required"`
	AreaHectares *float64 `json:"area_hectares" binding:"required,gt=0"`
}

// EstimateResponse is the simulated yield.
type EstimateResponse struct {
	Crop         string   `json:"crop"`
	State        string   `json:"state"`
	AreaHectares float64  `json:"area_hectares"`
	Yield        float64  `json:"yield"`
	YieldText    string   `json:"yield_text"`
	Unit         string   `json:"unit"`
	Confidence   int      `json:"confidence"`
	Rating       string   `json:"rating"`
	RatingLabel  string   `json:"rating_label"`
	Advice       []string `json:"advice"`
}

// OptionsResponse lists the selectable form values.
type OptionsResponse struct {
	Crops     []string `json:"crops"`
	SoilTypes []string `json:"soil_types"`
	States    []string `json:"states"`
}

package dto

// TipsRequest は POST /v1/advisor/tips のリクエストです。
type TipsRequest struct {
	Crop string `json:"crop" binding:"required"`
	Soil string `json:"soil" binding:"required"`
}

// TipsResponse は栽培アドバイスのレスポンスです。
type TipsResponse struct {
	Crop    string `json:"crop"`
	Soil    string `json:"soil"`
	Summary string `json:"summary"`
}

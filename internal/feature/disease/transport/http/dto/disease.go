package dto

// HealthRequest は POST /v1/health のリクエストボディです。
// image はbase64（データURLも可）です。
type HealthRequest struct {
	Image string `json:"image" binding:"required"`
}

// DiagnosisResponse は診断結果です。
type DiagnosisResponse struct {
	Name          string   `json:"name"`
	Confidence    int      `json:"confidence"`
	Severity      string   `json:"severity"`
	SeverityLabel string   `json:"severity_label"`
	Description   string   `json:"description"`
	Treatment     []string `json:"treatment"`
	Prevention    []string `json:"prevention"`
}

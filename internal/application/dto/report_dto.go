package dto

// CreateControlReportRequest body for POST /api/projects/:id/reports.
type CreateControlReportRequest struct {
	Number             string                     `json:"number" validate:"required"`
	InspectorName      string                     `json:"inspector_name" validate:"required"`
	Date               string                     `json:"date" validate:"required,datetime=2006-01-02"`
	Items              []ControlReportItemRequest `json:"items" validate:"required,min=1,dive"`
	ConclusionMarkdown string                     `json:"conclusion_markdown,omitempty"`
}

// UpdateControlReportRequest body for PUT /api/reports/:id.
type UpdateControlReportRequest struct {
	InspectorName      string                     `json:"inspector_name" validate:"required"`
	Date               string                     `json:"date" validate:"required,datetime=2006-01-02"`
	Items              []ControlReportItemRequest `json:"items" validate:"required,min=1,dive"`
	ConclusionMarkdown string                     `json:"conclusion_markdown,omitempty"`
}

// ControlReportItemRequest one inspected position.
type ControlReportItemRequest struct {
	Text   string `json:"text" validate:"required"`
	Result string `json:"result" validate:"required,oneof=OK DEFICIENT N_A"`
	Remark string `json:"remark,omitempty"`
}

// ControlReportResponse report with items for GET /api/reports/:id.
type ControlReportResponse struct {
	ID                 string                      `json:"id"`
	ProjectID          string                      `json:"project_id"`
	Number             string                      `json:"number"`
	InspectorName      string                      `json:"inspector_name"`
	Date               string                      `json:"date"`
	Items              []ControlReportItemResponse `json:"items"`
	ConclusionMarkdown string                      `json:"conclusion_markdown,omitempty"`
}

// ControlReportItemResponse one inspected position in the response.
type ControlReportItemResponse struct {
	Position int    `json:"position"`
	Text     string `json:"text"`
	Result   string `json:"result"`
	Remark   string `json:"remark,omitempty"`
}

package entity

import "time"

// Finding results for a control report item (NIV/OIBT inspection).
const (
	FindingOK            = "OK"
	FindingDeficient     = "DEFICIENT"
	FindingNotApplicable = "N_A"
)

// ControlReport is the protocol of a periodic electrical installation
// inspection on a project.
type ControlReport struct {
	ID                 string
	CompanyID          string
	ProjectID          string
	Number             string
	InspectorName      string
	Date               time.Time
	Items              []ControlReportItem
	ConclusionMarkdown string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ControlReportItem is one inspected position.
type ControlReportItem struct {
	ID       string
	ReportID string
	Position int
	Text     string // what was inspected
	Result   string // FindingOK | FindingDeficient | FindingNotApplicable
	Remark   string
}

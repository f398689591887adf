package enums

import "fmt"

// ReportStatus tracks where a submission sits. The set is flat: staff may move
// a report to any value, there is no enforced transition graph.
type ReportStatus string

const (
	ReportStatusPending           ReportStatus = "pending"
	ReportStatusSubmitted         ReportStatus = "submitted"
	ReportStatusLate              ReportStatus = "late"
	ReportStatusApproved          ReportStatus = "approved"
	ReportStatusRevisionRequested ReportStatus = "revision_requested"
)

var validReportStatuses = []ReportStatus{
	ReportStatusPending,
	ReportStatusSubmitted,
	ReportStatusLate,
	ReportStatusApproved,
	ReportStatusRevisionRequested,
}

// String implements fmt.Stringer.
func (r ReportStatus) String() string {
	return string(r)
}

// IsValid reports whether the value matches a known ReportStatus.
func (r ReportStatus) IsValid() bool {
	for _, candidate := range validReportStatuses {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseReportStatus converts raw input into a ReportStatus.
func ParseReportStatus(value string) (ReportStatus, error) {
	for _, candidate := range validReportStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid report status %q", value)
}

package enums

import "fmt"

// ReportAction records the staff follow-up requested on a submission.
type ReportAction string

const (
	ReportActionNone            ReportAction = "none"
	ReportActionSendReminder    ReportAction = "send_reminder"
	ReportActionApprove         ReportAction = "approve"
	ReportActionRequestRevision ReportAction = "request_revision"
)

var validReportActions = []ReportAction{
	ReportActionNone,
	ReportActionSendReminder,
	ReportActionApprove,
	ReportActionRequestRevision,
}

// String implements fmt.Stringer.
func (r ReportAction) String() string {
	return string(r)
}

// IsValid reports whether the value matches a known ReportAction.
func (r ReportAction) IsValid() bool {
	for _, candidate := range validReportActions {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseReportAction converts raw input into a ReportAction.
func ParseReportAction(value string) (ReportAction, error) {
	for _, candidate := range validReportActions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid report action %q", value)
}

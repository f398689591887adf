package enums

import "testing"

func TestMemberStatusValidation(t *testing.T) {
	for _, status := range []MemberStatus{MemberStatusActive, MemberStatusInactive, MemberStatusRemoved} {
		if !status.IsValid() {
			t.Fatalf("expected %q to be valid", status)
		}
	}
	if MemberStatus("archived").IsValid() {
		t.Fatalf("expected unknown status to be invalid")
	}

	parsed, err := ParseMemberStatus("removed")
	if err != nil || parsed != MemberStatusRemoved {
		t.Fatalf("expected removed to parse, got %q err=%v", parsed, err)
	}
	if _, err := ParseMemberStatus("banned"); err == nil {
		t.Fatalf("expected parse failure for unknown status")
	}
}

func TestContentTypeValidation(t *testing.T) {
	for _, ct := range []ContentType{ContentTypeTask, ContentTypeQuiz, ContentTypePlaylist} {
		if !ct.IsValid() {
			t.Fatalf("expected %q to be valid", ct)
		}
	}
	if ContentType("video").IsValid() {
		t.Fatalf("expected unknown content type to be invalid")
	}
}

func TestReportStatusValidation(t *testing.T) {
	valid := []ReportStatus{
		ReportStatusPending,
		ReportStatusSubmitted,
		ReportStatusLate,
		ReportStatusApproved,
		ReportStatusRevisionRequested,
	}
	for _, status := range valid {
		if !status.IsValid() {
			t.Fatalf("expected %q to be valid", status)
		}
	}
	if ReportStatus("rejected").IsValid() {
		t.Fatalf("expected unknown report status to be invalid")
	}
}

func TestReportActionValidation(t *testing.T) {
	valid := []ReportAction{
		ReportActionNone,
		ReportActionSendReminder,
		ReportActionApprove,
		ReportActionRequestRevision,
	}
	for _, action := range valid {
		if !action.IsValid() {
			t.Fatalf("expected %q to be valid", action)
		}
	}
	if _, err := ParseReportAction("escalate"); err == nil {
		t.Fatalf("expected parse failure for unknown action")
	}
}

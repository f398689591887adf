package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/memberhubhq/memberhub-backend/internal/testdb"
	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	"github.com/memberhubhq/memberhub-backend/pkg/enums"
	"gorm.io/gorm"
)

func seedGraph(t *testing.T, conn *gorm.DB) (*models.Content, *models.Member, *models.Report) {
	t.Helper()
	member := &models.Member{
		MemberName:   "Dana",
		Email:        "dana@example.com",
		PasswordHash: "hash",
		Role:         "Member",
		Status:       enums.MemberStatusActive,
	}
	if err := conn.Create(member).Error; err != nil {
		t.Fatalf("seed member: %v", err)
	}
	content := &models.Content{Title: "Week 1", ContentType: enums.ContentTypeTask, CreatedAt: time.Now().UTC()}
	if err := conn.Create(content).Error; err != nil {
		t.Fatalf("seed content: %v", err)
	}
	report := &models.Report{
		ContentID:   content.ID,
		SubmittedBy: member.ID,
		Title:       "entry",
		Status:      enums.ReportStatusPending,
		Action:      enums.ReportActionNone,
	}
	if err := conn.Create(report).Error; err != nil {
		t.Fatalf("seed report: %v", err)
	}
	return content, member, report
}

func TestReportRepositoryListRowsJoinsParents(t *testing.T) {
	conn := testdb.Open(t)
	repo := NewRepository(conn)

	content, member, report := seedGraph(t, conn)

	rows, err := repo.ListRows(context.Background())
	if err != nil {
		t.Fatalf("list rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row got %d", len(rows))
	}
	row := rows[0]
	if row.ID != report.ID || row.ContentID != content.ID || row.SubmittedBy != member.ID {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row.ContentTitle == nil || *row.ContentTitle != "Week 1" {
		t.Fatalf("content title not joined: %+v", row)
	}
	if row.SubmittedByName == nil || *row.SubmittedByName != "Dana" {
		t.Fatalf("member name not joined: %+v", row)
	}
	if row.Status != enums.ReportStatusPending || row.Action != enums.ReportActionNone {
		t.Fatalf("unexpected state: %+v", row)
	}
}

func TestReportRepositoryFindRowByIDMissing(t *testing.T) {
	conn := testdb.Open(t)
	repo := NewRepository(conn)

	_, err := repo.FindRowByID(context.Background(), 404)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestReportRepositoryParentExistence(t *testing.T) {
	conn := testdb.Open(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	content, member, _ := seedGraph(t, conn)

	ok, err := repo.ContentExists(ctx, content.ID)
	if err != nil || !ok {
		t.Fatalf("expected content to exist: %v", err)
	}
	ok, err = repo.MemberExists(ctx, member.ID)
	if err != nil || !ok {
		t.Fatalf("expected member to exist: %v", err)
	}
	ok, err = repo.ContentExists(ctx, 404)
	if err != nil || ok {
		t.Fatalf("expected content to be missing: %v", err)
	}
}

func TestReportRepositoryUpdatePersistsSubmission(t *testing.T) {
	conn := testdb.Open(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	_, _, report := seedGraph(t, conn)

	path := "uploads/entry.pdf"
	at := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	report.FilePath = &path
	report.Status = enums.ReportStatusSubmitted
	report.SubmissionDate = &at
	if err := repo.Update(ctx, report); err != nil {
		t.Fatalf("update report: %v", err)
	}

	stored, err := repo.FindRowByID(ctx, report.ID)
	if err != nil {
		t.Fatalf("reload report: %v", err)
	}
	if stored.Status != enums.ReportStatusSubmitted {
		t.Fatalf("status not persisted: %+v", stored)
	}
	if stored.FilePath == nil || *stored.FilePath != path {
		t.Fatalf("file_path not persisted: %+v", stored)
	}
	if stored.SubmissionDate == nil || *stored.SubmissionDate != "2026-09-01T10:00:00Z" {
		t.Fatalf("submission_date not persisted: %+v", stored)
	}
}

func TestReportRepositoryDeleteMissingRow(t *testing.T) {
	conn := testdb.Open(t)
	repo := NewRepository(conn)

	err := repo.Delete(context.Background(), 404)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

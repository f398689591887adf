package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/memberhubhq/memberhub-backend/pkg/migrate"
)

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %q found", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}

func TestMemberMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_member.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS member",
		"CONSTRAINT member_email_unique UNIQUE (email)",
		"CHECK (status IN ('active', 'inactive', 'removed'))",
		"DROP TABLE IF EXISTS member",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestAssociationMigrationsCascade(t *testing.T) {
	teams := readMigration(t, "*_create_team.sql")
	events := readMigration(t, "*_create_event.sql")

	checks := map[string][]string{
		"team": {
			"CREATE TABLE IF NOT EXISTS member_teams",
			"FOREIGN KEY (member_id) REFERENCES member(id) ON DELETE CASCADE",
			"FOREIGN KEY (team_id) REFERENCES team(id) ON DELETE CASCADE",
		},
		"event": {
			"CREATE TABLE IF NOT EXISTS members_events",
			"FOREIGN KEY (member_id) REFERENCES member(id) ON DELETE CASCADE",
			"FOREIGN KEY (event_id) REFERENCES event(id) ON DELETE CASCADE",
		},
	}

	for _, sub := range checks["team"] {
		if !strings.Contains(teams, sub) {
			t.Errorf("team migration missing %q", sub)
		}
	}
	for _, sub := range checks["event"] {
		if !strings.Contains(events, sub) {
			t.Errorf("event migration missing %q", sub)
		}
	}
}

func TestReportMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_content_and_report.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS content",
		"CHECK (content_type IN ('task', 'quiz', 'playlist'))",
		"CREATE TABLE IF NOT EXISTS report",
		"FOREIGN KEY (content_id) REFERENCES content(id) ON DELETE CASCADE",
		"FOREIGN KEY (submitted_by) REFERENCES member(id) ON DELETE CASCADE",
		"CHECK (status IN ('pending', 'submitted', 'late', 'approved', 'revision_requested'))",
		"CHECK (action IN ('none', 'send_reminder', 'approve', 'request_revision'))",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("ValidateDir: %v", err)
	}
}

package events

import (
	"context"
	"testing"
	"time"

	"github.com/memberhubhq/memberhub-backend/internal/testdb"
	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	"github.com/memberhubhq/memberhub-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedEventMember(t *testing.T, conn *gorm.DB, email string) *models.Member {
	t.Helper()
	member := &models.Member{
		MemberName:   "Member " + email,
		Email:        email,
		PasswordHash: "hash",
		Role:         "Member",
		Status:       enums.MemberStatusActive,
	}
	require.NoError(t, conn.Create(member).Error)
	return member
}

func seedEvent(t *testing.T, conn *gorm.DB, name string, date time.Time) *models.Event {
	t.Helper()
	event := &models.Event{EventName: name, EventType: "social", EventDate: date}
	require.NoError(t, conn.Create(event).Error)
	return event
}

func TestEventRepositoryListOrdersByDate(t *testing.T) {
	conn := testdb.Open(t)
	repo := NewRepository(conn)

	later := seedEvent(t, conn, "Later", time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC))
	earlier := seedEvent(t, conn, "Earlier", time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, earlier.ID, rows[0].ID)
	assert.Equal(t, later.ID, rows[1].ID)
}

func TestEventRepositoryAttendance(t *testing.T) {
	conn := testdb.Open(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	event := seedEvent(t, conn, "Kickoff", time.Date(2026, 9, 10, 18, 30, 0, 0, time.UTC))
	a := seedEventMember(t, conn, "a@example.com")
	b := seedEventMember(t, conn, "b@example.com")

	require.NoError(t, repo.AddAttendee(ctx, event.ID, b.ID))
	require.NoError(t, repo.AddAttendee(ctx, event.ID, a.ID))
	// Re-adding is a no-op.
	require.NoError(t, repo.AddAttendee(ctx, event.ID, a.ID))

	ids, err := repo.AttendeeIDs(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID, b.ID}, ids)

	counts, err := repo.AttendeeCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[event.ID])
}

func TestEventRepositoryRemoveMissingAttendance(t *testing.T) {
	conn := testdb.Open(t)
	repo := NewRepository(conn)

	err := repo.RemoveAttendee(context.Background(), 1, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestEventRepositoryDeleteCascadesAttendance(t *testing.T) {
	conn := testdb.Open(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	event := seedEvent(t, conn, "Kickoff", time.Date(2026, 9, 10, 18, 30, 0, 0, time.UTC))
	member := seedEventMember(t, conn, "a@example.com")
	require.NoError(t, repo.AddAttendee(ctx, event.ID, member.ID))

	require.NoError(t, repo.Delete(ctx, event.ID))

	var attendance int64
	conn.Model(&models.MemberEvent{}).Count(&attendance)
	assert.Zero(t, attendance)
}

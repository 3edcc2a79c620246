package services

import (
	"context"
	"testing"

	"github.com/campusconnect/appointment-backend/internal/dto"
	"github.com/campusconnect/appointment-backend/internal/models"
	"github.com/campusconnect/appointment-backend/internal/store"
	"github.com/campusconnect/appointment-backend/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardAdminView(t *testing.T) {
	records := store.NewMemory()
	svc := NewDashboardService(records)
	ctx := context.Background()

	admin := testutils.CreateUser(t, records, testutils.WithRole(models.RoleAdmin))
	pending := testutils.CreateUser(t, records, testutils.Unapproved())
	testutils.CreateUser(t, records) // approved, must not appear
	testutils.CreateTeacher(t, records, "Tina", "CS", "Algorithms")

	resp, err := svc.ListForRole(ctx, admin)
	require.NoError(t, err)

	require.Len(t, resp.PendingStudents, 1)
	assert.Equal(t, pending.ID, resp.PendingStudents[0].ID)
	assert.Len(t, resp.Teachers, 1)
	assert.Empty(t, resp.Appointments)
	assert.Empty(t, resp.Messages)
}

func TestDashboardTeacherView(t *testing.T) {
	records := store.NewMemory()
	svc := NewDashboardService(records)
	ctx := context.Background()

	teacher, profile := testutils.CreateTeacher(t, records, "Tina", "CS", "Algorithms")
	_, otherProfile := testutils.CreateTeacher(t, records, "Omar", "Math", "Calculus")
	student := testutils.CreateUser(t, records)

	appointments := NewAppointmentService(records)
	messages := NewMessageService(records)

	_, err := appointments.Book(ctx, student, bookReq(profile.ID))
	require.NoError(t, err)
	_, err = appointments.Book(ctx, student, bookReq(otherProfile.ID))
	require.NoError(t, err)
	_, err = messages.Send(ctx, student, &dto.SendMessageRequest{TeacherID: profile.ID, Content: "hi"})
	require.NoError(t, err)

	resp, err := svc.ListForRole(ctx, teacher)
	require.NoError(t, err)

	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, profile.ID, resp.Appointments[0].TeacherID)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, profile.ID, resp.Messages[0].TeacherID)
	assert.Empty(t, resp.Teachers)
	assert.Empty(t, resp.PendingStudents)
}

func TestDashboardStudentView(t *testing.T) {
	records := store.NewMemory()
	svc := NewDashboardService(records)
	ctx := context.Background()

	_, profile := testutils.CreateTeacher(t, records, "Tina", "CS", "Algorithms")
	testutils.CreateTeacher(t, records, "Omar", "Math", "Calculus")
	student := testutils.CreateUser(t, records)
	other := testutils.CreateUser(t, records)

	appointments := NewAppointmentService(records)
	_, err := appointments.Book(ctx, student, bookReq(profile.ID))
	require.NoError(t, err)
	_, err = appointments.Book(ctx, other, bookReq(profile.ID))
	require.NoError(t, err)

	resp, err := svc.ListForRole(ctx, student)
	require.NoError(t, err)

	// The whole directory, but only the student's own appointments.
	assert.Len(t, resp.Teachers, 2)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, student.ID, resp.Appointments[0].StudentID)
	assert.Empty(t, resp.Messages)
	assert.Empty(t, resp.PendingStudents)
}

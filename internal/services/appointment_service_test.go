package services

import (
	"context"
	"testing"

	"github.com/campusconnect/appointment-backend/internal/dto"
	"github.com/campusconnect/appointment-backend/internal/models"
	"github.com/campusconnect/appointment-backend/internal/store"
	"github.com/campusconnect/appointment-backend/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookReq(teacherID uuid.UUID) *dto.BookAppointmentRequest {
	return &dto.BookAppointmentRequest{
		TeacherID: teacherID,
		Date:      "2024-05-01",
		Time:      "09:00",
		Purpose:   "advising",
	}
}

func TestBookAppointmentStartsPending(t *testing.T) {
	records := store.NewMemory()
	svc := NewAppointmentService(records)
	ctx := context.Background()

	student := testutils.CreateUser(t, records, testutils.WithName("Sam Student"))
	_, profile := testutils.CreateTeacher(t, records, "Tina Teacher", "CS", "Algorithms")

	appt, err := svc.Book(ctx, student, bookReq(profile.ID))
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentPending, appt.Status)
	assert.Equal(t, student.ID, appt.StudentID)
	assert.Equal(t, profile.ID, appt.TeacherID)
	assert.Equal(t, "Sam Student", appt.StudentName)
	assert.Equal(t, "Tina Teacher", appt.TeacherName)
	assert.Equal(t, "2024-05-01", appt.Date)
	assert.Equal(t, "09:00", appt.Time)
}

func TestBookAppointmentValidation(t *testing.T) {
	records := store.NewMemory()
	svc := NewAppointmentService(records)
	ctx := context.Background()

	student := testutils.CreateUser(t, records)
	_, profile := testutils.CreateTeacher(t, records, "Tina", "CS", "Algorithms")

	tests := []struct {
		name string
		req  *dto.BookAppointmentRequest
	}{
		{"missing date", &dto.BookAppointmentRequest{TeacherID: profile.ID, Time: "09:00", Purpose: "advising"}},
		{"missing time", &dto.BookAppointmentRequest{TeacherID: profile.ID, Date: "2024-05-01", Purpose: "advising"}},
		{"missing purpose", &dto.BookAppointmentRequest{TeacherID: profile.ID, Date: "2024-05-01", Time: "09:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Book(ctx, student, tt.req)
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}
}

func TestBookAppointmentUnknownTeacher(t *testing.T) {
	records := store.NewMemory()
	svc := NewAppointmentService(records)

	student := testutils.CreateUser(t, records)

	_, err := svc.Book(context.Background(), student, bookReq(uuid.New()))
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestBookAppointmentOnlyStudents(t *testing.T) {
	records := store.NewMemory()
	svc := NewAppointmentService(records)

	teacher, profile := testutils.CreateTeacher(t, records, "Tina", "CS", "Algorithms")

	_, err := svc.Book(context.Background(), teacher, bookReq(profile.ID))
	require.Error(t, err)
	assert.Equal(t, KindAuthorization, KindOf(err))
}

func TestBookAppointmentAllowsDuplicateSlots(t *testing.T) {
	records := store.NewMemory()
	svc := NewAppointmentService(records)
	ctx := context.Background()

	_, profile := testutils.CreateTeacher(t, records, "Tina", "CS", "Algorithms")
	first := testutils.CreateUser(t, records)
	second := testutils.CreateUser(t, records)

	// Two students booking the identical slot both succeed; there is no
	// double-booking guard.
	_, err := svc.Book(ctx, first, bookReq(profile.ID))
	require.NoError(t, err)
	_, err = svc.Book(ctx, second, bookReq(profile.ID))
	require.NoError(t, err)

	appts, err := records.FindAppointments(ctx, store.AppointmentFilter{TeacherID: profile.ID})
	require.NoError(t, err)
	assert.Len(t, appts, 2)
}

func TestSetStatusOnlyOwningTeacher(t *testing.T) {
	records := store.NewMemory()
	svc := NewAppointmentService(records)
	ctx := context.Background()

	student := testutils.CreateUser(t, records)
	_, profile := testutils.CreateTeacher(t, records, "Tina", "CS", "Algorithms")
	otherTeacher, _ := testutils.CreateTeacher(t, records, "Omar", "Math", "Calculus")

	appt, err := svc.Book(ctx, student, bookReq(profile.ID))
	require.NoError(t, err)

	for _, actor := range []*models.User{student, otherTeacher} {
		_, err = svc.SetStatus(ctx, actor, appt.ID, models.AppointmentApproved)
		require.Error(t, err)
		assert.Equal(t, KindAuthorization, KindOf(err))
	}

	// Status is unchanged after the rejected attempts.
	got, err := records.GetAppointment(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentPending, got.Status)
}

func TestSetStatusLifecycle(t *testing.T) {
	records := store.NewMemory()
	svc := NewAppointmentService(records)
	ctx := context.Background()

	student := testutils.CreateUser(t, records)
	teacher, profile := testutils.CreateTeacher(t, records, "Tina", "CS", "Algorithms")

	appt, err := svc.Book(ctx, student, bookReq(profile.ID))
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentPending, appt.Status)

	updated, err := svc.SetStatus(ctx, teacher, appt.ID, models.AppointmentApproved)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentApproved, updated.Status)

	// A second decision overwrites the first; re-transition is not guarded.
	updated, err = svc.SetStatus(ctx, teacher, appt.ID, models.AppointmentCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCancelled, updated.Status)

	got, err := records.GetAppointment(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCancelled, got.Status)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	records := store.NewMemory()
	svc := NewAppointmentService(records)
	ctx := context.Background()

	student := testutils.CreateUser(t, records)
	teacher, profile := testutils.CreateTeacher(t, records, "Tina", "CS", "Algorithms")

	appt, err := svc.Book(ctx, student, bookReq(profile.ID))
	require.NoError(t, err)

	for _, status := range []string{"pending", "done", ""} {
		_, err = svc.SetStatus(ctx, teacher, appt.ID, status)
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
	}
}

func TestListForScopesByRole(t *testing.T) {
	records := store.NewMemory()
	svc := NewAppointmentService(records)
	ctx := context.Background()

	teacher, profile := testutils.CreateTeacher(t, records, "Tina", "CS", "Algorithms")
	mine := testutils.CreateUser(t, records)
	other := testutils.CreateUser(t, records)

	_, err := svc.Book(ctx, mine, bookReq(profile.ID))
	require.NoError(t, err)
	_, err = svc.Book(ctx, other, bookReq(profile.ID))
	require.NoError(t, err)

	got, err := svc.ListFor(ctx, mine)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].StudentID)

	got, err = svc.ListFor(ctx, teacher)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

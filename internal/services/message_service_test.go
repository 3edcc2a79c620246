package services

import (
	"context"
	"testing"

	"github.com/campusconnect/appointment-backend/internal/dto"
	"github.com/campusconnect/appointment-backend/internal/store"
	"github.com/campusconnect/appointment-backend/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	records := store.NewMemory()
	svc := NewMessageService(records)
	ctx := context.Background()

	student := testutils.CreateUser(t, records, testutils.WithName("Sam Student"))
	_, profile := testutils.CreateTeacher(t, records, "Tina Teacher", "CS", "Algorithms")

	msg, err := svc.Send(ctx, student, &dto.SendMessageRequest{
		TeacherID: profile.ID,
		Content:   "could we move our meeting?",
	})
	require.NoError(t, err)

	assert.Equal(t, student.ID, msg.StudentID)
	assert.Equal(t, profile.ID, msg.TeacherID)
	assert.Equal(t, "Sam Student", msg.StudentName)
	assert.Equal(t, "Tina Teacher", msg.TeacherName)
	assert.Equal(t, "could we move our meeting?", msg.Content)
	// Messages never reference an appointment even though the column exists.
	assert.Nil(t, msg.AppointmentID)
}

func TestSendMessageOnlyStudents(t *testing.T) {
	records := store.NewMemory()
	svc := NewMessageService(records)

	teacher, profile := testutils.CreateTeacher(t, records, "Tina", "CS", "Algorithms")

	_, err := svc.Send(context.Background(), teacher, &dto.SendMessageRequest{
		TeacherID: profile.ID,
		Content:   "hello",
	})
	require.Error(t, err)
	assert.Equal(t, KindAuthorization, KindOf(err))
}

func TestSendMessageRequiresContent(t *testing.T) {
	records := store.NewMemory()
	svc := NewMessageService(records)

	student := testutils.CreateUser(t, records)
	_, profile := testutils.CreateTeacher(t, records, "Tina", "CS", "Algorithms")

	_, err := svc.Send(context.Background(), student, &dto.SendMessageRequest{TeacherID: profile.ID})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestSendMessageUnknownTeacher(t *testing.T) {
	records := store.NewMemory()
	svc := NewMessageService(records)

	student := testutils.CreateUser(t, records)

	_, err := svc.Send(context.Background(), student, &dto.SendMessageRequest{
		TeacherID: uuid.New(),
		Content:   "hello",
	})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestListMessagesScopesByRole(t *testing.T) {
	records := store.NewMemory()
	svc := NewMessageService(records)
	ctx := context.Background()

	teacher, profile := testutils.CreateTeacher(t, records, "Tina", "CS", "Algorithms")
	otherTeacher, otherProfile := testutils.CreateTeacher(t, records, "Omar", "Math", "Calculus")
	mine := testutils.CreateUser(t, records)
	other := testutils.CreateUser(t, records)

	_, err := svc.Send(ctx, mine, &dto.SendMessageRequest{TeacherID: profile.ID, Content: "from mine"})
	require.NoError(t, err)
	_, err = svc.Send(ctx, other, &dto.SendMessageRequest{TeacherID: profile.ID, Content: "from other"})
	require.NoError(t, err)
	_, err = svc.Send(ctx, mine, &dto.SendMessageRequest{TeacherID: otherProfile.ID, Content: "to omar"})
	require.NoError(t, err)

	// A teacher sees their inbox only.
	got, err := svc.ListFor(ctx, teacher)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, m := range got {
		assert.Equal(t, profile.ID, m.TeacherID)
	}

	got, err = svc.ListFor(ctx, otherTeacher)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "to omar", got[0].Content)

	// A student sees only what they sent.
	got, err = svc.ListFor(ctx, mine)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, m := range got {
		assert.Equal(t, mine.ID, m.StudentID)
	}
}

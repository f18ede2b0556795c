package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dogusotomat/dogi-support-backend/internal/models"
	"github.com/dogusotomat/dogi-support-backend/internal/storage"
)

func TestGetOrCreateGeneratesSessionID(t *testing.T) {
	sm := NewSessionManager(storage.NewMemoryStore(), 10)

	sess := sm.GetOrCreate("")
	require.NotEmpty(t, sess.SessionID)
	assert.Equal(t, StepInitial, sess.Step)
	assert.Empty(t, sess.UserType)

	// Fresh sessions open with the welcome message
	require.Len(t, sess.History, 1)
	assert.Equal(t, models.RoleModel, sess.History[0].Role)
	assert.Contains(t, sess.History[0].Content, "Hoş Geldiniz")
}

func TestGetOrCreateReturnsExistingSession(t *testing.T) {
	sm := NewSessionManager(storage.NewMemoryStore(), 10)

	first := sm.GetOrCreate("SES-test")
	first.UserType = UserTypeCustomer

	again := sm.GetOrCreate("SES-test")
	assert.Same(t, first, again)
	assert.Equal(t, UserTypeCustomer, again.UserType)
}

func TestGetOrCreateReplaysPersistedTranscript(t *testing.T) {
	store := storage.NewMemoryStore()
	saved := []models.ChatMessage{
		{Role: models.RoleModel, Content: "hoş geldiniz"},
		{Role: models.RoleUser, Content: "dondurma alamadım"},
	}
	require.NoError(t, store.SaveTranscript("SES-replay", saved))

	sm := NewSessionManager(store, 10)
	sess := sm.GetOrCreate("SES-replay")

	assert.Equal(t, saved, sess.History)
}

func TestGetUnknownOrExpiredSession(t *testing.T) {
	sm := NewSessionManager(storage.NewMemoryStore(), 10)

	_, err := sm.Get("SES-missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	sess := sm.GetOrCreate("SES-expiring")
	sess.ExpiresAt = time.Now().Add(-time.Minute)

	_, err = sm.Get("SES-expiring")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestClearResetsCaseState(t *testing.T) {
	sm := NewSessionManager(storage.NewMemoryStore(), 10)

	sess := sm.GetOrCreate("SES-clear")
	sess.UserType = UserTypeOperator
	sess.Step = StepCompleted
	sess.OperatorInfo = OperatorInfo{MachineSerial: "2503180076", ErrorCode: "99"}
	sess.ReportSent = true
	sess.History = append(sess.History, models.ChatMessage{Role: models.RoleUser, Content: "99"})

	require.NoError(t, sm.Clear("SES-clear", false))

	assert.Empty(t, sess.UserType)
	assert.Equal(t, StepInitial, sess.Step)
	assert.Equal(t, OperatorInfo{}, sess.OperatorInfo)
	assert.Equal(t, CustomerInfo{}, sess.CustomerInfo)
	assert.False(t, sess.ReportSent)
	require.Len(t, sess.History, 1)
	assert.Equal(t, models.RoleModel, sess.History[0].Role)
}

func TestActiveSessionCountSkipsExpired(t *testing.T) {
	sm := NewSessionManager(storage.NewMemoryStore(), 10)

	sm.GetOrCreate("SES-a")
	sm.GetOrCreate("SES-b")
	expired := sm.GetOrCreate("SES-c")
	expired.ExpiresAt = time.Now().Add(-time.Minute)

	assert.Equal(t, 2, sm.ActiveSessionCount())
}

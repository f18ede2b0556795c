package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dogusotomat/dogi-support-backend/internal/models"
	"github.com/dogusotomat/dogi-support-backend/internal/storage"
)

// User types
const (
	UserTypeCustomer = "customer"
	UserTypeOperator = "operator"
)

// Dialogue steps
const (
	StepInitial            = "initial"
	StepTypeDetermined     = "type_determined"
	StepAskRefundStatus    = "ask_refund_status"
	StepAskMachineSerial   = "ask_machine_serial"
	StepAskIssueDate       = "ask_issue_date"
	StepAskMachineSerialOp = "ask_machine_serial_op"
	StepAskErrorCode       = "ask_error_code"
	StepCompleted          = "completed"
)

// CustomerInfo holds the fields collected on the customer branch. Fields start
// empty and are set at most once per case.
type CustomerInfo struct {
	MachineSerial string `json:"machine_serial"`
	IssueDate     string `json:"issue_date"` // verbatim user text
	Complaint     string `json:"complaint"`
}

// OperatorInfo holds the fields collected on the operator branch
type OperatorInfo struct {
	MachineSerial string `json:"machine_serial"`
	ErrorCode     string `json:"error_code"`
}

// Session is one support conversation. UserType is set once on the first
// message and is final until the session is cleared.
type Session struct {
	SessionID    string               `json:"session_id"`
	UserType     string               `json:"user_type"`
	Step         string               `json:"step"`
	CustomerInfo CustomerInfo         `json:"customer_info"`
	OperatorInfo OperatorInfo         `json:"operator_info"`
	History      []models.ChatMessage `json:"history"`
	ReportSent   bool                 `json:"report_sent"`
	CreatedAt    time.Time            `json:"created_at"`
	LastActive   time.Time            `json:"last_active"`
	ExpiresAt    time.Time            `json:"expires_at"`

	limiter *RateLimiter
	// mu serializes turns: no two messages of the same session are ever
	// processed concurrently, whatever the caller does.
	mu sync.Mutex
}

// SessionManager manages chat sessions
type SessionManager struct {
	store      storage.Store
	sessions   map[string]*Session
	mu         sync.RWMutex
	sessionTTL time.Duration
	rateLimit  int
}

// NewSessionManager creates a new session manager and starts its cleanup loop
func NewSessionManager(store storage.Store, rateLimit int) *SessionManager {
	sm := &SessionManager{
		store:      store,
		sessions:   make(map[string]*Session),
		sessionTTL: 30 * time.Minute,
		rateLimit:  rateLimit,
	}

	go sm.cleanupExpiredSessions()

	return sm
}

// GetOrCreate returns the session with the given ID, creating it (and loading
// any persisted transcript) when it does not exist yet. An empty ID creates a
// fresh session.
func (sm *SessionManager) GetOrCreate(sessionID string) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sessionID != "" {
		if session, exists := sm.sessions[sessionID]; exists {
			session.LastActive = time.Now()
			session.ExpiresAt = time.Now().Add(sm.sessionTTL)
			return session
		}
	}

	if sessionID == "" {
		sessionID = fmt.Sprintf("SES%d", time.Now().UnixNano())
	}

	session := &Session{
		SessionID:  sessionID,
		Step:       StepInitial,
		CreatedAt:  time.Now(),
		LastActive: time.Now(),
		ExpiresAt:  time.Now().Add(sm.sessionTTL),
		limiter:    NewRateLimiter(sm.rateLimit),
	}

	// Best-effort transcript replay; a failed load means an empty transcript
	if sm.store != nil {
		if messages, err := sm.store.LoadTranscript(sessionID); err == nil && len(messages) > 0 {
			session.History = messages
		}
	}
	if len(session.History) == 0 {
		session.History = []models.ChatMessage{{Role: models.RoleModel, Content: msgWelcome}}
	}

	sm.sessions[sessionID] = session
	log.Printf("Session created: %s", sessionID)

	return session
}

// Get returns an active session or ErrSessionNotFound
func (sm *SessionManager) Get(sessionID string) (*Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return nil, ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// Clear resets all per-case state of a session. The transcript is reset to the
// welcome message; with purgeTranscript the persisted slot is dropped as well.
func (sm *SessionManager) Clear(sessionID string, purgeTranscript bool) error {
	session, err := sm.Get(sessionID)
	if err != nil {
		return err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.UserType = ""
	session.Step = StepInitial
	session.CustomerInfo = CustomerInfo{}
	session.OperatorInfo = OperatorInfo{}
	session.ReportSent = false
	session.History = []models.ChatMessage{{Role: models.RoleModel, Content: msgWelcome}}

	if sm.store != nil {
		if purgeTranscript {
			if err := sm.store.DeleteTranscript(sessionID); err != nil {
				log.Printf("⚠️  Failed to purge transcript for %s: %v", sessionID, err)
			}
		} else {
			if err := sm.store.SaveTranscript(sessionID, session.History); err != nil {
				log.Printf("⚠️  Failed to save transcript for %s: %v", sessionID, err)
			}
		}
	}

	log.Printf("Session cleared: %s (purge=%v)", sessionID, purgeTranscript)
	return nil
}

// ActiveSessionCount reports how many sessions are currently live (for
// monitoring). A count only; handing out the live sessions would bypass
// their turn mutexes.
func (sm *SessionManager) ActiveSessionCount() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	count := 0
	for _, session := range sm.sessions {
		if time.Now().Before(session.ExpiresAt) {
			count++
		}
	}

	return count
}

// cleanupExpiredSessions runs periodically to drop expired sessions
func (sm *SessionManager) cleanupExpiredSessions() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		sm.mu.Lock()
		for id, session := range sm.sessions {
			if time.Now().After(session.ExpiresAt) {
				delete(sm.sessions, id)
				log.Printf("Cleaned up expired session %s", id)
			}
		}
		sm.mu.Unlock()
	}
}

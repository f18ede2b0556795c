package services

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/dogusotomat/dogi-support-backend/internal/models"
	"github.com/dogusotomat/dogi-support-backend/internal/storage"
)

// ChatService owns the conversation triage state machine: classification,
// per-step field collection, reply validation and the report trigger.
type ChatService struct {
	store      storage.Store
	sessions   *SessionManager
	classifier Classifier
	gemini     *GeminiService
	dispatcher ReportDispatcher
	alerts     *TwilioService // optional escalation ping, may be nil

	supportEmail string
	techEmail    string
	supportPhone string
	purgeOnClear bool
}

// TurnResult is what one processed chat turn returns to the caller
type TurnResult struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	UserType  string `json:"user_type,omitempty"`
	Step      string `json:"step"`
}

// Status mirrors the widget's status badge
type Status struct {
	Initialized    bool   `json:"initialized"`
	HasCredentials bool   `json:"has_credentials"`
	UserType       string `json:"user_type,omitempty"`
	Step           string `json:"step"`
}

// NewChatService creates the chat service. Recipients and the support phone
// fall back to the Doğuş Otomat defaults.
func NewChatService(store storage.Store, sessions *SessionManager, gemini *GeminiService, dispatcher ReportDispatcher, alerts *TwilioService) *ChatService {
	return &ChatService{
		store:        store,
		sessions:     sessions,
		classifier:   KeywordClassifier{},
		gemini:       gemini,
		dispatcher:   dispatcher,
		alerts:       alerts,
		supportEmail: envOrDefault("SUPPORT_EMAIL", "info@dogusotomat.com"),
		techEmail:    envOrDefault("TECH_EMAIL", "teknik@dogusotomat.com"),
		supportPhone: envOrDefault("SUPPORT_PHONE", "0538 912 58 58"),
		purgeOnClear: os.Getenv("CHAT_PURGE_ON_CLEAR") == "true",
	}
}

// SetClassifier swaps the user-type classifier (keyword table by default)
func (s *ChatService) SetClassifier(c Classifier) {
	s.classifier = c
}

// GetResponse processes one chat turn to completion: rate gate, first-turn
// classification, step handler, reply validation, transcript append and the
// report trigger. Every failure is converted to a user-safe reply here;
// nothing propagates to the caller as a hard error.
func (s *ChatService) GetResponse(sessionID, message string) *TurnResult {
	sess := s.sessions.GetOrCreate(sessionID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	// Rate gate: a rejected turn mutates nothing and is not appended to the
	// transcript as a transition attempt
	if !sess.limiter.TryAcquire(time.Now()) {
		log.Printf("⚠️  Rate limited session %s", sess.SessionID)
		return &TurnResult{
			SessionID: sess.SessionID,
			Reply:     userFacingError(ErrRateLimited, s.supportPhone),
			UserType:  sess.UserType,
			Step:      sess.Step,
		}
	}

	// User type is decided on the first message and is final for the session
	if sess.UserType == "" {
		sess.UserType = s.classifier.Classify(message)
		sess.Step = StepTypeDetermined
		log.Printf("Session %s classified as %s", sess.SessionID, sess.UserType)
	}

	input := strings.ToLower(message)

	var reply string
	if sess.UserType == UserTypeCustomer {
		reply = s.handleCustomer(sess, input, message)
	} else {
		reply = s.handleOperator(sess, input, message)
	}

	reply = ValidateReply(sess, reply)

	sess.History = append(sess.History,
		models.ChatMessage{Role: models.RoleUser, Content: message},
		models.ChatMessage{Role: models.RoleModel, Content: reply},
	)
	s.saveTranscript(sess)

	reply = s.maybeDispatchReport(sess, message, reply)

	return &TurnResult{
		SessionID: sess.SessionID,
		Reply:     reply,
		UserType:  sess.UserType,
		Step:      sess.Step,
	}
}

// GetStatus returns the widget status for a session
func (s *ChatService) GetStatus(sessionID string) *Status {
	status := &Status{
		Initialized:    s.gemini != nil && s.gemini.IsInitialized(),
		HasCredentials: s.gemini != nil && s.gemini.HasCredentials(),
		Step:           StepInitial,
	}

	if sess, err := s.sessions.Get(sessionID); err == nil {
		sess.mu.Lock()
		status.UserType = sess.UserType
		status.Step = sess.Step
		sess.mu.Unlock()
	}

	return status
}

// ClearSession resets all per-case state. purge is a tri-state: nil means the
// CHAT_PURGE_ON_CLEAR default.
func (s *ChatService) ClearSession(sessionID string, purge *bool) error {
	purgeTranscript := s.purgeOnClear
	if purge != nil {
		purgeTranscript = *purge
	}
	return s.sessions.Clear(sessionID, purgeTranscript)
}

// GetTranscript returns a snapshot of the session's chat history for replay.
// Snapshot, not the live slice: an in-flight turn may append concurrently.
func (s *ChatService) GetTranscript(sessionID string) ([]models.ChatMessage, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		// Fall back to the persisted slot for sessions that expired in memory
		if s.store != nil {
			if messages, loadErr := s.store.LoadTranscript(sessionID); loadErr == nil && messages != nil {
				return messages, nil
			}
		}
		return nil, err
	}

	sess.mu.Lock()
	messages := make([]models.ChatMessage, len(sess.History))
	copy(messages, sess.History)
	sess.mu.Unlock()

	return messages, nil
}

// saveTranscript mirrors the history to the persistence slot, best-effort
func (s *ChatService) saveTranscript(sess *Session) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveTranscript(sess.SessionID, sess.History); err != nil {
		log.Printf("⚠️  Failed to save transcript for %s: %v", sess.SessionID, err)
	}
}

// maybeDispatchReport fires the notification at most once per completed case.
// It only triggers when the step is completed, the reply carries the case's
// completion marker and the required fields are present. A dispatch failure is
// appended to the reply as a soft warning; the case stays completed.
func (s *ChatService) maybeDispatchReport(sess *Session, lastMessage, reply string) string {
	if sess.Step != StepCompleted || sess.ReportSent {
		return reply
	}

	var report *models.Report
	sc := &models.SupportCase{
		SessionID: sess.SessionID,
		UserType:  sess.UserType,
	}

	switch sess.UserType {
	case UserTypeCustomer:
		if !hasCustomerMarker(reply) {
			return reply
		}
		if sess.CustomerInfo.MachineSerial == "" || sess.CustomerInfo.IssueDate == "" {
			return reply
		}
		report = BuildCustomerReport(sess.CustomerInfo, s.supportEmail)
		sc.MachineSerial = sess.CustomerInfo.MachineSerial
		sc.IssueDate = sess.CustomerInfo.IssueDate
		sc.Description = sess.CustomerInfo.Complaint

	case UserTypeOperator:
		if !hasOperatorMarker(reply) {
			return reply
		}
		if sess.OperatorInfo.MachineSerial == "" || strings.TrimSpace(lastMessage) == "" {
			return reply
		}
		report = BuildOperatorReport(sess.OperatorInfo, lastMessage, s.techEmail)
		sc.MachineSerial = sess.OperatorInfo.MachineSerial
		sc.ErrorCode = sess.OperatorInfo.ErrorCode
		sc.Description = lastMessage

	default:
		return reply
	}

	sess.ReportSent = true

	sc.Recipient = report.Recipient
	sc.Subject = report.Subject
	sc.DispatchStatus = models.DispatchStatusSent

	if err := s.dispatcher.SendReport(report); err != nil {
		log.Printf("❌ Report dispatch failed for session %s: %v", sess.SessionID, err)
		sc.DispatchStatus = models.DispatchStatusFailed
		reply += dispatchFailedWarning(s.supportPhone)
	} else {
		log.Printf("✅ Report dispatched for session %s to %s", sess.SessionID, report.Recipient)
	}

	if s.store != nil {
		if _, err := s.store.CreateSupportCase(sc); err != nil {
			log.Printf("⚠️  Failed to record support case for %s: %v", sess.SessionID, err)
		}
	}

	// Escalated operator faults also ping the support line, best-effort
	if sess.UserType == UserTypeOperator && s.alerts != nil {
		if err := s.alerts.SendEscalationAlert(sc); err != nil {
			log.Printf("⚠️  Escalation alert failed for %s: %v", sess.SessionID, err)
		}
	}

	return reply
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

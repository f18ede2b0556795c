package storage

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dogusotomat/dogi-support-backend/internal/models"
)

// MemoryStore holds all data in memory for testing and local development
type MemoryStore struct {
	cases       map[string]*models.SupportCase
	transcripts map[string]string // sessionID -> JSON-encoded messages

	// Mutexes for thread safety
	caseMu       sync.RWMutex
	transcriptMu sync.RWMutex

	// Counter for ID generation
	caseCounter int
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cases:       make(map[string]*models.SupportCase),
		transcripts: make(map[string]string),
	}
}

// Support case operations

func (m *MemoryStore) CreateSupportCase(sc *models.SupportCase) (*models.SupportCase, error) {
	m.caseMu.Lock()
	defer m.caseMu.Unlock()

	m.caseCounter++
	if sc.CaseID == "" {
		sc.CaseID = fmt.Sprintf("DG%05d", m.caseCounter)
	}
	if sc.Status == "" {
		sc.Status = models.CaseStatusOpen
	}
	sc.CreatedAt = time.Now()
	sc.UpdatedAt = time.Now()

	m.cases[sc.CaseID] = sc
	return sc, nil
}

func (m *MemoryStore) GetSupportCase(caseID string) (*models.SupportCase, error) {
	m.caseMu.RLock()
	defer m.caseMu.RUnlock()

	sc, exists := m.cases[caseID]
	if !exists {
		return nil, fmt.Errorf("support case not found")
	}
	return sc, nil
}

func (m *MemoryStore) GetSupportCasesBySession(sessionID string) ([]*models.SupportCase, error) {
	m.caseMu.RLock()
	defer m.caseMu.RUnlock()

	var results []*models.SupportCase
	for _, sc := range m.cases {
		if sc.SessionID == sessionID {
			results = append(results, sc)
		}
	}
	return results, nil
}

func (m *MemoryStore) GetSupportCasesByStatus(status string) ([]*models.SupportCase, error) {
	m.caseMu.RLock()
	defer m.caseMu.RUnlock()

	var results []*models.SupportCase
	for _, sc := range m.cases {
		if sc.Status == status {
			results = append(results, sc)
		}
	}
	return results, nil
}

func (m *MemoryStore) GetAllSupportCases() ([]*models.SupportCase, error) {
	m.caseMu.RLock()
	defer m.caseMu.RUnlock()

	results := make([]*models.SupportCase, 0, len(m.cases))
	for _, sc := range m.cases {
		results = append(results, sc)
	}
	return results, nil
}

func (m *MemoryStore) UpdateSupportCase(sc *models.SupportCase) error {
	m.caseMu.Lock()
	defer m.caseMu.Unlock()

	if _, exists := m.cases[sc.CaseID]; !exists {
		return fmt.Errorf("support case not found")
	}

	sc.UpdatedAt = time.Now()
	m.cases[sc.CaseID] = sc
	return nil
}

// Transcript operations

func (m *MemoryStore) SaveTranscript(sessionID string, messages []models.ChatMessage) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}

	m.transcriptMu.Lock()
	defer m.transcriptMu.Unlock()

	m.transcripts[sessionID] = string(data)
	return nil
}

func (m *MemoryStore) LoadTranscript(sessionID string) ([]models.ChatMessage, error) {
	m.transcriptMu.RLock()
	defer m.transcriptMu.RUnlock()

	raw, exists := m.transcripts[sessionID]
	if !exists {
		return nil, nil
	}

	var messages []models.ChatMessage
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil, fmt.Errorf("failed to decode transcript: %w", err)
	}
	return messages, nil
}

func (m *MemoryStore) DeleteTranscript(sessionID string) error {
	m.transcriptMu.Lock()
	defer m.transcriptMu.Unlock()

	delete(m.transcripts, sessionID)
	return nil
}

package storage

import (
	"github.com/dogusotomat/dogi-support-backend/internal/models"
)

var storeInstance Store

// SetStore sets the global store instance (call from main.go)
func SetStore(s Store) {
	storeInstance = s
}

// GetStore returns the global store instance
func GetStore() Store {
	return storeInstance
}

// Store defines the interface for storage operations
type Store interface {
	// Support case operations
	CreateSupportCase(sc *models.SupportCase) (*models.SupportCase, error)
	GetSupportCase(caseID string) (*models.SupportCase, error)
	GetSupportCasesBySession(sessionID string) ([]*models.SupportCase, error)
	GetSupportCasesByStatus(status string) ([]*models.SupportCase, error)
	GetAllSupportCases() ([]*models.SupportCase, error)
	UpdateSupportCase(sc *models.SupportCase) error

	// Transcript operations (best-effort persistence slot)
	SaveTranscript(sessionID string, messages []models.ChatMessage) error
	LoadTranscript(sessionID string) ([]models.ChatMessage, error)
	DeleteTranscript(sessionID string) error
}

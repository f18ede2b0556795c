package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dogusotomat/dogi-support-backend/internal/models"
)

// DatabaseStore persists data in PostgreSQL via GORM
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a new database-backed storage
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Support case operations

func (d *DatabaseStore) CreateSupportCase(sc *models.SupportCase) (*models.SupportCase, error) {
	if err := d.db.Create(sc).Error; err != nil {
		return nil, fmt.Errorf("failed to create support case: %w", err)
	}
	return sc, nil
}

func (d *DatabaseStore) GetSupportCase(caseID string) (*models.SupportCase, error) {
	var sc models.SupportCase
	err := d.db.Where("case_id = ?", caseID).First(&sc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("support case not found")
	}
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func (d *DatabaseStore) GetSupportCasesBySession(sessionID string) ([]*models.SupportCase, error) {
	var cases []*models.SupportCase
	if err := d.db.Where("session_id = ?", sessionID).Order("created_at desc").Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

func (d *DatabaseStore) GetSupportCasesByStatus(status string) ([]*models.SupportCase, error) {
	var cases []*models.SupportCase
	if err := d.db.Where("status = ?", status).Order("created_at desc").Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

func (d *DatabaseStore) GetAllSupportCases() ([]*models.SupportCase, error) {
	var cases []*models.SupportCase
	if err := d.db.Order("created_at desc").Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

func (d *DatabaseStore) UpdateSupportCase(sc *models.SupportCase) error {
	return d.db.Save(sc).Error
}

// Transcript operations

func (d *DatabaseStore) SaveTranscript(sessionID string, messages []models.ChatMessage) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}

	var transcript models.ChatTranscript
	err = d.db.Where("session_id = ?", sessionID).First(&transcript).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		transcript = models.ChatTranscript{
			SessionID: sessionID,
			Messages:  string(data),
		}
		return d.db.Create(&transcript).Error
	}
	if err != nil {
		return err
	}

	transcript.Messages = string(data)
	return d.db.Save(&transcript).Error
}

func (d *DatabaseStore) LoadTranscript(sessionID string) ([]models.ChatMessage, error) {
	var transcript models.ChatTranscript
	err := d.db.Where("session_id = ?", sessionID).First(&transcript).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var messages []models.ChatMessage
	if err := json.Unmarshal([]byte(transcript.Messages), &messages); err != nil {
		return nil, fmt.Errorf("failed to decode transcript: %w", err)
	}
	return messages, nil
}

func (d *DatabaseStore) DeleteTranscript(sessionID string) error {
	return d.db.Where("session_id = ?", sessionID).Delete(&models.ChatTranscript{}).Error
}

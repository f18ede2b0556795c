package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SupportCase is the persisted record of a completed (or escalated) chat case.
// One row is written every time the report trigger fires.
type SupportCase struct {
	gorm.Model
	CaseID         string     `gorm:"uniqueIndex;not null" json:"case_id"`
	SessionID      string     `gorm:"index" json:"session_id"`
	UserType       string     `json:"user_type"` // customer or operator
	MachineSerial  string     `json:"machine_serial"`
	IssueDate      string     `json:"issue_date,omitempty"` // verbatim user text, never parsed
	ErrorCode      string     `json:"error_code,omitempty"`
	Description    string     `json:"description"`
	Recipient      string     `json:"recipient"`
	Subject        string     `json:"subject"`
	Status         string     `gorm:"default:'open'" json:"status"`             // open, in_progress, resolved, closed
	DispatchStatus string     `gorm:"default:'pending'" json:"dispatch_status"` // sent, failed
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	Resolution     string     `json:"resolution,omitempty"`
}

// Case types
const (
	CaseTypeCustomer = "customer"
	CaseTypeOperator = "operator"
)

// Case statuses
const (
	CaseStatusOpen       = "open"
	CaseStatusInProgress = "in_progress"
	CaseStatusResolved   = "resolved"
	CaseStatusClosed     = "closed"
)

// Dispatch statuses
const (
	DispatchStatusSent   = "sent"
	DispatchStatusFailed = "failed"
)

func (sc *SupportCase) BeforeCreate(tx *gorm.DB) error {
	if sc.CaseID == "" {
		sc.CaseID = fmt.Sprintf("DG%d", time.Now().UnixNano())
	}

	if sc.Status == "" {
		sc.Status = CaseStatusOpen
	}

	return nil
}

// Report is the notification payload built from a session's collected fields
// at the moment a case completes. Derived, not stored.
type Report struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

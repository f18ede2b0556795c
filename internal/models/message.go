package models

import (
	"gorm.io/gorm"
)

// Message roles
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is a single turn in a chat transcript
type ChatMessage struct {
	Role    string `json:"role"` // user or model
	Content string `json:"content"`
}

// ChatTranscript mirrors a session's chat history so a reloaded widget can
// replay it. Messages is a JSON-encoded []ChatMessage.
type ChatTranscript struct {
	gorm.Model
	SessionID string `json:"session_id" gorm:"uniqueIndex"`
	Messages  string `json:"messages"`
}

package services

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the chat turn pipeline. Every one of them is caught
// at the turn boundary and converted to a user-safe reply; none of them may
// escape to crash the process.
var (
	ErrRateLimited         = errors.New("rate limited")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrQuotaExceeded       = errors.New("quota exceeded")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDispatchFailed      = errors.New("report dispatch failed")
	ErrSessionNotFound     = errors.New("session not found")
)

// userFacingError maps an internal error to the Turkish reply shown in the chat
func userFacingError(err error, supportPhone string) string {
	switch {
	case errors.Is(err, ErrRateLimited):
		return msgRateLimited
	case errors.Is(err, ErrQuotaExceeded):
		return "⚠️ API kotası doldu. Lütfen daha sonra tekrar deneyin."
	case errors.Is(err, ErrInvalidCredentials):
		return "⚠️ API anahtarı hatası. Lütfen yönetici ile iletişime geçin."
	case errors.Is(err, ErrProviderUnavailable):
		return "AI servisi henüz başlatılamadı. Lütfen birkaç saniye bekleyin ve tekrar deneyin."
	default:
		return fmt.Sprintf("⚠️ Teknik sorun yaşıyorum. Direkt %s arayın.", supportPhone)
	}
}

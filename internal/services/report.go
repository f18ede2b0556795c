package services

import (
	"fmt"

	"github.com/dogusotomat/dogi-support-backend/internal/models"
)

// ReportDispatcher hands a finished report to the outside world (mail,
// webhook, ...). Implementations must not be retried by callers; a failure is
// surfaced as a soft warning only.
type ReportDispatcher interface {
	SendReport(report *models.Report) error
}

// Completion markers: the literal phrases in a reply that signal a case
// reached its terminal, reportable state.
const (
	customerMarkerPrefix = "Raporunuz"
	customerMarkerSuffix = "iletildi"
	operatorMarker       = "RAPOR İLETİLDİ"
)

// BuildCustomerReport builds the refund-request report from collected fields
func BuildCustomerReport(info CustomerInfo, recipient string) *models.Report {
	return &models.Report{
		Recipient: recipient,
		Subject:   fmt.Sprintf("İade Talebi - Seri: %s", info.MachineSerial),
		Body: fmt.Sprintf(`Makine Seri: %s
İşlem Tarihi: %s
Sorun: %s
Durum: 5 iş günü içinde otomatik iade yapılacak`, info.MachineSerial, info.IssueDate, info.Complaint),
	}
}

// BuildOperatorReport builds the technical-fault escalation report
func BuildOperatorReport(info OperatorInfo, issueDescription, recipient string) *models.Report {
	errorCode := info.ErrorCode
	if errorCode == "" {
		errorCode = "Yok/Belirtilmedi"
	}

	return &models.Report{
		Recipient: recipient,
		Subject:   fmt.Sprintf("Teknik Arıza - Seri: %s", info.MachineSerial),
		Body: fmt.Sprintf(`Makine Seri: %s
Hata Kodu: %s
Arıza Tarifi: %s
Durum: Teknik müdahale gerekli`, info.MachineSerial, errorCode, issueDescription),
	}
}

package services

import "strings"

// handleCustomer advances the customer branch by one step. input is the
// lowercased message, original the verbatim text.
func (s *ChatService) handleCustomer(sess *Session, input, original string) string {
	switch sess.Step {
	case StepTypeDetermined:
		if strings.Contains(input, "alamadım") || strings.Contains(input, "gelmedi") || strings.Contains(input, "iade") {
			sess.Step = StepAskRefundStatus
			return msgRefundStatusQuestion
		}
		return generalCustomerHelp(s.supportPhone)

	case StepAskRefundStatus:
		if strings.Contains(input, "geldi") || strings.Contains(input, "evet") || strings.Contains(input, "yapıldı") {
			// Refund already arrived, nothing to collect
			return refundCompletedReply(s.supportPhone)
		}
		sess.Step = StepAskMachineSerial
		return msgRefundPendingSerialPrompt

	case StepAskMachineSerial:
		serial, ok := ExtractSerial(original)
		if !ok {
			// Same step, field stays unset; the retry is idempotent
			return msgSerialNotFound
		}
		sess.CustomerInfo.MachineSerial = serial
		sess.Step = StepAskIssueDate
		return serialSavedReply(serial)

	case StepAskIssueDate:
		// Stored verbatim; the report consumer treats it as a display string
		sess.CustomerInfo.IssueDate = original
		sess.CustomerInfo.Complaint = defaultComplaint
		sess.Step = StepCompleted
		return customerCompletionReply(sess.CustomerInfo.MachineSerial, sess.CustomerInfo.IssueDate, s.supportEmail, s.supportPhone)

	default:
		return generalCustomerHelp(s.supportPhone)
	}
}

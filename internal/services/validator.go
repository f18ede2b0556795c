package services

import "strings"

func hasCustomerMarker(reply string) bool {
	return strings.Contains(reply, customerMarkerPrefix) && strings.Contains(reply, customerMarkerSuffix)
}

func hasOperatorMarker(reply string) bool {
	return strings.Contains(reply, operatorMarker)
}

// ValidateReply post-checks a synthesized reply against the fields the session
// actually holds. A reply that claims a field was recorded, or that carries a
// completion marker, while the field is still unset gets replaced by the
// matching re-prompt and the step is held at the collection point. This is the
// safety net for replies not produced by the rule table (e.g. a generated
// reply substituted in later).
func ValidateReply(sess *Session, reply string) string {
	switch sess.UserType {
	case UserTypeCustomer:
		claimsSerial := strings.Contains(reply, "Seri numara kaydedildi")
		if (claimsSerial || hasCustomerMarker(reply)) && sess.CustomerInfo.MachineSerial == "" {
			sess.Step = StepAskMachineSerial
			return msgSerialPrompt
		}
		if hasCustomerMarker(reply) && sess.CustomerInfo.IssueDate == "" {
			sess.Step = StepAskIssueDate
			return msgIssueDatePrompt
		}

	case UserTypeOperator:
		claimsSerial := strings.Contains(reply, "✅ Seri:")
		if (claimsSerial || hasOperatorMarker(reply)) && sess.OperatorInfo.MachineSerial == "" {
			sess.Step = StepAskMachineSerialOp
			return msgSerialNotFoundShort
		}
	}

	return reply
}

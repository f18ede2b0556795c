package services

// handleOperator advances the operator branch by one step
func (s *ChatService) handleOperator(sess *Session, input, original string) string {
	switch sess.Step {
	case StepTypeDetermined:
		sess.Step = StepAskMachineSerialOp
		return msgOperatorIntro

	case StepAskMachineSerialOp:
		serial, ok := ExtractSerial(original)
		if !ok {
			return msgSerialNotFoundShort
		}
		sess.OperatorInfo.MachineSerial = serial
		sess.Step = StepAskErrorCode
		return operatorSerialSavedReply(serial)

	case StepAskErrorCode:
		if code, ok := ExtractErrorCode(original); ok && sess.OperatorInfo.ErrorCode == "" {
			sess.OperatorInfo.ErrorCode = code
		}

		if solution, found := FindTechnicalSolution(input, original, s.supportPhone); found {
			// Solved with a canned script; no escalation is filed
			sess.Step = StepCompleted
			return solution
		}

		sess.Step = StepCompleted
		return operatorEscalationReply(sess.OperatorInfo.MachineSerial, original, s.techEmail, s.supportPhone)

	default:
		return msgOperatorFallback
	}
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateReplyOverridesRecordedClaimWithoutSerial(t *testing.T) {
	sess := &Session{UserType: UserTypeCustomer, Step: StepAskIssueDate}

	reply := ValidateReply(sess, "✅ Seri numara kaydedildi: 2503180076")

	assert.Equal(t, msgSerialPrompt, reply)
	assert.Equal(t, StepAskMachineSerial, sess.Step)
}

func TestValidateReplyOverridesCompletionMarkerWithoutSerial(t *testing.T) {
	sess := &Session{UserType: UserTypeCustomer, Step: StepCompleted}

	reply := ValidateReply(sess, "📧 **Raporunuz info@dogusotomat.com adresine iletildi:**")

	assert.Equal(t, msgSerialPrompt, reply)
	assert.Equal(t, StepAskMachineSerial, sess.Step)
}

func TestValidateReplyOverridesCompletionMarkerWithoutIssueDate(t *testing.T) {
	sess := &Session{UserType: UserTypeCustomer, Step: StepCompleted}
	sess.CustomerInfo.MachineSerial = "2503180076"

	reply := ValidateReply(sess, "📧 **Raporunuz info@dogusotomat.com adresine iletildi:**")

	assert.Equal(t, msgIssueDatePrompt, reply)
	assert.Equal(t, StepAskIssueDate, sess.Step)
}

func TestValidateReplyPassesConsistentCustomerReply(t *testing.T) {
	sess := &Session{UserType: UserTypeCustomer, Step: StepCompleted}
	sess.CustomerInfo.MachineSerial = "2503180076"
	sess.CustomerInfo.IssueDate = "23.01.2025 14:30"

	reply := customerCompletionReply("2503180076", "23.01.2025 14:30", "info@dogusotomat.com", testSupportPhone)

	assert.Equal(t, reply, ValidateReply(sess, reply))
	assert.Equal(t, StepCompleted, sess.Step)
}

func TestValidateReplyOverridesOperatorMarkerWithoutSerial(t *testing.T) {
	sess := &Session{UserType: UserTypeOperator, Step: StepCompleted}

	reply := ValidateReply(sess, "📧 **RAPOR İLETİLDİ**")

	assert.Equal(t, msgSerialNotFoundShort, reply)
	assert.Equal(t, StepAskMachineSerialOp, sess.Step)
}

func TestValidateReplyPassesOperatorEscalationWithSerial(t *testing.T) {
	sess := &Session{UserType: UserTypeOperator, Step: StepCompleted}
	sess.OperatorInfo.MachineSerial = "2503180076"

	reply := operatorEscalationReply("2503180076", "Motor arızalı", "teknik@dogusotomat.com", testSupportPhone)

	assert.Equal(t, reply, ValidateReply(sess, reply))
}

func TestValidateReplyLeavesPlainRepliesAlone(t *testing.T) {
	sess := &Session{UserType: UserTypeCustomer, Step: StepAskRefundStatus}

	assert.Equal(t, msgRefundStatusQuestion, ValidateReply(sess, msgRefundStatusQuestion))
	assert.Equal(t, StepAskRefundStatus, sess.Step)
}

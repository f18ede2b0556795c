package services

import "strings"

// Classifier decides whether the first message of a session comes from a
// customer or an operator. Behind an interface so the keyword table can be
// swapped without touching the state machine.
type Classifier interface {
	Classify(text string) string
}

// KeywordClassifier scans for Turkish intent keywords; ambiguous input
// defaults to customer.
type KeywordClassifier struct{}

var customerKeywords = []string{"müşteri", "alamadım", "para", "iade"}
var operatorKeywords = []string{"operatör", "hata", "arıza", "tekniker"}

func (KeywordClassifier) Classify(text string) string {
	input := strings.ToLower(text)

	for _, kw := range customerKeywords {
		if strings.Contains(input, kw) {
			return UserTypeCustomer
		}
	}

	for _, kw := range operatorKeywords {
		if strings.Contains(input, kw) {
			return UserTypeOperator
		}
	}

	return UserTypeCustomer
}

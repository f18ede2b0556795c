package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSupportPhone = "0538 912 58 58"

func TestFindTechnicalSolutionKnownCode(t *testing.T) {
	solution, found := FindTechnicalSolution("03", "03", testSupportPhone)
	require.True(t, found)
	assert.Contains(t, solution, "HATA KODU: 03")
	assert.Contains(t, solution, "DONDURMA SİSTEMİ KAPALI")
	assert.Contains(t, solution, testSupportPhone)
}

func TestFindTechnicalSolutionPadsSingleDigitCode(t *testing.T) {
	solution, found := FindTechnicalSolution("hata 5 veriyor", "Hata 5 veriyor", testSupportPhone)
	require.True(t, found)
	assert.Contains(t, solution, "HATA KODU: 05")
}

func TestFindTechnicalSolutionUnknownCodeForcesEscalation(t *testing.T) {
	// A numeric code outside the table is a lookup miss, not a fake success
	solution, found := FindTechnicalSolution("99", "99", testSupportPhone)
	assert.False(t, found)
	assert.Empty(t, solution)
}

func TestFindTechnicalSolutionIceCreamKeywords(t *testing.T) {
	solution, found := FindTechnicalSolution("dondurma çıkmıyor", "Dondurma çıkmıyor", testSupportPhone)
	require.True(t, found)
	assert.Contains(t, solution, "DONDURMA SORUNU")

	solution, found = FindTechnicalSolution("dondurma gelmiyor makineden", "Dondurma gelmiyor makineden", testSupportPhone)
	require.True(t, found)
	assert.Contains(t, solution, "DONDURMA SORUNU")
}

func TestFindTechnicalSolutionCupKeyword(t *testing.T) {
	solution, found := FindTechnicalSolution("bardak sıkıştı", "Bardak sıkıştı", testSupportPhone)
	require.True(t, found)
	assert.Contains(t, solution, "BARDAK SORUNU")
}

func TestFindTechnicalSolutionNoMatch(t *testing.T) {
	_, found := FindTechnicalSolution("motor ses yapıyor", "Motor ses yapıyor", testSupportPhone)
	assert.False(t, found)
}

func TestErrorCodeTableCoversDocumentedCodes(t *testing.T) {
	for _, code := range []string{"01", "03", "05", "17", "19", "25", "240"} {
		solution, ok := errorCodeSolutions[code]
		require.True(t, ok, "code %s missing", code)
		assert.False(t, strings.TrimSpace(solution) == "")
	}
}

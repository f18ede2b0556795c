package services

import (
	"fmt"
	"strings"
)

// errorCodeSolutions maps zero-padded machine error codes to remediation
// scripts for the Dogi soft ice cream machines.
var errorCodeSolutions = map[string]string{
	"01":  "🍯 REÇEL EKSİKLİĞİ\n• Reçel deposunu doldurun\n• Hortum bağlantısını kontrol edin",
	"03":  "🦦 DONDURMA SİSTEMİ KAPALI\n• Machine Settings → Mode → \"Automatic\"\n• Makineyi yeniden başlatın",
	"05":  "⚠️ DONDURMA MODÜLÜ HATASI\n• Makineyi kapat, 5dk bekle, aç\n• Devam ederse servis: 0538 912 58 58",
	"17":  "👁️ BARDAK SENSÖR SORUNU\n• Sensörü temizleyin\n• Leke kontrolü yapın",
	"19":  "🥤 BARDAK SORUNU\n• Bardak stoğu kontrol edin\n• Yeni bardak ekleyin",
	"25":  "🥤 BARDAK SORUNU\n• Bardak dispanseri sıkışması\n• Sıkışan bardakları temizleyin",
	"240": "💾 BELLEK HATASI\n• ACIL SERVİS: 0538 912 58 58\n• Veri kaybı riski!",
}

const iceCreamSolution = `🦦 DONDURMA SORUNU

**HIZLI ÇÖZÜM:**
1. Machine Settings → Mode → "Automatic"
2. Karışım deposu dolu mu?
3. Makineyi kapat-aç (30sn bekle)

**KONTROL ET:**
• Hata kodu var mı ekranda?
• 03: Dondurma sistemi kapalı
• 05: Dondurma modülü hatası`

const cupSolution = `🥤 BARDAK SORUNU

**ÇÖZÜM:**
1. Bardak stoğu kontrol
2. Sıkışma var mı kontrol
3. Bardak yolunu temizle

**HATA KODLARI:**
• 16-17: Sensör problemi
• 19: Bardak tespit edilmiyor`

// FindTechnicalSolution maps an error code or a known fault description to a
// canned remediation script. The second return value is false when nothing
// matches (including an unknown numeric code), which tells the caller to
// escalate instead of replying with nothing.
func FindTechnicalSolution(input, original, supportPhone string) (string, bool) {
	if code, ok := ExtractErrorCode(original); ok {
		solution, known := errorCodeSolutions[code]
		if !known {
			return "", false
		}
		return fmt.Sprintf("🔧 HATA KODU: %s\n\n%s\n\n📞 **Destek:** %s", code, solution, supportPhone), true
	}

	if strings.Contains(input, "dondurma") && (strings.Contains(input, "çıkmıyor") || strings.Contains(input, "gelmiyor")) {
		return fmt.Sprintf("%s\n\n📞 **Devam ederse:** %s", iceCreamSolution, supportPhone), true
	}

	if strings.Contains(input, "bardak") {
		return fmt.Sprintf("%s\n\n📞 **Destek:** %s", cupSolution, supportPhone), true
	}

	return "", false
}

package services

import "fmt"

// Canned Turkish dialogue texts for the support widget. The chat flow is fully
// rule based; these are the only replies the machine produces.

const msgWelcome = `🔧 DOGI TEKNİK DESTEK'e Hoş Geldiniz!

Ben Doğuş Otomat'ın teknik destek asistanıyım.

🎯 Size nasıl yardımcı olabilirim:
• Müşteri desteği (iade, şikayet)
• Operatör desteği (hata kodları, teknik sorunlar)

❗ Elektrik işleri için mutlaka yetkili servisi arayın: 0538 912 58 58`

const msgRateLimited = `⚠️ Çok fazla istek yapıldı. Lütfen 1 dakika bekleyin ve tekrar deneyin.`

// Customer flow

const msgRefundStatusQuestion = `🔍 DONDURMA ALMA SORUNU TESPİT EDİLDİ

❓ İade işlemi yapıldı mı?
• Banka hesabınızı kontrol ettiniz mi?
• Para iadesi geldi mi?

"Evet para geldi" veya "Hayır para gelmedi" şeklinde yanıtlayın.`

const msgSerialPrompt = `📱 Makine seri numarası nedir?
• Ekranın sol üst köşesinde 10 haneli numara
• Örnek: 2503180076

Seri numarayı yazın:`

const msgRefundPendingSerialPrompt = `❌ İade henüz yapılmamış.

` + msgSerialPrompt

const msgSerialNotFound = `❌ Seri numara bulunamadı.

🔍 Lütfen makine ekranının sol üst köşesindeki 10 haneli numarayı yazın.
Örnek: 2503180076`

const msgIssueDatePrompt = `📅 İşlem tarih-saati nedir?
• Örnek: "23.01.2025 14:30"
• Veya "dün saat 15:00"

Tarih ve saati yazın:`

// defaultComplaint is the canned issue description carried on every customer
// refund case; the widget never asks the customer to type one.
const defaultComplaint = "İade işlemi yapılmadı"

func refundCompletedReply(supportPhone string) string {
	return fmt.Sprintf(`✅ İade işleminiz tamamlanmış.

🤔 Başka bir sorunuz var mı?
📞 **Destek:** %s`, supportPhone)
}

func serialSavedReply(serial string) string {
	return fmt.Sprintf(`✅ Seri numara kaydedildi: %s

%s`, serial, msgIssueDatePrompt)
}

// customerCompletionReply carries the customer completion marker
// ("Raporunuz ... iletildi") that arms the report trigger.
func customerCompletionReply(serial, issueDate, supportEmail, supportPhone string) string {
	return fmt.Sprintf(`✅ BİLGİLERİNİZ KAYDEDİLDİ

📧 **Raporunuz %s adresine iletildi:**
• Seri No: %s
• Tarih: %s
• Sorun: %s

⏱️ **İade süreci:** 5 iş günü içinde otomatik yapılır

📞 **Takip:** %s`, supportEmail, serial, issueDate, defaultComplaint, supportPhone)
}

func generalCustomerHelp(supportPhone string) string {
	return fmt.Sprintf(`🎯 DOGI MÜŞTERİ DESTEK

Sorununuz nedir?
• "Dondurma alamadım"
• "Para iadesi gelmedi"
• "Makine bozuk"

📞 **Direkt Destek:** %s`, supportPhone)
}

// Operator flow

const msgOperatorIntro = `🔧 OPERATÖR DESTEK AKTIF

📱 İlk olarak makine seri numarası?
• Ekranın sol üst köşesi: 10 haneli numara
• Örnek: 2503180076`

const msgSerialNotFoundShort = `❌ Seri numara bulunamadı. 10 haneli numarayı yazın.`

const msgOperatorFallback = `🔧 Operatör destek aktif. Seri numarası ve hata kodunu belirtin.`

func operatorSerialSavedReply(serial string) string {
	return fmt.Sprintf(`✅ Seri: %s

❓ Hata kodu var mı?
• Örnek: "03", "240", "16"
• Hata kodu yoksa "yok" yazın
• Arıza tarifi de yazabilirsiniz`, serial)
}

// operatorEscalationReply carries the operator completion marker
// ("RAPOR İLETİLDİ") that arms the report trigger.
func operatorEscalationReply(serial, issue, techEmail, supportPhone string) string {
	return fmt.Sprintf(`📧 **RAPOR İLETİLDİ**

Arıza kaydınız %s adresine gönderildi:
• Seri: %s
• Sorun: %s

📞 **Acil:** %s`, techEmail, serial, issue, supportPhone)
}

func dispatchFailedWarning(supportPhone string) string {
	return fmt.Sprintf(`

⚠️ Rapor iletiminde gecikme yaşanıyor, kaydınız alındı. Acil durumda: %s`, supportPhone)
}

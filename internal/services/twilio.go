package services

import (
	"fmt"
	"log"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/dogusotomat/dogi-support-backend/internal/models"
)

// TwilioService pings the support line over WhatsApp when an operator fault
// is escalated. Optional; the chat flow works without it.
type TwilioService struct {
	client  *twilio.RestClient
	from    string
	alertTo string
}

// NewTwilioService creates a new Twilio service instance
func NewTwilioService() (*TwilioService, error) {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_WHATSAPP_FROM") // Format: "whatsapp:+14155238886"
	alertTo := os.Getenv("SUPPORT_ALERT_PHONE")

	if accountSid == "" || authToken == "" || from == "" || alertTo == "" {
		return nil, fmt.Errorf("missing Twilio credentials in environment variables")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	return &TwilioService{
		client:  client,
		from:    from,
		alertTo: alertTo,
	}, nil
}

// SendWhatsAppMessage sends a WhatsApp message via Twilio
func (t *TwilioService) SendWhatsAppMessage(to string, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(fmt.Sprintf("whatsapp:%s", to))
	params.SetBody(message)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("❌ Failed to send WhatsApp message: %v", err)
		return err
	}

	log.Printf("✅ WhatsApp message sent! SID: %s", *resp.Sid)
	return nil
}

// SendEscalationAlert notifies the support line about an escalated fault
func (t *TwilioService) SendEscalationAlert(sc *models.SupportCase) error {
	errorCode := sc.ErrorCode
	if errorCode == "" {
		errorCode = "yok"
	}

	message := fmt.Sprintf(`🔧 YENİ TEKNİK ARIZA

Seri: %s
Hata kodu: %s
Sorun: %s

Rapor %s adresine gönderildi.`, sc.MachineSerial, errorCode, sc.Description, sc.Recipient)

	return t.SendWhatsAppMessage(t.alertTo, message)
}

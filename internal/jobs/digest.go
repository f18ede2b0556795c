package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/dogusotomat/dogi-support-backend/internal/models"
	"github.com/dogusotomat/dogi-support-backend/internal/services"
	"github.com/dogusotomat/dogi-support-backend/internal/storage"
)

// DigestJob mails a daily summary of open support cases to the support team
type DigestJob struct {
	store      storage.Store
	dispatcher services.ReportDispatcher
	recipient  string
	isRunning  bool
}

// NewDigestJob creates a new digest job scheduler
func NewDigestJob(store storage.Store, dispatcher services.ReportDispatcher, recipient string) *DigestJob {
	return &DigestJob{
		store:      store,
		dispatcher: dispatcher,
		recipient:  recipient,
	}
}

// Start begins the scheduled digest job
func (d *DigestJob) Start() {
	if d.isRunning {
		log.Println("Digest job already running")
		return
	}

	d.isRunning = true
	go d.scheduleDailyDigest()
	log.Println("Daily case digest job started")
}

// Stop halts the scheduled job
func (d *DigestJob) Stop() {
	d.isRunning = false
	log.Println("Stopping digest job...")
}

// scheduleDailyDigest runs every day at 08:00 local time
func (d *DigestJob) scheduleDailyDigest() {
	for d.isRunning {
		now := time.Now()
		nextRun := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, now.Location())
		if !nextRun.After(now) {
			nextRun = nextRun.Add(24 * time.Hour)
		}

		duration := nextRun.Sub(now)
		log.Printf("Next case digest scheduled in %v", duration)
		time.Sleep(duration)

		if !d.isRunning {
			break
		}

		d.sendDigest()
	}
}

// sendDigest builds and dispatches the open-case summary
func (d *DigestJob) sendDigest() {
	cases, err := d.store.GetSupportCasesByStatus(models.CaseStatusOpen)
	if err != nil {
		log.Printf("❌ Failed to load open cases for digest: %v", err)
		return
	}

	if len(cases) == 0 {
		log.Println("No open cases, skipping digest")
		return
	}

	body := fmt.Sprintf("Açık destek kayıtları (%d adet):\n\n", len(cases))
	for _, sc := range cases {
		body += fmt.Sprintf("• %s | %s | Seri: %s | %s\n", sc.CaseID, sc.UserType, sc.MachineSerial, sc.Subject)
	}

	report := &models.Report{
		Recipient: d.recipient,
		Subject:   fmt.Sprintf("Günlük Destek Özeti - %s", time.Now().Format("02.01.2006")),
		Body:      body,
	}

	if err := d.dispatcher.SendReport(report); err != nil {
		log.Printf("❌ Failed to send case digest: %v", err)
		return
	}

	log.Printf("✅ Case digest sent: %d open cases", len(cases))
}

package reminder

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/config"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/models"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/timezone"
)

// Service envoie chaque matin un SMS de rappel aux clients qui ont un
// rendez-vous le lendemain. Sans identifiants Twilio, le service reste
// inactif.
type Service struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
	tz     string
}

func New(db *gorm.DB, cfg *config.Config) *Service {
	s := &Service{
		db:   db,
		from: cfg.TwilioFromNumber,
		tz:   cfg.Timezone,
	}

	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}

	return s
}

func (s *Service) StartScheduler() {
	if s.client == nil {
		log.Println("reminder scheduler disabled: no Twilio credentials")
		return
	}

	c := cron.New(cron.WithLocation(timezone.Location(s.tz)))

	// tous les jours à 9h, heure du salon
	if _, err := c.AddFunc("0 9 * * *", s.SendDailyReminders); err != nil {
		log.Printf("failed to schedule reminders: %v", err)
		return
	}

	c.Start()
	log.Println("reminder scheduler started")
}

// SendDailyReminders traite les rendez-vous de demain.
func (s *Service) SendDailyReminders() {
	log.Println("starting daily reminder processing...")

	now := timezone.NowIn(s.tz)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 1)

	var appointments []models.Appointment
	if err := s.db.
		Preload("Customer").
		Where("start_time >= ? AND start_time < ?", start, end).
		Order("start_time ASC").
		Find(&appointments).Error; err != nil {

		log.Printf("failed to fetch tomorrow's appointments: %v", err)
		return
	}

	for _, ap := range appointments {
		s.sendReminder(ap)
	}

	log.Printf("daily reminder processing completed (%d appointments)", len(appointments))
}

func (s *Service) sendReminder(ap models.Appointment) {
	if ap.Customer.Phone == "" {
		return
	}

	message := fmt.Sprintf(
		"Bonjour %s, rappel de votre rendez-vous demain à %s.",
		ap.Customer.Name,
		ap.StartTime.Format("15h04"),
	)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(ap.Customer.Phone)
	params.SetFrom(s.from)
	params.SetBody(message)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("failed to send reminder to %s: %v", ap.Customer.Phone, err)
	}
}

// services/notification_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cashback-backend/config"
	"cashback-backend/models"
	"cashback-backend/repositories"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const (
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"

	StatusSent   = "sent"
	StatusFailed = "failed"
)

// MessageSender delivers a text message and returns the provider message id.
//
//go:generate mockgen -destination=mocks/mock_sender.go -package=mock_services -source=notification_service.go MessageSender
type MessageSender interface {
	Send(channel, to, body string) (string, error)
}

// TwilioSender sends through the Twilio messaging API.
type TwilioSender struct {
	client         *twilio.RestClient
	phoneNumber    string
	whatsAppNumber string
}

func NewTwilioSender(cfg config.NotificationConfig) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioSID,
			Password: cfg.TwilioToken,
		}),
		phoneNumber:    cfg.PhoneNumber,
		whatsAppNumber: cfg.WhatsAppNumber,
	}
}

func (s *TwilioSender) Send(channel, to, body string) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetBody(body)
	if channel == ChannelWhatsApp {
		params.SetTo("whatsapp:" + to)
		params.SetFrom("whatsapp:" + s.whatsAppNumber)
	} else {
		params.SetTo(to)
		params.SetFrom(s.phoneNumber)
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", err
	}
	if resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}

// NotificationService tells customers about cashback credits they have not
// been told about yet.
type NotificationService struct {
	repo      repositories.Repository
	sender    MessageSender
	batchSize int
	log       logrus.FieldLogger
	cron      *cron.Cron
	now       func() time.Time
}

func NewNotificationService(repo repositories.Repository, sender MessageSender, batchSize int, log logrus.FieldLogger) *NotificationService {
	if batchSize < 1 {
		batchSize = 200
	}
	return &NotificationService{
		repo:      repo,
		sender:    sender,
		batchSize: batchSize,
		log:       log.WithField("component", "notifications"),
		now:       time.Now,
	}
}

// Start schedules SendPendingNotifications on a standard five-field cron
// expression.
func (s *NotificationService) Start(schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		sent, failed, err := s.SendPendingNotifications(context.Background())
		if err != nil {
			s.log.WithError(err).Error("notification run failed")
			return
		}
		s.log.WithFields(logrus.Fields{"sent": sent, "failed": failed}).Info("notification run finished")
	})
	if err != nil {
		return fmt.Errorf("invalid notification schedule %q: %w", schedule, err)
	}

	s.cron = c
	c.Start()
	s.log.WithField("schedule", schedule).Info("notification scheduler started")
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *NotificationService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// SendPendingNotifications messages the owner of every unnotified credit.
// Each credit is attempted once: it is marked notified whether or not the
// delivery succeeded, and the outcome is kept in a NotificationLog.
func (s *NotificationService) SendPendingNotifications(ctx context.Context) (sent, failed int, err error) {
	credits, err := s.repo.ListUnnotifiedCredits(ctx, s.batchSize)
	if err != nil {
		return 0, 0, &StorageError{Op: "list unnotified credits", Err: err}
	}

	for _, credit := range credits {
		if credit.Customer == nil || credit.Customer.Phone == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return sent, failed, err
		}

		phone := *credit.Customer.Phone
		channel := ChannelSMS
		if strings.HasPrefix(phone, "+") {
			channel = ChannelWhatsApp
		}
		message := CashbackMessage(credit)

		entry := &models.NotificationLog{
			CustomerID:    credit.CustomerID,
			TransactionID: credit.ID,
			Message:       message,
			Channel:       channel,
			Status:        StatusSent,
			SentAt:        s.now(),
		}

		fields := logrus.Fields{"customer": credit.CustomerID, "transaction": credit.ID, "channel": channel}
		sid, sendErr := s.sender.Send(channel, phone, message)
		if sendErr != nil {
			s.log.WithFields(fields).WithError(sendErr).Warn("cashback notification failed")
			entry.Status = StatusFailed
			entry.ErrorMessage = sendErr.Error()
			failed++
		} else {
			s.log.WithFields(fields).WithField("sid", sid).Debug("cashback notification sent")
			sent++
		}

		if err := s.repo.CreateNotificationLog(ctx, entry); err != nil {
			s.log.WithFields(fields).WithError(err).Error("failed to store notification log")
		}
		if err := s.repo.MarkTransactionNotified(ctx, credit.ID); err != nil {
			return sent, failed, &StorageError{Op: "mark transaction notified", Err: err}
		}
	}
	return sent, failed, nil
}

// CashbackMessage is the text sent for one credit.
func CashbackMessage(credit models.Transaction) string {
	name := "cliente"
	balance := 0
	if credit.Customer != nil {
		if first := strings.Fields(credit.Customer.Name); len(first) > 0 {
			name = first[0]
		}
		balance = credit.Customer.TotalPoints
	}
	return fmt.Sprintf("Olá %s! Você ganhou %d pontos de cashback. %s. Saldo atual: %d pontos.",
		name, credit.Points, credit.Description, balance)
}

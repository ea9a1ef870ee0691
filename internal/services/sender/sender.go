// Package services отправляет владельцам объявлений письма
// с результатами модерации.
package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/sl"
	libsmtp "github.com/ragheeddamaj/dubizzle-mini/internal/lib/smtp"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

type SenderService struct {
	transport libsmtp.TransportInterface
	log       *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(log *slog.Logger, transport libsmtp.TransportInterface) *SenderService {
	return &SenderService{
		transport: transport,
		log:       log,
	}
}

// SendModerationResult отправляет владельцу письмо о решении модератора.
func (s *SenderService) SendModerationResult(body []byte) error {
	var event models.ModerationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.log.Error("Failed to unmarshal message body", "error", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{event.OwnerEmail}
	var subject, bodyText string
	switch event.Status {
	case models.StatusApproved:
		subject = fmt.Sprintf("Ваше объявление «%s» опубликовано", event.Title)
		bodyText = fmt.Sprintf("Здравствуйте, %s!\n\nВаше объявление «%s» прошло модерацию и теперь видно всем посетителям.",
			event.OwnerName, event.Title)
	case models.StatusRejected:
		subject = fmt.Sprintf("Ваше объявление «%s» отклонено", event.Title)
		bodyText = fmt.Sprintf("Здравствуйте, %s!\n\nВаше объявление «%s» отклонено модератором.\n\nПричина: %s",
			event.OwnerName, event.Title, event.RejectionReason)
	default:
		return fmt.Errorf("unexpected moderation status: %s", event.Status)
	}
	if event.Comment != "" {
		bodyText += "\n\nКомментарий модератора: " + event.Comment
	}

	return s.sendEmail(to, subject, bodyText)
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("Failed to connect to SMTP server", "error", sl.Err(err))
		return err
	}
	defer client.Close()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("Failed to set MAIL FROM", "from", s.transport.GetSMTPUser(), "error", sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("Failed to set RCPT TO", "recipient", addr, "error", sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("Failed to get Data writer", "error", sl.Err(err))
		return err
	}

	_, err = wc.Write([]byte(msg))
	if err != nil {
		s.log.Error("Failed to write email body", "error", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("Failed to close Data writer", "error", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("Failed to quit SMTP client", "error", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", "to", to)
	return nil
}

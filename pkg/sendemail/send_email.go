package sendemail

import (
	"errors"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type EmailService interface {
	SendEmail(subject, toEmail, plainTextContent, htmlContent string) error
}

type emailService struct {
	client      *sendgrid.Client
	senderEmail string
	senderName  string
}

// NewEmailService builds a sendgrid-backed sender from SENDGRID_API_KEY,
// SENDGRID_SENDER_EMAIL and SENDGRID_SENDER_NAME.
func NewEmailService() EmailService {
	return &emailService{
		client:      sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY")),
		senderEmail: os.Getenv("SENDGRID_SENDER_EMAIL"),
		senderName:  os.Getenv("SENDGRID_SENDER_NAME"),
	}
}

func (e *emailService) SendEmail(subject, toEmail, plainTextContent, htmlContent string) error {
	from := mail.NewEmail(e.senderName, e.senderEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	resp, err := e.client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return errors.New("failed to send email")
	}
	return nil
}

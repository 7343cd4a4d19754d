package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendQueryAnswered(toEmail, question, answer string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendQueryAnswered(toEmail, question, answer string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Question Has Been Answered")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Good news!</h2>
			<p>A course assistant has answered the question you asked earlier:</p>
			<blockquote style="border-left: 4px solid #4CAF50; padding-left: 10px; color: #555;">%s</blockquote>
			<p><strong>Answer:</strong></p>
			<p>%s</p>
			<p>You can also ask the assistant again; it now knows this answer.</p>
		</div>
	`, question, answer)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send answer notification to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Answer notification sent to %s\n", toEmail)
	return nil
}

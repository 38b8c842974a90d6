package email

import (
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
	"gopkg.in/gomail.v2"

	"github.com/touchpointee/avanyaa-store/internal/config"
)

// Mailer sends order emails over whichever transport the configuration
// selects: Resend when an API key is present, SMTP otherwise. Sending is
// best-effort; callers never fail an order on email errors.
type Mailer struct {
	cfg    config.Config
	resend *resend.Client
}

func NewMailer(cfg config.Config) *Mailer {
	m := &Mailer{cfg: cfg}
	if cfg.ResendAPIKey != "" {
		m.resend = resend.NewClient(cfg.ResendAPIKey)
	}
	return m
}

func (m *Mailer) send(to, subject, html string) error {
	if m.resend != nil {
		_, err := m.resend.Emails.Send(&resend.SendEmailRequest{
			From:    m.cfg.EmailFrom,
			To:      []string{to},
			Subject: subject,
			Html:    html,
		})
		return err
	}

	if m.cfg.SMTPHost == "" {
		return fmt.Errorf("no email transport configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.EmailFrom)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPassword)
	return dialer.DialAndSend(msg)
}

// SendOrderConfirmation emails the customer their order summary.
func (m *Mailer) SendOrderConfirmation(data OrderEmailData) error {
	html, err := renderCustomerEmail(data)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Order Confirmation - #%s", data.OrderID)
	return m.send(data.CustomerEmail, subject, html)
}

// SendAdminOrderNotification alerts the store admin about a new order.
func (m *Mailer) SendAdminOrderNotification(data OrderEmailData) error {
	if m.cfg.AdminEmail == "" {
		return nil
	}
	html, err := renderAdminEmail(data)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("New Order - #%s", data.OrderID)
	return m.send(m.cfg.AdminEmail, subject, html)
}

// DispatchOrderEmails fires both order emails in the background. Failures
// are logged and swallowed; the order is already persisted.
func (m *Mailer) DispatchOrderEmails(data OrderEmailData) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[EMAIL] panic recovered: %v", r)
			}
		}()

		if err := m.SendOrderConfirmation(data); err != nil {
			log.Printf("[EMAIL] order confirmation failed for %s: %v", data.OrderID, err)
		}
		if err := m.SendAdminOrderNotification(data); err != nil {
			log.Printf("[EMAIL] admin notification failed for %s: %v", data.OrderID, err)
		}
	}()
}

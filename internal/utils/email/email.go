package email

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/simplebank/internal/config"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

func (s *Sender) send(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	return e.Send(addr, auth)
}

// SendAccountCreated sends the account creation notification
func (s *Sender) SendAccountCreated(to, name string, accountNumber int64) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Account Created"

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your account has been created.\n"+
			"Your account number is %d.\n",
		name, accountNumber,
	)
	body += "\nBest regards,\nSimpleBank"
	e.Text = []byte(body)

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

// SendTransactionNotification sends a notification email for a deposit or withdrawal
func (s *Sender) SendTransactionNotification(to, name string, accountNumber int64, transactionType string, amount, balance decimal.Decimal) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("%s Notification", transactionType)

	body := fmt.Sprintf(
		"Dear %s,\n\n", name,
	)
	if transactionType == "Deposit" {
		body += fmt.Sprintf(
			"Your account %d has been credited with %s.\n"+
				"Transaction time: %s\n"+
				"Current balance: %s\n",
			accountNumber, amount.StringFixed(2), time.Now().Format("2006-01-02 15:04:05"), balance.StringFixed(2),
		)
	} else if transactionType == "Withdrawal" {
		body += fmt.Sprintf(
			"An amount of %s has been withdrawn from your account %d.\n"+
				"Transaction time: %s\n"+
				"Current balance: %s\n",
			amount.StringFixed(2), accountNumber, time.Now().Format("2006-01-02 15:04:05"), balance.StringFixed(2),
		)
	}
	body += "\nBest regards,\nSimpleBank"
	e.Text = []byte(body)

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send %s notification to %s: %v", transactionType, to, err)
		return fmt.Errorf("failed to send %s notification: %w", transactionType, err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

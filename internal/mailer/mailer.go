package mailer

import (
	"context"
	"time"

	"github.com/elevateglobal/elevate-wallet/internal/config"
	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/sony/gobreaker"
	"gopkg.in/gomail.v2"
)

// Mailer sends member notifications over SMTP. Dispatch is best-effort: a
// failure is logged and the breaker keeps a flapping SMTP relay from slowing
// every decision request down.
type Mailer struct {
	Dialer  *gomail.Dialer
	From    string
	Breaker *gobreaker.CircuitBreaker
}

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "smtp-relay",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// Builds the mailer
func NewMailer(cfg config.MailConfig) *Mailer {
	return &Mailer{
		Dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		From:    cfg.From,
		Breaker: InitCircuitBreaker(),
	}
}

// Notify sends a message to the member's registered address. memberID doubles
// as the local part until member profiles carry a verified email.
func (m *Mailer) Notify(ctx context.Context, memberID string, subject string, message string) {
	if m.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("SMTP relay unavailable, skip notification for", memberID)
		return
	}

	_, err := m.Breaker.Execute(func() (interface{}, error) {
		msg := gomail.NewMessage()
		msg.SetHeader("From", m.From)
		msg.SetHeader("To", memberID+"@elevate.local")
		msg.SetHeader("Subject", subject)
		msg.SetBody("text/plain", message)
		return nil, m.Dialer.DialAndSend(msg)
	})
	if err != nil {
		logger.Error("Failed to send notification email", err)
	}
}

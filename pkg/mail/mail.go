// Package mail delivers the confirmation-code message over SMTP, or into the
// application log when no mail server is configured.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"yamdb-api/pkg/utils"

	"go.uber.org/zap"
)

const (
	confirmationSubject = "YaMDb confirmation code"
	confirmationBody    = "Your confirmation code:\n%s\nThanks for using YaMDb."
)

// Message is a single plaintext email.
type Message struct {
	Subject string
	Body    string
	From    string
	To      []string
}

// Sender is the mail transport.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Notifier formats and dispatches confirmation-code mails.
type Notifier struct {
	sender Sender
	from   string
}

func NewNotifier(sender Sender, from string) *Notifier {
	return &Notifier{sender: sender, from: from}
}

// SendConfirmationCode sends one message; transport errors are returned as is.
func (n *Notifier) SendConfirmationCode(ctx context.Context, email string, code int) error {
	return n.sender.Send(ctx, Message{
		Subject: confirmationSubject,
		Body:    fmt.Sprintf(confirmationBody, utils.FormatConfirmationCode(code)),
		From:    n.from,
		To:      []string{email},
	})
}

// NewSender picks the transport named by the config driver.
func NewSender(cfg utils.EmailConfig, log *zap.Logger) (Sender, error) {
	switch cfg.Driver {
	case "smtp":
		if cfg.Host == "" {
			return nil, fmt.Errorf("invalid email config: SMTP_HOST is required for smtp driver")
		}
		return NewSMTPSender(cfg), nil
	case "log", "":
		return NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("invalid email driver %q", cfg.Driver)
	}
}

// ==================== SMTP ====================

type SMTPSender struct {
	addr     string
	host     string
	user     string
	password string
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(cfg utils.EmailConfig) *SMTPSender {
	return &SMTPSender{
		addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		host:     cfg.Host,
		user:     cfg.User,
		password: cfg.Password,
		sendMail: smtp.SendMail,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if s.user != "" {
		auth = smtp.PlainAuth("", s.user, s.password, s.host)
	}

	if err := s.sendMail(s.addr, auth, msg.From, msg.To, buildMessage(msg, time.Now())); err != nil {
		return fmt.Errorf("send mail to %s via %s: %w", strings.Join(msg.To, ","), s.addr, err)
	}
	return nil
}

func buildMessage(msg Message, now time.Time) []byte {
	var b strings.Builder
	b.WriteString("From: " + msg.From + "\r\n")
	b.WriteString("To: " + strings.Join(msg.To, ", ") + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("Date: " + now.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}

// ==================== LOG ====================

// LogSender writes messages to the logger instead of delivering them.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.With(zap.String("mailer", "log"))}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.log.Info("Mail dispatched",
		zap.String("from", msg.From),
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
	)
	return nil
}

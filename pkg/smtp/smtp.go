package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"strings"
)

type ItfSmtp interface {
	Enabled() bool
	SendContactNotification(msg ContactNotification) error
}

type ContactNotification struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type Config struct {
	Host     string
	Port     string
	Mail     string
	Password string
	NotifyTo string
}

type sendFunc func(addr string, a smtpPkg.Auth, from string, to []string, msg []byte) error

type smtp struct {
	auth     smtpPkg.Auth
	addr     string
	mail     string
	notifyTo []string
	send     sendFunc
}

func New(cfg Config) ItfSmtp {
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	auth := smtpPkg.PlainAuth("", cfg.Mail, cfg.Password, cfg.Host)

	var to []string
	for _, addr := range strings.Split(cfg.NotifyTo, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			to = append(to, addr)
		}
	}

	return &smtp{
		auth:     auth,
		addr:     cfg.Host + ":" + cfg.Port,
		mail:     cfg.Mail,
		notifyTo: to,
		send:     smtpPkg.SendMail,
	}
}

// Enabled reports whether a sender and at least one recipient are configured.
func (s *smtp) Enabled() bool {
	return s.mail != "" && len(s.notifyTo) > 0
}

func (s *smtp) SendContactNotification(msg ContactNotification) error {
	if !s.Enabled() {
		return nil
	}
	return s.send(s.addr, s.auth, s.mail, s.notifyTo, s.buildMessage(msg))
}

func (s *smtp) buildMessage(msg ContactNotification) []byte {
	subject := msg.Subject
	if subject == "" {
		subject = "(no subject)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.mail)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(s.notifyTo, ", "))
	fmt.Fprintf(&b, "Reply-To: %s\r\n", headerSafe(msg.Email))
	fmt.Fprintf(&b, "Subject: New contact submission: %s\r\n", headerSafe(subject))
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	fmt.Fprintf(&b, "Name: %s\r\nEmail: %s\r\n", msg.Name, msg.Email)
	if msg.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\r\n", msg.Phone)
	}
	fmt.Fprintf(&b, "\r\n%s\r\n", msg.Message)
	return []byte(b.String())
}

// headerSafe strips CR and LF so user input cannot inject headers.
func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}

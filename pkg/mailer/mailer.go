package mailer

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/wneessen/go-mail"
)

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=pkgmocks github.com/salesdesk/salesdesk/pkg/mailer Mailer

// Mailer is the interface for sending emails
type Mailer interface {
	// Send delivers one message; nothing is retried
	Send(ctx context.Context, msg Message) error
	// Sender returns the address messages are sent from
	Sender() string
}

// Message is a rendered email. Text is optional when HTML is set.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Config holds the configuration for the mailer
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// SMTPMailer implements the Mailer interface using SMTP
type SMTPMailer struct {
	config   *Config
	testMode bool
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: false,
	}
}

// NewTestSMTPMailer creates a new SMTP mailer in test mode (won't connect to SMTP server)
func NewTestSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: true,
	}
}

func (m *SMTPMailer) Sender() string {
	return m.config.FromEmail
}

// Send builds the message and delivers it in a single SMTP session
func (m *SMTPMailer) Send(ctx context.Context, message Message) error {
	msg, err := m.buildMessage(message)
	if err != nil {
		return err
	}

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	// For testing - log information if client is nil
	if client == nil {
		log.Printf("Sending email to: %s", message.To)
		log.Printf("From: %s <%s>", m.config.FromName, m.config.FromEmail)
		log.Printf("Subject: %s", message.Subject)
		return nil
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (m *SMTPMailer) buildMessage(message Message) (*mail.Msg, error) {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return nil, fmt.Errorf("failed to set email from address: %w", err)
	}

	if err := msg.To(message.To); err != nil {
		return nil, fmt.Errorf("failed to set email recipient: %w", err)
	}

	if message.ReplyTo != "" {
		if err := msg.ReplyTo(message.ReplyTo); err != nil {
			return nil, fmt.Errorf("failed to set reply-to address: %w", err)
		}
	}

	msg.Subject(message.Subject)

	switch {
	case message.HTML != "":
		msg.SetBodyString(mail.TypeTextHTML, message.HTML)
		if message.Text != "" {
			msg.AddAlternativeString(mail.TypeTextPlain, message.Text)
		}
	default:
		msg.SetBodyString(mail.TypeTextPlain, message.Text)
	}

	return msg, nil
}

// createSMTPClient creates and configures a new SMTP client
func (m *SMTPMailer) createSMTPClient() (*mail.Client, error) {
	// In test mode, return nil client to avoid SMTP connections
	if m.testMode {
		return nil, nil
	}

	clientOptions := []mail.Option{
		mail.WithPort(m.config.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}

	// Unauthenticated relays (port 25, local MTAs) take no credentials
	if m.config.SMTPUsername != "" && m.config.SMTPPassword != "" {
		clientOptions = append(clientOptions,
			mail.WithUsername(m.config.SMTPUsername),
			mail.WithPassword(m.config.SMTPPassword),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.config.SMTPHost, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return client, nil
}

// ConsoleMailer is a development implementation that just logs emails
type ConsoleMailer struct {
	From string
}

// NewConsoleMailer creates a new console mailer for development
func NewConsoleMailer(from string) *ConsoleMailer {
	return &ConsoleMailer{From: from}
}

func (m *ConsoleMailer) Sender() string {
	return m.From
}

// Send prints the message to stdout
func (m *ConsoleMailer) Send(_ context.Context, msg Message) error {
	body := msg.Text
	if body == "" {
		body = msg.HTML
	}

	fmt.Println("==============================================================")
	fmt.Printf("To: %s\n", msg.To)
	fmt.Printf("Subject: %s\n\n", msg.Subject)
	fmt.Println(body)
	fmt.Println("==============================================================")

	return nil
}

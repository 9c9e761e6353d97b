package adapter

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/MKhiriev/fitcoach/internal/config"
	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	templateVerifyEmail   = "verify_email.html"
	templateResetPassword = "reset_password.html"
	templateWelcome       = "welcome.html"
	templateSubscription  = "subscription.html"
)

// emailMessage is a rendered email ready for a transport.
type emailMessage struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// mailTransport delivers rendered messages.
type mailTransport interface {
	send(ctx context.Context, msg emailMessage) error
	name() string
}

type button struct {
	Href  string
	Label string
	Color string
}

type mailData struct {
	Tagline   string
	FirstName string
	Link      string
	PlanName  string
	Amount    string
	Benefits  []string
	Button    button
	Year      int
}

type plan struct {
	name     string
	amount   string
	benefits []string
}

var plans = map[models.SubscriptionTier]plan{
	models.TierPremium: {
		name:   "Premium",
		amount: "14.99",
		benefits: []string{
			"Unlimited AI messages and conversations",
			"Full dashboard access",
			"Personalized workout plans",
			"Nutrition guidance",
		},
	},
	models.TierPro: {
		name:   "Pro",
		amount: "19.99",
		benefits: []string{
			"Everything in Premium",
			"Advanced macro and calorie tracking",
			"Detailed progress analytics",
			"Priority support",
		},
	},
}

type mailer struct {
	transport   mailTransport
	from        string
	frontendURL string
	templates   *template.Template
	now         func() time.Time

	logger *logger.Logger
}

// NewMailer builds the [NotificationSender]. Resend is used when an API key
// is configured, SMTP when a host is configured. Without either every send
// fails with ErrEmailNotConfigured.
func NewMailer(cfg config.Email, frontendURL string, logger *logger.Logger) (NotificationSender, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}

	var transport mailTransport
	switch {
	case cfg.ResendAPIKey != "":
		transport, err = newResendTransport(cfg)
		if err != nil {
			return nil, err
		}
	case cfg.SMTPHost != "":
		transport = newSMTPTransport(cfg)
	default:
		transport = unconfiguredTransport{}
	}

	logger.Info().Str("func", "NewMailer").Str("transport", transport.name()).Msg("email transport selected")

	return &mailer{
		transport:   transport,
		from:        cfg.From,
		frontendURL: frontendURL,
		templates:   tmpl,
		now:         time.Now,
		logger:      logger,
	}, nil
}

func (m *mailer) SendVerificationEmail(ctx context.Context, to, link string) error {
	return m.send(ctx, to, "Verify Your FitlyAI Account", templateVerifyEmail, mailData{
		Tagline: "Your Personal AI Fitness Coach",
		Link:    link,
		Button:  button{Href: link, Label: "Verify Email", Color: "#2563eb"},
	})
}

func (m *mailer) SendPasswordResetEmail(ctx context.Context, to, firstName, link string) error {
	return m.send(ctx, to, "Reset Your FitlyAI Password", templateResetPassword, mailData{
		Tagline:   "Password Reset Request",
		FirstName: greetingName(firstName),
		Link:      link,
		Button:    button{Href: link, Label: "Reset Password", Color: "#dc2626"},
	})
}

func (m *mailer) SendWelcomeEmail(ctx context.Context, to, firstName string) error {
	return m.send(ctx, to, "Welcome to FitlyAI - Your AI Fitness Journey Starts Now!", templateWelcome, mailData{
		Tagline:   "Your Personal AI Fitness Coach",
		FirstName: greetingName(firstName),
		Button:    button{Href: m.frontendURL, Label: "Start Your Journey", Color: "#2563eb"},
	})
}

func (m *mailer) SendSubscriptionConfirmation(ctx context.Context, to, firstName string, tier models.SubscriptionTier) error {
	p, ok := plans[tier]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedTier, tier)
	}

	subject := fmt.Sprintf("Welcome to FitlyAI %s - Let's Transform Your Fitness!", p.name)
	return m.send(ctx, to, subject, templateSubscription, mailData{
		Tagline:   "Subscription Activated!",
		FirstName: greetingName(firstName),
		PlanName:  p.name,
		Amount:    p.amount,
		Benefits:  p.benefits,
		Button:    button{Href: m.frontendURL, Label: "Access Your Dashboard", Color: "#2563eb"},
	})
}

func (m *mailer) send(ctx context.Context, to, subject, templateName string, data mailData) error {
	data.Year = m.now().Year()

	var body bytes.Buffer
	if err := m.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("render %s: %w", templateName, err)
	}

	msg := emailMessage{From: m.from, To: to, Subject: subject, HTML: body.String()}
	if err := m.transport.send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", ErrEmailNotSent, err)
	}

	logger.FromContext(ctx).Debug().Str("func", "mailer.send").
		Str("transport", m.transport.name()).
		Str("template", templateName).
		Msg("email sent")
	return nil
}

func greetingName(firstName string) string {
	if firstName == "" {
		return "there"
	}
	return firstName
}

type unconfiguredTransport struct{}

func (unconfiguredTransport) send(context.Context, emailMessage) error {
	return ErrEmailNotConfigured
}

func (unconfiguredTransport) name() string {
	return "none"
}

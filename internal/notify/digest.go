// Package notify delivers the recruiter insight digest over SMTP.
package notify

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	gomail "github.com/wneessen/go-mail"

	"recruit_portal_backend/internal/leads/insights"
	"recruit_portal_backend/platform/config"
)

// DigestSender mails the weekly insight summary to the recruiter team.
type DigestSender struct {
	cfg config.MailConfig
}

func NewDigestSender(cfg config.MailConfig) *DigestSender {
	return &DigestSender{cfg: cfg}
}

// SendDigest renders the summary into a plain-text digest and sends one mail
// per configured recipient.
func (s *DigestSender) SendDigest(ctx context.Context, summary insights.Summary) error {
	if !s.cfg.IsEmailEnabled() {
		return nil
	}
	recipients := s.cfg.GetDigestRecipients()
	if len(recipients) == 0 {
		return nil
	}

	subject := digestSubject(summary.GeneratedAt)
	body := renderDigest(summary)

	for _, to := range recipients {
		if err := s.send(ctx, to, subject, body); err != nil {
			return fmt.Errorf("digest to %s: %w", to, err)
		}
	}
	return nil
}

func (s *DigestSender) send(ctx context.Context, toEmail, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.cfg.GetEmailFromName(), s.cfg.GetEmailFromAddress()); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	client, err := gomail.NewClient(s.cfg.GetSMTPHost(),
		gomail.WithPort(s.cfg.GetSMTPPort()),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.GetSMTPUsername()),
		gomail.WithPassword(s.cfg.GetSMTPPassword()),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func digestSubject(at time.Time) string {
	return "Recruitment digest for " + at.Format("Jan 2, 2006")
}

func renderDigest(summary insights.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Leads in pipeline: %d\n", summary.TotalLeads)
	fmt.Fprintf(&b, "Ready to proceed: %d (%d%%)\n\n", summary.ReadyCount, summary.ReadyPercent)

	if len(summary.Insights) > 0 {
		b.WriteString("This week's observations:\n")
		for _, line := range summary.Insights {
			fmt.Fprintf(&b, "  - %s\n", line)
		}
		b.WriteString("\n")
	}

	if len(summary.ByCountry) > 0 {
		b.WriteString("Top markets:\n")
		limit := len(summary.ByCountry)
		if limit > 5 {
			limit = 5
		}
		for _, m := range summary.ByCountry[:limit] {
			fmt.Fprintf(&b, "  %-24s %3d leads, %d%% converted\n", m.Country, m.Total, m.ConversionRate)
		}
	}

	return b.String()
}

package libs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"tourist-safety/config"
	"tourist-safety/models"
)

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// MailNotifier emails the operations inbox (ALERT_EMAIL_TO).
type MailNotifier struct {
	sender mailSender
	from   string
	to     string
}

func NewMailNotifier(cfg *config.Config) (*MailNotifier, error) {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, errors.New("SMTP configuration missing")
	}
	if cfg.AlertEmailTo == "" {
		return nil, errors.New("ALERT_EMAIL_TO not set")
	}

	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	return newMailNotifier(dialer, from, cfg.AlertEmailTo), nil
}

func newMailNotifier(sender mailSender, from, to string) *MailNotifier {
	return &MailNotifier{sender: sender, from: from, to: to}
}

var sosTemplate = template.Must(template.New("sos").Parse(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #dc2626;">{{.Title}}</h2>
        <p><strong>Tourist:</strong> {{.TouristName}} ({{.TouristEmail}})</p>
        <p><strong>Phone:</strong> {{.TouristPhone}}</p>
        <p><strong>Location:</strong> {{printf "%.5f" .Lat}}, {{printf "%.5f" .Lng}}</p>
        <p><strong>Reported at:</strong> {{.CreatedAt.Format "2006-01-02 15:04:05 MST"}}</p>
        <p>{{.Description}}</p>
        <p style="color: #666; font-size: 12px;">Incident #{{.ID}}. This is an automated email. Please do not reply.</p>
    </div>
</body>
</html>
`))

var pendingTemplate = template.Must(template.New("pending").Parse(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #333;">Authority awaiting verification</h2>
        <p><strong>Name:</strong> {{.FullName}}</p>
        <p><strong>Official email:</strong> {{.OfficialEmail}}</p>
        <p><strong>Agency:</strong> {{.AgencyName}} ({{.AgencyType}})</p>
        <p><strong>Authority ID:</strong> {{.AuthorityID}}</p>
        <p>Verify the account from the admin API before the officer can log in.</p>
    </div>
</body>
</html>
`))

func (n *MailNotifier) send(subject string, tmpl *template.Template, data interface{}) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	if err := n.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

func (n *MailNotifier) NotifySOS(_ context.Context, alert models.SOSAlert) error {
	subject := fmt.Sprintf("SOS Alert #%d - %s", alert.ID, alert.TouristName)
	return n.send(subject, sosTemplate, alert)
}

func (n *MailNotifier) NotifyAuthorityPending(_ context.Context, profile models.AuthorityProfile) error {
	subject := fmt.Sprintf("Authority registration pending - %s", profile.AgencyName)
	return n.send(subject, pendingTemplate, profile)
}

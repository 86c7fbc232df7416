package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"

	"gopkg.in/gomail.v2"
)

// HoldConfirmationData fills the hold confirmation email.
type HoldConfirmationData struct {
	HoldID       string
	CustomerName string
	Facility     string
	Date         string
	Time         string
	Amount       string
	ExpiresAt    string
}

var holdConfirmationTmpl = template.Must(template.New("hold").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Your venue is on hold</h2>
  <p>Hi {{.CustomerName}},</p>
  <p>We are holding <strong>{{.Facility}}</strong> for you on <strong>{{.Date}}</strong>, {{.Time}}.</p>
  <p>Amount due: <strong>{{.Amount}}</strong></p>
  <p>Please complete payment before <strong>{{.ExpiresAt}}</strong>, after which the hold is released.</p>
  <p>Reference: {{.HoldID}}</p>
  <img src="cid:hold-qr.png" alt="{{.HoldID}}" width="200" height="200"/>
</body>
</html>`))

type Mailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether an SMTP host is configured.
func (m *Mailer) Enabled() bool {
	return m != nil && m.Host != ""
}

// SendHoldConfirmation renders and sends the email in the background.
// Failures are logged only.
func (m *Mailer) SendHoldConfirmation(to string, data HoldConfirmationData) {
	if !m.Enabled() || to == "" {
		return
	}
	go func() {
		var body bytes.Buffer
		if err := holdConfirmationTmpl.Execute(&body, data); err != nil {
			log.Printf("Failed to render hold email: %v", err)
			return
		}

		qr, err := GenerateQRCode(data.HoldID, 256)
		if err != nil {
			log.Printf("Failed to generate hold QR code: %v", err)
			return
		}

		msg := gomail.NewMessage()
		msg.SetHeader("From", m.From)
		msg.SetHeader("To", to)
		msg.SetHeader("Subject", "Venue hold "+data.HoldID)
		msg.SetBody("text/html", body.String())
		msg.Embed("hold-qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(qr)
			return err
		}))

		d := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
		if err := d.DialAndSend(msg); err != nil {
			log.Printf("Failed to send hold email to %s: %v", to, err)
		}
	}()
}

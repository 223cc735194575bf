package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

// Template inlined so the binary carries no runtime file dependency.
const accessEmailTemplate = `
<p>Salut {{.FirstName}},</p>
<p>Tes workflows n8n sont prêts. Ton lien d'accès personnel :</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
<p>Garde ce lien, c'est lui qui ouvre ta bibliothèque de workflows.</p>
<p>— L'équipe</p>
`

var accessTmpl = template.Must(template.New("access").Parse(accessEmailTemplate))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendAccessLink(to, firstName, link string) error {
	data := AccessEmailData{
		FirstName: firstName,
		Link:      link,
	}

	var body bytes.Buffer
	if err := accessTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render access email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("%s, tes workflows n8n sont prêts 🚀", firstName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("SMTP send failed: %w", err)
	}

	return nil
}

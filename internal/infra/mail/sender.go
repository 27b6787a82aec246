package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var downloadTemplate = template.Must(template.ParseFS(templateFS, "templates/download.html"))

const productName = "DIV-AI"

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// BuildDownloadMessage renders the download-link email without sending it.
func (s *EmailSender) BuildDownloadMessage(to, downloadURL string) (*gomail.Message, error) {
	data := DownloadEmailData{
		ProductName: productName,
		DownloadURL: downloadURL,
		PackageSize: "1.65GB",
	}

	var body bytes.Buffer
	if err := downloadTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("render download email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Your %s download link", productName))
	m.SetBody("text/html", body.String())
	return m, nil
}

func (s *EmailSender) SendDownloadLink(to, downloadURL string) error {
	m, err := s.BuildDownloadMessage(to, downloadURL)
	if err != nil {
		return err
	}

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send download email via SMTP: %w", err)
	}

	return nil
}

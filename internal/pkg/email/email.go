package email

import (
	"context"

	"github.com/go-gomail/gomail"
)

//go:generate mockgen -source=./email.go -package=emailmocks -destination=./mocks/email.mock.go Service

type Service interface {
	Send(ctx context.Context, subject, to string, content []byte) error
}

type gomailService struct {
	d *gomail.Dialer
}

func NewService(dialer *gomail.Dialer) Service {
	return &gomailService{
		d: dialer,
	}
}

func (svc *gomailService) Send(_ context.Context, subject, to string, content []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", svc.d.Username)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", string(content))
	return svc.d.DialAndSend(m)
}

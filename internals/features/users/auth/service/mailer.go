// internals/features/users/auth/service/mailer.go
package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"musicschool_backend/internals/configs"
)

var ErrMailerNotConfigured = errors.New("sendgrid api key is not configured")

// SendOTPEmail delivers the reset code to the account's email address.
func SendOTPEmail(toName, toEmail, code string) error {
	if configs.SendGridAPIKey == "" {
		return ErrMailerNotConfigured
	}

	from := mail.NewEmail(configs.AppName, configs.EmailFrom)
	to := mail.NewEmail(toName, toEmail)
	subject := fmt.Sprintf("%s password reset code", configs.AppName)
	plain := fmt.Sprintf("Your password reset code is %s. It expires in 5 minutes.", code)
	html := fmt.Sprintf("<p>Your password reset code is <strong>%s</strong>.</p><p>It expires in 5 minutes.</p>", code)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(configs.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[ERROR] sendgrid status %d: %s", resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

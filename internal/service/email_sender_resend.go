package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

type ResendEmailSender struct {
	Client     *resend.Client
	From       string
	AppBaseURL string
	VerifyPath string
}

func NewResendEmailSender(apiKey string, from string, appBaseURL string) *ResendEmailSender {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" {
		return &ResendEmailSender{}
	}
	return &ResendEmailSender{
		Client:     resend.NewClient(apiKey),
		From:       from,
		AppBaseURL: strings.TrimRight(appBaseURL, "/"),
		VerifyPath: "/verify",
	}
}

func (s *ResendEmailSender) SendVerificationEmail(ctx context.Context, email string, username string, token string) error {
	if s.Client == nil {
		return errors.New("email sender not configured")
	}
	link := s.buildURL(s.VerifyPath, token)
	params := &resend.SendEmailRequest{
		From:    s.From,
		To:      []string{email},
		Subject: "Verify your email",
		Html: fmt.Sprintf(
			"<p>Hi %s,</p><p>Click to verify your email:</p><p><a href=\"%s\">Verify Email</a></p><p>The link expires in one hour.</p>",
			username, link,
		),
		Text: fmt.Sprintf("Hi %s, verify your email: %s (the link expires in one hour)", username, link),
	}
	if _, err := s.Client.Emails.SendWithContext(ctx, params); err != nil {
		return err
	}
	return nil
}

func (s *ResendEmailSender) buildURL(path string, token string) string {
	if s.AppBaseURL == "" {
		return token
	}
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("%s%s?token=%s", s.AppBaseURL, path, token)
}

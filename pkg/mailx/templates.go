package mailx

import (
	"fmt"
	"net/url"
	"strings"
)

// VerificationLink builds {siteURL}/verify-email?token=<token>.
func VerificationLink(siteURL, token string) string {
	return strings.TrimRight(siteURL, "/") + "/verify-email?token=" + url.QueryEscape(token)
}

// VerificationMessage is sent after registration and on resend.
func VerificationMessage(to, link string) Message {
	return Message{
		To:      to,
		Subject: "Verify Your Email",
		Body:    fmt.Sprintf("Hi %s\nUse the link below to verify your account:\n%s", to, link),
	}
}

// ResetCodeMessage carries a password reset code.
func ResetCodeMessage(to, code string) Message {
	return Message{
		To:      to,
		Subject: "Reset Password Code",
		Body:    fmt.Sprintf("Use this code %s to reset your password", code),
	}
}

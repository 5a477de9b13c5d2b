package services

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
)

// sendMail delivers a single plain-text message using the configured
// SMTP account. All notification mail is best-effort: failures are
// logged and never surfaced to the caller.
func sendMail(to, subject, body string) {
	cfg := config.AppConfig
	if cfg == nil || cfg.SMTP.Host == "" || cfg.SMTP.From == "" {
		log.Printf("SMTP not configured, skipping mail to %s (%s)", to, subject)
		return
	}

	msg := []byte("From: " + cfg.SMTP.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body + "\r\n")

	addr := fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port)
	auth := smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	if err := smtp.SendMail(addr, auth, cfg.SMTP.From, []string{to}, msg); err != nil {
		log.Printf("Failed to send mail to %s: %v", to, err)
		return
	}
	log.Printf("Sent mail to %s (%s)", to, subject)
}

// NotifyAdminOfSignup tells the configured admin address about a fresh
// signup waiting for approval.
func NotifyAdminOfSignup(user *models.User) {
	cfg := config.AppConfig
	if cfg == nil || cfg.SMTP.Username == "" {
		return
	}
	body := fmt.Sprintf("A new user has signed up: %s (%s, role %s). Approve the account from the pending users page.",
		user.Username, user.Email, user.Role)
	sendMail(cfg.SMTP.Username, "New user signup awaiting approval", body)
}

// NotifyUserApproved tells a user their account is now active.
func NotifyUserApproved(user *models.User) {
	body := fmt.Sprintf("Dear %s,\n\nYour account has been approved. You can now log in with your credentials.",
		user.FullName())
	sendMail(user.Email, "Your account has been approved", body)
}

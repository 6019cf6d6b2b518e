package entities

import "time"

type MailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}

type MailSendHistory struct {
	FromEmail string    `db:"from_email"`
	ToEmail   string    `db:"to_email"`
	Subject   string    `db:"subject"`
	Content   string    `db:"content"`
	SentAt    time.Time `db:"sent_at"`
}

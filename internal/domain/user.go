package domain

import "time"

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
	UserStatusDeleted   UserStatus = "DELETED"
)

type User struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	TelegramChatID *int64     `json:"telegram_chat_id,omitempty"`
	Status         UserStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

type CreateUserInput struct {
	Email          string
	FullName       string
	TelegramChatID *int64
}

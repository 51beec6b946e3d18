package user

import (
	"io"

	"users-srv/internal/model"
)

type UserOutput struct {
	User model.User
}

type NotificationsOutput struct {
	Notifications []model.Notification
}

type UpdatePropicInput struct {
	Filename    string
	ContentType string
	Size        int64
	File        io.Reader
}

type UpdatePropicOutput struct {
	User  model.User
	Token string
}

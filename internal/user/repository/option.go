package repository

import "users-srv/internal/model"

// GetOneOptions selects a user by ID or, when ID is empty, by Email.
type GetOneOptions struct {
	ID    string
	Email string
}

type CreateOptions struct {
	User model.User
}

type UpdatePropicOptions struct {
	UserID    string
	PropicURL string
}

type AddFCMTokenOptions struct {
	UserID string
	Token  string
}

type ListNotificationsOptions struct {
	UserID string
}

package service

import "context"

// NotificationService sends push notifications to a user's device. Used to
// surface "reconnect your account" prompts when a sync ends authRequired.
type NotificationService interface {
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}

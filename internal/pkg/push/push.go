// Package push sends FCM notifications to household members' devices.
package push

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/homehub-app/homehub/internal/config"
)

type Notifier struct {
	client *messaging.Client
}

// NewNotifier initializes the Firebase Admin SDK. When no credentials file
// is configured the notifier is disabled and Send becomes a no-op, so the
// server runs fine without a Firebase project in development.
func NewNotifier(cfg *config.Config) (*Notifier, error) {
	if cfg.FirebaseCredentialsFile == "" {
		log.Info().Msg("push notifications disabled, no firebase credentials configured")
		return &Notifier{}, nil
	}

	opt := option.WithCredentialsFile(cfg.FirebaseCredentialsFile)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		return nil, err
	}

	return &Notifier{client: client}, nil
}

// Enabled reports whether sends will actually reach FCM.
func (n *Notifier) Enabled() bool {
	return n != nil && n.client != nil
}

// Send pushes one notification to a device token. Failures are logged and
// swallowed: a push is best-effort and never fails the triggering request.
func (n *Notifier) Send(ctx context.Context, deviceToken, title, body string) {
	if !n.Enabled() || deviceToken == "" {
		return
	}

	_, err := n.client.Send(ctx, &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("push send failed")
	}
}

// SendAll pushes the same notification to several device tokens.
func (n *Notifier) SendAll(ctx context.Context, deviceTokens []string, title, body string) {
	for _, t := range deviceTokens {
		n.Send(ctx, t, title, body)
	}
}

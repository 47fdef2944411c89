package notification

import (
	"context"
	"strconv"

	"firebase.google.com/go/v4/messaging"
)

//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go
type Provider interface {
	Send(ctx context.Context, msg Message) error
}

// FCMClient is the subset of *messaging.Client the provider needs.
type FCMClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendDryRun(ctx context.Context, message *messaging.Message) (string, error)
}

type fcmProvider struct {
	client FCMClient
	dryRun bool
}

// NewFCMProvider delivers through Firebase Cloud Messaging. The recipient id
// is the device registration token the client reported as its user id.
func NewFCMProvider(client FCMClient, dryRun bool) Provider {
	return &fcmProvider{
		client: client,
		dryRun: dryRun,
	}
}

func (p *fcmProvider) Send(ctx context.Context, msg Message) error {
	fcmMsg := buildFCMMessage(msg)

	var err error
	if p.dryRun {
		_, err = p.client.SendDryRun(ctx, fcmMsg)
	} else {
		_, err = p.client.Send(ctx, fcmMsg)
	}
	return err
}

func buildFCMMessage(msg Message) *messaging.Message {
	return &messaging.Message{
		Token: msg.RecipientID,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: map[string]string{
			"type":      msg.Data.Type,
			"latitude":  strconv.FormatFloat(msg.Data.Latitude, 'f', -1, 64),
			"longitude": strconv.FormatFloat(msg.Data.Longitude, 'f', -1, 64),
			"screen":    msg.Data.Screen,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}
}

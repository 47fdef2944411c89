package notification_test

import (
	"context"
	"errors"
	"testing"

	"sos-service/internal/notification"
	mock_notification "sos-service/internal/notification/mocks"

	"firebase.google.com/go/v4/messaging"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMessage() notification.Message {
	return notification.Message{
		RecipientID: "device-token",
		Title:       "🚨 SOS Alert",
		Body:        "Someone nearby needs help",
		Data: notification.Data{
			Type:      "sos",
			Latitude:  55.75,
			Longitude: 37.6173,
			Screen:    "SOSAlert",
		},
	}
}

func TestFCMProvider_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_notification.NewMockFCMClient(ctrl)

	var sent *messaging.Message
	client.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *messaging.Message) (string, error) {
			sent = m
			return "projects/x/messages/1", nil
		}).
		Times(1)

	p := notification.NewFCMProvider(client, false)
	require.NoError(t, p.Send(context.Background(), sampleMessage()))

	require.NotNil(t, sent)
	assert.Equal(t, "device-token", sent.Token)
	assert.Equal(t, "🚨 SOS Alert", sent.Notification.Title)
	assert.Equal(t, "Someone nearby needs help", sent.Notification.Body)
	assert.Equal(t, map[string]string{
		"type":      "sos",
		"latitude":  "55.75",
		"longitude": "37.6173",
		"screen":    "SOSAlert",
	}, sent.Data)
	assert.Equal(t, "high", sent.Android.Priority)
}

func TestFCMProvider_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_notification.NewMockFCMClient(ctrl)

	client.EXPECT().SendDryRun(gomock.Any(), gomock.Any()).Return("", nil).Times(1)

	p := notification.NewFCMProvider(client, true)
	assert.NoError(t, p.Send(context.Background(), sampleMessage()))
}

func TestFCMProvider_PropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_notification.NewMockFCMClient(ctrl)

	boom := errors.New("registration-token-not-registered")
	client.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", boom).Times(1)

	p := notification.NewFCMProvider(client, false)
	assert.ErrorIs(t, p.Send(context.Background(), sampleMessage()), boom)
}

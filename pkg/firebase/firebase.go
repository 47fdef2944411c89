package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// SetUpFireBase initialises the Firebase app from a service account file and
// returns it together with a ready messaging client.
func SetUpFireBase(ctx context.Context, credentialsFile string) (*firebase.App, *messaging.Client, error) {
	opt := option.WithCredentialsFile(credentialsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error getting messaging client: %w", err)
	}

	return app, client, nil
}

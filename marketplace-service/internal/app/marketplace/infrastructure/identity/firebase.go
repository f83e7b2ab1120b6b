package identity

import (
	"context"
	"fmt"

	"bazaar/marketplace-service/internal/app/marketplace/infrastructure"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// tokenVerifier - часть *auth.Client, которая нужна верификатору
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type FirebaseVerifier struct {
	client tokenVerifier
}

// NewFirebaseVerifier инициализирует Firebase Admin SDK из service account JSON
func NewFirebaseVerifier(ctx context.Context, credentialsJSON []byte, projectID string) (*FirebaseVerifier, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*infrastructure.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", infrastructure.ErrInvalidToken, err)
	}

	email, _ := decoded.Claims["email"].(string)

	return &infrastructure.Identity{
		UID:   decoded.UID,
		Email: email,
	}, nil
}

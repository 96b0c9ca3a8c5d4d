package store

import (
	"context"

	"github.com/jaekyeom/go-bulletin-board/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CredentialRepository persists the client's session credential between
// runs. Token and username are stored together and cleared together, never
// independently.
type CredentialRepository interface {
	Save(ctx context.Context, creds models.Credentials) error
	Load(ctx context.Context) (models.Credentials, error)
	Clear(ctx context.Context) error
}

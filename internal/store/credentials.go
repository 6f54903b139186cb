package store

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/muzaparoff/rest-api-exam/models"
)

// inMemoryCredentialStore is a CredentialStore holding a fixed account set
// built at startup. The map is never mutated after construction, so reads
// need no locking.
type inMemoryCredentialStore struct {
	credentials map[string]models.Credential
}

// NewInMemoryCredentialStore builds a CredentialStore from plaintext
// username/password pairs, hashing each password with bcrypt. Intended for
// development and demo deployments; production should supply a store backed
// by a real user database.
func NewInMemoryCredentialStore(accounts map[string]string) (CredentialStore, error) {
	credentials := make(map[string]models.Credential, len(accounts))
	for username, password := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing password for %q: %w", username, err)
		}
		credentials[username] = models.Credential{
			Username:     username,
			PasswordHash: string(hash),
			IsActive:     true,
		}
	}

	return &inMemoryCredentialStore{credentials: credentials}, nil
}

// DemoAccounts returns the built-in development account set.
func DemoAccounts() map[string]string {
	return map[string]string{
		"admin":    "password",
		"testuser": "testpass",
	}
}

// Find implements [CredentialStore].
func (s *inMemoryCredentialStore) Find(ctx context.Context, username string) (models.Credential, error) {
	credential, ok := s.credentials[username]
	if !ok {
		return models.Credential{}, ErrCredentialNotFound
	}

	return credential, nil
}

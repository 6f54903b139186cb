package store

import "github.com/muzaparoff/rest-api-exam/internal/logger"

// Storages bundles every persistence-layer dependency the service layer
// needs.
type Storages struct {
	Users       UserRepository
	Credentials CredentialStore
}

// NewStorages wires the repositories over an open database connection and
// the built-in demo credential set.
func NewStorages(db *DB, log *logger.Logger) (*Storages, error) {
	credentials, err := NewInMemoryCredentialStore(DemoAccounts())
	if err != nil {
		return nil, err
	}

	return &Storages{
		Users:       NewUserRepository(db, log),
		Credentials: credentials,
	}, nil
}

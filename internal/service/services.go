package service

import (
	"github.com/muzaparoff/rest-api-exam/internal/config"
	"github.com/muzaparoff/rest-api-exam/internal/logger"
	"github.com/muzaparoff/rest-api-exam/internal/store"
	"github.com/muzaparoff/rest-api-exam/internal/validators"
)

type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.Credentials, cfg.Auth, logger),
		UserService: NewUserService(storages.Users, validators.NewUserValidator(), logger),
	}
}

package impl

import (
	"io"
	"log/slog"

	"financas/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(adminEmail string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			AdminEmail: adminEmail,
		},
	}
}

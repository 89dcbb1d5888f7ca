package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/studyplan/internal/constants"
	"github.com/julianstephens/studyplan/internal/keyring"
	"github.com/julianstephens/studyplan/internal/logger"
	"github.com/julianstephens/studyplan/internal/storage"
	"github.com/julianstephens/studyplan/internal/storage/postgres"
	"github.com/julianstephens/studyplan/internal/storage/sqlite"
)

// OpenStore picks the storage backend for target, the --config value.
//
// An explicit PostgreSQL URL is used as-is but must not embed a password.
// Otherwise, when target is the default path, a connection string from
// STUDYPLAN_DB_CONNECTION or the OS keyring takes precedence over SQLite.
func OpenStore(target string) (storage.Provider, error) {
	if postgres.IsConnString(target) {
		if valid, err := postgres.ValidateConnString(target); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w: use the OS keyring (%s keyring set), %s, or .pgpass instead",
					err, constants.AppName, constants.EnvDBConnection)
			}
			return nil, err
		}
		return postgres.New(target), nil
	}

	if target == constants.DefaultConfigPath {
		if connStr := strings.TrimSpace(os.Getenv(constants.EnvDBConnection)); connStr != "" {
			logger.Debug("Using PostgreSQL connection from environment", "env", constants.EnvDBConnection)
			return postgres.New(connStr), nil
		}

		connStr, err := keyring.GetConnectionString()
		switch {
		case err == nil:
			logger.Debug("Using PostgreSQL connection from OS keyring")
			return postgres.New(connStr), nil
		case errors.Is(err, keyring.ErrNotFound):
		default:
			logger.Debug("OS keyring unavailable, falling back to SQLite", "error", err)
		}
	}

	path, err := ExpandPath(target)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

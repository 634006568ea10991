// Package config implements the persisted configuration store using Viper.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.trai.ch/zerr"
)

const (
	configFileName = "config"
	configFileExt  = "yaml"

	dirPerm  = 0o750
	filePerm = 0o600
)

// Store reads and writes pakt's configuration file. Keys follow the dotted
// form used throughout ("registry.index", "http.proxy", ...). Values are
// read fresh per invocation; the store is never cached across commands.
type Store struct {
	v    *viper.Viper
	home string
}

// Home returns the pakt configuration directory: $PAKT_HOME if set,
// otherwise ~/.pakt.
func Home() (string, error) {
	if home := os.Getenv("PAKT_HOME"); home != "" {
		return home, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine home directory")
	}
	return filepath.Join(userHome, ".pakt"), nil
}

// NewStore creates a Store over the default configuration directory.
func NewStore() (*Store, error) {
	home, err := Home()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(home)
}

// NewStoreAt creates a Store over a specific configuration directory.
// A missing config file is not an error; every value is simply unset.
func NewStoreAt(home string) (*Store, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileExt)
	v.AddConfigPath(home)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, zerr.Wrap(err, "failed to read configuration file")
		}
	}

	return &Store{v: v, home: home}, nil
}

// GetString returns the string value for key, and whether it is set.
func (s *Store) GetString(key string) (string, bool) {
	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}

// GetInt returns the integer value for key, and whether it is set.
func (s *Store) GetInt(key string) (int64, bool) {
	if !s.v.IsSet(key) {
		return 0, false
	}
	return s.v.GetInt64(key), true
}

// SaveRegistryLogin writes the registry table {index?, token} to the global
// configuration file, creating the directory and file as needed. The index
// is carried over only when one is already configured.
func (s *Store) SaveRegistryLogin(token string) error {
	if index, ok := s.GetString("registry.index"); ok {
		s.v.Set("registry.index", index)
	}
	s.v.Set("registry.token", token)

	if err := os.MkdirAll(s.home, dirPerm); err != nil {
		return zerr.Wrap(err, "failed to create configuration directory")
	}

	path := filepath.Join(s.home, configFileName+"."+configFileExt)
	if err := s.v.WriteConfigAs(path); err != nil {
		return zerr.Wrap(err, "failed to write configuration file")
	}
	return os.Chmod(path, filePerm)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilTarget is returned when Load is called with a nil pointer.
var ErrNilTarget = errors.New("config target must be a non-nil pointer")

var (
	dotenvOnce sync.Once
	dotenvErr  error

	cacheMu sync.Mutex
	cache   = make(map[reflect.Type]any)
)

// Load populates cfg from environment variables.
// The .env file in the working directory is loaded on first use; a missing
// file is ignored and existing variables are never overwritten.
// Each configuration type is parsed once and served from cache afterwards.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilTarget
	}

	if err := loadDotenv(); err != nil {
		return err
	}

	key := reflect.TypeFor[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*cfg = cached.(T)
		return nil
	}

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	cache[key] = loaded
	*cfg = loaded
	return nil
}

// MustLoad is like Load but panics on error.
// Useful at startup where a broken configuration is fatal.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

func loadDotenv() error {
	dotenvOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			dotenvErr = fmt.Errorf("load .env: %w", err)
		}
	})
	return dotenvErr
}

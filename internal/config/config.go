package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"arbfix/internal/domain"
	"arbfix/internal/logger"
)

// DefaultManifest is read when no manifest is named and the file exists.
const DefaultManifest = "arbfix.toml"

const (
	EnvConfig   = "ARBFIX_CONFIG"
	EnvLogLevel = "ARBFIX_LOG_LEVEL"
	EnvLang     = "ARBFIX_LANG"
)

type Config struct {
	// Manifest is the manifest that was read, empty if none.
	Manifest string
	// Files is the ordered list of documents to normalize.
	Files    []string
	LogLevel logger.Level
	Lang     string
}

// Options carries command-line values; they win over the environment, which
// wins over the manifest.
type Options struct {
	Manifest string
	Files    []string
	LogLevel string
	Lang     string
}

type manifest struct {
	Files    []string `toml:"files"`
	LogLevel string   `toml:"log_level"`
	Lang     string   `toml:"lang"`
}

// Load reads .env, the environment and the TOML manifest, then validates the
// result.
func Load(fsys afero.Fs, opts Options) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	path, explicit := manifestPath(opts.Manifest)
	m, err := readManifest(fsys, path, explicit)
	if err != nil {
		return nil, err
	}

	cfg := &Config{Lang: "en"}
	if m != nil {
		cfg.Manifest = path
		cfg.Files = resolve(filepath.Dir(path), m.Files)
		cfg.Lang = firstNonEmpty(m.Lang, cfg.Lang)
	}
	if len(opts.Files) > 0 {
		cfg.Files = opts.Files
	}
	cfg.Lang = firstNonEmpty(opts.Lang, os.Getenv(EnvLang), cfg.Lang)

	var manifestLevel string
	if m != nil {
		manifestLevel = m.LogLevel
	}
	level, err := logger.ParseLevel(firstNonEmpty(opts.LogLevel, os.Getenv(EnvLogLevel), manifestLevel))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.LogLevel = level

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate applies the rules every run depends on.
func (c *Config) validate() error {
	if len(c.Files) == 0 {
		return fmt.Errorf("config: %w", domain.ErrNoTargets)
	}
	for i, f := range c.Files {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("config: files[%d] is empty", i)
		}
	}
	return nil
}

func manifestPath(flag string) (path string, explicit bool) {
	if flag != "" {
		return flag, true
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env, true
	}
	return DefaultManifest, false
}

// readManifest returns nil without error when the default manifest is absent.
func readManifest(fsys afero.Fs, path string, explicit bool) (*manifest, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &domain.FileAccessError{Path: path, Op: "read", Err: err}
	}
	defer f.Close()

	var m manifest
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		parseErr := &domain.ParseError{Path: path, Err: err}
		var decErr *toml.DecodeError
		if errors.As(err, &decErr) {
			parseErr.Line, parseErr.Column = decErr.Position()
		}
		return nil, parseErr
	}
	return &m, nil
}

// resolve makes relative manifest entries relative to the manifest directory.
func resolve(dir string, files []string) []string {
	out := make([]string, len(files))
	for i, f := range files {
		if f == "" || filepath.IsAbs(f) {
			out[i] = f
			continue
		}
		out[i] = filepath.Join(dir, f)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

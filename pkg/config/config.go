// Package config loads the filedeck user configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const UserDir = "~/.filedeck"
const fileName = "config.yaml"

var osUserHomeDir = os.UserHomeDir
var osReadFile = os.ReadFile

// Config is the user configuration. Zero values in a config file keep the defaults.
type Config struct {
	DataFile   string `yaml:"data_file,omitempty"`   // Records file; the bundled set when empty
	FilterPath string `yaml:"filter_path,omitempty"` // Initial path prefix filter
	SortKey    string `yaml:"sort,omitempty"`        // Initial sort: name, type, size, date or none
	Mask       string `yaml:"mask,omitempty"`        // Initial mask: a built-in name or a glob
	Watch      bool   `yaml:"watch,omitempty"`       // Reload DataFile when it changes

	Types []string `yaml:"types,omitempty"` // Initial type filter; all types when empty

	Share struct {
		BaseURL string `yaml:"base_url,omitempty"`
	} `yaml:"share"`

	Mail struct {
		To      string `yaml:"to,omitempty"`
		Subject string `yaml:"subject,omitempty"`
		Body    string `yaml:"body,omitempty"`
	} `yaml:"mail"`

	Viewer struct {
		Style string `yaml:"style,omitempty"` // Chroma style for documents
	} `yaml:"viewer"`

	Log struct {
		File  string `yaml:"file,omitempty"`
		Level string `yaml:"level,omitempty"`
	} `yaml:"log"`
}

func Default() *Config {
	cfg := &Config{
		FilterPath: "/file-server/",
	}
	cfg.Share.BaseURL = "https://example.com/share/"
	cfg.Mail.To = "recipient@example.com"
	cfg.Mail.Subject = "File Sharing"
	cfg.Mail.Body = "Please find the attached file."
	cfg.Viewer.Style = "dracula"
	cfg.Log.Level = "info"
	return cfg
}

// GetUserDir returns the expanded UserDir.
func GetUserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDir, err
	}
	return filepath.Join(userHomeDir, UserDir[2:]), nil
}

// DefaultPath returns the location of the config file in the user dir.
func DefaultPath() (string, error) {
	dir, err := GetUserDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the config file at path over the defaults. The file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := osReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	var fileCfg Config
	if err = yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	cfg.merge(fileCfg)
	return cfg, nil
}

// LoadIfExists is Load for the implicit default path: a missing file gives the defaults.
func LoadIfExists(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c *Config) merge(o Config) {
	mergeString(&c.DataFile, o.DataFile)
	mergeString(&c.FilterPath, o.FilterPath)
	mergeString(&c.SortKey, o.SortKey)
	mergeString(&c.Mask, o.Mask)
	c.Watch = c.Watch || o.Watch
	if len(o.Types) > 0 {
		c.Types = o.Types
	}
	mergeString(&c.Share.BaseURL, o.Share.BaseURL)
	mergeString(&c.Mail.To, o.Mail.To)
	mergeString(&c.Mail.Subject, o.Mail.Subject)
	mergeString(&c.Mail.Body, o.Mail.Body)
	mergeString(&c.Viewer.Style, o.Viewer.Style)
	mergeString(&c.Log.File, o.Log.File)
	mergeString(&c.Log.Level, o.Log.Level)
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

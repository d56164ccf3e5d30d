// Package config holds the viewer's static options.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "config.json"

// Config is the immutable set of options supplied once at startup.
type Config struct {
	DirectoryPrompt string `json:"directory_prompt" yaml:"directory_prompt" env:"STORYVIEW_DIRECTORY_PROMPT"`
	SelectionPrompt string `json:"selection_prompt" yaml:"selection_prompt" env:"STORYVIEW_SELECTION_PROMPT"`
	ConfirmPrompt   string `json:"confirm_prompt" yaml:"confirm_prompt" env:"STORYVIEW_CONFIRM_PROMPT"`
	RestartMessage  string `json:"restart_message" yaml:"restart_message" env:"STORYVIEW_RESTART_MESSAGE"`
	ExitMessage     string `json:"exit_message" yaml:"exit_message" env:"STORYVIEW_EXIT_MESSAGE"`

	InvalidDirectoryMessage string `json:"invalid_directory_message" yaml:"invalid_directory_message"`
	NoFilesMessage          string `json:"no_files_message" yaml:"no_files_message"`
	InvalidInputMessage     string `json:"invalid_input_message" yaml:"invalid_input_message"`
	OutOfRangeMessage       string `json:"out_of_range_message" yaml:"out_of_range_message"`

	// CaseInsensitiveConfirm accepts "Y" and "N" at the confirm prompt.
	CaseInsensitiveConfirm bool     `json:"allow_uppercase_confirm" yaml:"allow_uppercase_confirm" env:"STORYVIEW_ALLOW_UPPERCASE_CONFIRM"`
	Extensions             []string `json:"extensions" yaml:"extensions" env:"STORYVIEW_EXTENSIONS" envSeparator:","`
	SortFiles              bool     `json:"sort_files" yaml:"sort_files" env:"STORYVIEW_SORT_FILES"`
	RenderMarkdown         bool     `json:"render_markdown" yaml:"render_markdown" env:"STORYVIEW_RENDER_MARKDOWN"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DirectoryPrompt:         "Enter the directory containing story files:",
		SelectionPrompt:         "Enter the number of the file to read: ",
		ConfirmPrompt:           "Continue? (y/n, q to quit): ",
		RestartMessage:          "Returning to file selection...",
		ExitMessage:             "Goodbye.",
		InvalidDirectoryMessage: "Invalid directory.",
		NoFilesMessage:          "No story files found.",
		InvalidInputMessage:     "Invalid input.",
		OutOfRangeMessage:       "Number out of range.",
		CaseInsensitiveConfirm:  true,
		Extensions:              []string{".json"},
		SortFiles:               true,
	}
}

// Load builds the configuration from defaults, the file at path (YAML or JSON
// by extension) and STORYVIEW_* environment variables, in that order.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	unmarshal := json.Unmarshal
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	}
	if err := unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	// Older config files name the extension list markdown_extensions.
	var alias struct {
		Extensions         []string `json:"extensions" yaml:"extensions"`
		MarkdownExtensions []string `json:"markdown_extensions" yaml:"markdown_extensions"`
	}
	if err := unmarshal(data, &alias); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if alias.Extensions == nil && alias.MarkdownExtensions != nil {
		c.Extensions = alias.MarkdownExtensions
	}
	return nil
}

// Validate normalizes extensions and rejects unusable settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ConfirmPrompt) == "" {
		return errors.New("config: confirm_prompt must not be empty")
	}

	exts := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		return errors.New("config: at least one file extension is required")
	}
	c.Extensions = exts
	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override config keys.
// BEAUTYBOT_JOURNAL__PATH maps to journal.path.
const EnvPrefix = "BEAUTYBOT_"

type Config struct {
	UsageLog UsageLogConfig `koanf:"usage_log"`
	Journal  JournalConfig  `koanf:"journal"`
	Content  ContentConfig  `koanf:"content"`
	Log      LogConfig      `koanf:"log"`
	UI       UIConfig       `koanf:"ui"`
	Notify   NotifyConfig   `koanf:"notify"`
}

type UsageLogConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

type JournalConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"` // SQLite file with reminder history
}

type ContentConfig struct {
	ImageDir string `koanf:"image_dir"` // Empty disables the product image check
}

type LogConfig struct {
	Path string `koanf:"path"` // Diagnostic log; empty means stderr
}

type UIConfig struct {
	ColoredOutput  bool `koanf:"colored_output"`
	RenderMarkdown bool `koanf:"render_markdown"`
	WordWrap       int  `koanf:"word_wrap"`
}

type NotifyConfig struct {
	Terminal bool           `koanf:"terminal"`
	Telegram TelegramConfig `koanf:"telegram"`
}

type TelegramConfig struct {
	BotToken string `koanf:"bot_token"`
	ChatID   string `koanf:"chat_id"`
}

// Enabled reports whether both Telegram credentials are set.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != ""
}

func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = expandPath(configPath)

		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// Conventional Telegram variables, same as the bot tooling uses
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		k.Set("notify.telegram.bot_token", token)
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		k.Set("notify.telegram.chat_id", chatID)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.UsageLog.Path = expandPath(cfg.UsageLog.Path)
	cfg.Journal.Path = expandPath(cfg.Journal.Path)
	cfg.Content.ImageDir = expandPath(cfg.Content.ImageDir)
	cfg.Log.Path = expandPath(cfg.Log.Path)

	return &cfg, nil
}

// envKey maps BEAUTYBOT_NOTIFY__TELEGRAM__CHAT_ID to notify.telegram.chat_id.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func (c *Config) Validate() error {
	if c.UsageLog.Enabled && c.UsageLog.Path == "" {
		return fmt.Errorf("usage_log.path is required when the usage log is enabled")
	}

	if c.Journal.Enabled && c.Journal.Path == "" {
		return fmt.Errorf("journal.path is required when the journal is enabled")
	}

	tg := c.Notify.Telegram
	if (tg.BotToken == "") != (tg.ChatID == "") {
		return fmt.Errorf("telegram notifications need both notify.telegram.bot_token and notify.telegram.chat_id")
	}

	if !c.Notify.Terminal && !tg.Enabled() {
		return fmt.Errorf("no notification sink enabled (set notify.terminal or configure telegram)")
	}

	if c.UI.WordWrap < 0 {
		return fmt.Errorf("ui.word_wrap must not be negative")
	}

	return nil
}

func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}

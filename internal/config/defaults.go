package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"usage_log": map[string]interface{}{
			"enabled": true,
			"path":    "application_dates.csv",
		},
		"journal": map[string]interface{}{
			"enabled": true,
			"path":    "~/.beautybot/reminders.db",
		},
		"content": map[string]interface{}{
			"image_dir": "", // e.g. ~/.beautybot/images
		},
		"log": map[string]interface{}{
			"path": "~/.beautybot/beautybot.log",
		},
		"ui": map[string]interface{}{
			"colored_output":  true,
			"render_markdown": true,
			"word_wrap":       80,
		},
		"notify": map[string]interface{}{
			"terminal": true,
			"telegram": map[string]interface{}{
				"bot_token": "",
				"chat_id":   "",
			},
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func GetDefaultConfigPath() string {
	return "~/.beautybot/config.yaml"
}

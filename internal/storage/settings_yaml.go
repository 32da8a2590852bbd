package storage

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"pomodoro/internal/ui/appearance"

	"gopkg.in/yaml.v3"
)

const appearanceFileName = "appearance.yaml"

type yamlAppearance struct {
	Background       string  `yaml:"background"`
	IdleColor        string  `yaml:"idle_color"`
	WorkColor        string  `yaml:"work_color"`
	ShortBreakColor  string  `yaml:"short_break_color"`
	LongBreakColor   string  `yaml:"long_break_color"`
	CountdownColor   string  `yaml:"countdown_color"`
	MarksColor       string  `yaml:"marks_color"`
	ButtonBackground string  `yaml:"button_background"`
	ButtonForeground string  `yaml:"button_foreground"`
	PadX             float32 `yaml:"pad_x"`
	PadY             float32 `yaml:"pad_y"`
	TitleSize        float32 `yaml:"title_size"`
	CountdownSize    float32 `yaml:"countdown_size"`
	ButtonSize       float32 `yaml:"button_size"`
	MarksSize        float32 `yaml:"marks_size"`
	Monospace        *bool   `yaml:"monospace"`
}

// LoadAppearance reads window appearance overrides from YAML.
// If the file does not exist, default settings are returned. Invalid colors
// keep their default and are reported in the returned error together with
// the otherwise applied settings.
func LoadAppearance(appName string) (appearance.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return appearance.DefaultSettings(), err
	}
	return LoadAppearanceFile(configPath)
}

// LoadAppearanceFile is LoadAppearance for an explicit path.
func LoadAppearanceFile(configPath string) (appearance.Settings, error) {
	settings := appearance.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read appearance file: %w", err)
	}

	var fileData yamlAppearance
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse appearance yaml: %w", err)
	}

	return settings, applyYamlAppearance(&settings, fileData)
}

// AppearancePath returns where LoadAppearance looks for its file.
func AppearancePath(appName string) (string, error) {
	return resolveConfigPath(appName)
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, appearanceFileName), nil
}

func applyYamlAppearance(settings *appearance.Settings, fileData yamlAppearance) error {
	var errs []error
	applyColor := func(target *color.NRGBA, value string) {
		if value == "" {
			return
		}
		parsed, err := appearance.ParseHex(value)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = parsed
	}

	applyColor(&settings.Background, fileData.Background)
	applyColor(&settings.IdleColor, fileData.IdleColor)
	applyColor(&settings.WorkColor, fileData.WorkColor)
	applyColor(&settings.ShortBreakColor, fileData.ShortBreakColor)
	applyColor(&settings.LongBreakColor, fileData.LongBreakColor)
	applyColor(&settings.CountdownColor, fileData.CountdownColor)
	applyColor(&settings.MarksColor, fileData.MarksColor)
	applyColor(&settings.ButtonBackground, fileData.ButtonBackground)
	applyColor(&settings.ButtonForeground, fileData.ButtonForeground)

	if fileData.PadX > 0 && fileData.PadX <= 400 {
		settings.PadX = fileData.PadX
	}
	if fileData.PadY > 0 && fileData.PadY <= 400 {
		settings.PadY = fileData.PadY
	}
	if fileData.TitleSize > 0 {
		settings.TitleSize = fileData.TitleSize
	}
	if fileData.CountdownSize > 0 {
		settings.CountdownSize = fileData.CountdownSize
	}
	if fileData.ButtonSize > 0 {
		settings.ButtonSize = fileData.ButtonSize
	}
	if fileData.MarksSize > 0 {
		settings.MarksSize = fileData.MarksSize
	}
	if fileData.Monospace != nil {
		settings.Monospace = *fileData.Monospace
	}

	return errors.Join(errs...)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "ORDER_CALC"

type Settings struct {
	CurrencySymbol string         `mapstructure:"currency_symbol" validate:"required"`
	LogLevel       string         `mapstructure:"log_level" validate:"oneof=trace debug info warn error disabled"`
	ProfilesPath   string         `mapstructure:"profiles_path"`
	Server         ServerSettings `mapstructure:"server"`
}

type ServerSettings struct {
	Host string `mapstructure:"host" validate:"required"`
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`
}

func (s ServerSettings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoadSettings reads settings from an optional config file and ORDER_CALC_*
// environment variables, on top of the defaults.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := validator.New().Struct(settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &settings, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("currency_symbol", "£")
	v.SetDefault("log_level", "warn")
	v.SetDefault("profiles_path", defaultProfilesPath())
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
}

func defaultProfilesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ordercalc_profiles"
	}
	return filepath.Join(home, ".ordercalc_profiles")
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/order-reports/pkg/models/domain"
	"github.com/spf13/viper"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const envPrefix = "REPORTS"

type Settings struct {
	Locale LocaleSettings `mapstructure:"locale"`
	Output OutputSettings `mapstructure:"output"`
	Server ServerSettings `mapstructure:"server"`
}

type LocaleSettings struct {
	Tag      string `mapstructure:"tag"`
	Currency string `mapstructure:"currency"`
	Symbol   string `mapstructure:"symbol"`
	Timezone string `mapstructure:"timezone"`
}

type OutputSettings struct {
	Dir string     `mapstructure:"dir"`
	S3  S3Settings `mapstructure:"s3"`
}

type S3Settings struct {
	Bucket  string `mapstructure:"bucket"`
	Prefix  string `mapstructure:"prefix"`
	Region  string `mapstructure:"region"`
	Profile string `mapstructure:"profile"`
}

type ServerSettings struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

var defaults = map[string]any{
	"locale.tag":        "id-ID",
	"locale.currency":   "IDR",
	"locale.symbol":     "Rp",
	"locale.timezone":   "Asia/Jakarta",
	"output.dir":        ".",
	"output.s3.bucket":  "",
	"output.s3.prefix":  "",
	"output.s3.region":  "",
	"output.s3.profile": "",
	"server.host":       "127.0.0.1",
	"server.port":       "8080",
}

// Load reads settings from an optional YAML file, overridden by REPORTS_*
// environment variables (e.g. REPORTS_LOCALE_TIMEZONE).
func Load(path string) (*Settings, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &s, nil
}

// Locale resolves the locale settings into the formatting locale.
func (s LocaleSettings) Locale() (domain.Locale, error) {
	tag, err := language.Parse(s.Tag)
	if err != nil {
		return domain.Locale{}, fmt.Errorf("invalid locale tag %q: %w", s.Tag, err)
	}

	unit, err := currency.ParseISO(s.Currency)
	if err != nil {
		return domain.Locale{}, fmt.Errorf("invalid currency %q: %w", s.Currency, err)
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return domain.Locale{}, fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}

	return domain.Locale{
		Tag:      tag,
		Currency: unit,
		Symbol:   s.Symbol,
		Location: loc,
	}, nil
}

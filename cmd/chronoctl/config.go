package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/jacoelho/chrono"
	"github.com/jacoelho/chrono/internal/lexical"
	"github.com/jacoelho/chrono/zone"
)

// Config selects the calendar system commands work in. Values come from a
// YAML file when one is given, then the environment, then flags.
type Config struct {
	Chronology string `yaml:"chronology" env:"CHRONO_CHRONOLOGY" env-default:"ISO" env-description:"calendar system: ISO, Gregorian, Julian, GJ, Coptic, Ethiopic or Buddhist"`
	Zone       string `yaml:"zone" env:"CHRONO_ZONE" env-default:"UTC" env-description:"IANA zone ID or fixed offset such as +05:30"`
	MinDays    int    `yaml:"min-days" env:"CHRONO_MIN_DAYS" env-default:"4" env-description:"minimum days in the first week of a year"`
	Cutover    string `yaml:"cutover,omitempty" env:"CHRONO_CUTOVER" env-description:"first Gregorian day of the GJ calendar, as an ISO date-time"`
	Mode       string `yaml:"mode" env:"CHRONO_MODE" env-default:"default" env-description:"field checking: default, strict or lenient"`
	Locale     string `yaml:"locale" env:"CHRONO_LOCALE" env-default:"en" env-description:"BCP 47 tag for field text"`
	LogLevel   string `yaml:"log-level" env:"CHRONO_LOG_LEVEL" env-default:"warn" env-description:"logrus level"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// configHelp describes the environment variables Config reads.
func configHelp() string {
	var cfg Config
	help, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return help
}

func (cfg Config) chronology() (chrono.Chronology, error) {
	kind, err := chrono.ParseKind(cfg.Chronology)
	if err != nil {
		return nil, err
	}
	z, err := zone.ForID(cfg.Zone)
	if err != nil {
		return nil, err
	}
	opts := []chrono.Option{chrono.InZone(z), chrono.MinDaysInFirstWeek(cfg.MinDays)}
	if cfg.Cutover != "" {
		cutover, err := parseInstant(chrono.ISOUTC(), cfg.Cutover, nil)
		if err != nil {
			return nil, fmt.Errorf("cutover: %w", err)
		}
		opts = append(opts, chrono.Cutover(cutover))
	}
	c, err := chrono.New(kind, opts...)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(cfg.Mode) {
	case "", "default":
		return c, nil
	case "strict":
		return chrono.Strict(c)
	case "lenient":
		return chrono.Lenient(c)
	}
	return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
}

func (cfg Config) locale() (language.Tag, error) {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("locale %q: %w", cfg.Locale, err)
	}
	return tag, nil
}

func (cfg Config) logger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log, nil
}

// period converts parsed period amounts to chronology period fields.
func period(amounts []lexical.Amount) []chrono.PeriodField {
	out := make([]chrono.PeriodField, len(amounts))
	for i, a := range amounts {
		out[i] = chrono.PeriodField{Type: a.Type, Value: a.Value}
	}
	return out
}

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/jacoelho/chrono"
	"github.com/jacoelho/chrono/field"
	"github.com/jacoelho/chrono/internal/lexical"
)

type app struct {
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time

	configPath string
	cfg        Config
	log        *logrus.Logger
	c          chrono.Chronology
	tag        language.Tag
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chronoctl",
		Short: "Inspect and compute dates in historical and non-Gregorian calendars",
		Long: `chronoctl reads instants and date-times in a calendar system and
reports their fields, applies field changes and periods, and converts
between calendars.

Instants are written as "now", "@<epoch millis>" or a date-time such as
1582-10-04T12:00 in the selected calendar, taken in the selected zone
unless it carries an offset.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})
	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.String("chronology", "", "calendar system (env CHRONO_CHRONOLOGY)")
	flags.String("zone", "", "time zone ID (env CHRONO_ZONE)")
	flags.Int("min-days", 0, "minimum days in the first week (env CHRONO_MIN_DAYS)")
	flags.String("cutover", "", "GJ cutover date-time (env CHRONO_CUTOVER)")
	flags.String("mode", "", "default, strict or lenient (env CHRONO_MODE)")
	flags.String("locale", "", "language for field text (env CHRONO_LOCALE)")
	flags.String("log-level", "", "log level (env CHRONO_LOG_LEVEL)")

	root.AddCommand(a.fieldsCmd())
	root.AddCommand(a.setCmd())
	root.AddCommand(a.addCmd())
	root.AddCommand(a.betweenCmd())
	root.AddCommand(a.convertCmd())
	root.AddCommand(a.configCmd())
	return root
}

// setup loads the configuration, applies flag overrides and resolves the
// chronology every command works in.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return usageError{err: err}
	}
	a.cfg = cfg

	if a.log, err = cfg.logger(a.stderr); err != nil {
		return usageError{err: err}
	}
	if a.tag, err = cfg.locale(); err != nil {
		return usageError{err: err}
	}
	if a.c, err = cfg.chronology(); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"chronology": a.c.String(),
		"locale":     a.tag.String(),
	}).Debug("chronology resolved")
	return nil
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *Config) error {
	flags := cmd.Flags()
	for name, dst := range map[string]*string{
		"chronology": &cfg.Chronology,
		"zone":       &cfg.Zone,
		"cutover":    &cfg.Cutover,
		"mode":       &cfg.Mode,
		"locale":     &cfg.Locale,
		"log-level":  &cfg.LogLevel,
	} {
		if !flags.Changed(name) {
			continue
		}
		value, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*dst = value
	}
	if flags.Changed("min-days") {
		days, err := flags.GetInt("min-days")
		if err != nil {
			return err
		}
		cfg.MinDays = days
	}
	return nil
}

func (a *app) fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields <instant>",
		Short: "Print every supported field of an instant",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			instant, err := parseInstant(a.c, args[0], a.now)
			if err != nil {
				return err
			}
			view, err := render(a.c, instant)
			if err != nil {
				return err
			}
			fields, err := describeFields(a.c, instant, a.tag)
			if err != nil {
				return err
			}
			return a.emit(struct {
				Instant instantView `yaml:"instant"`
				Fields  []fieldView `yaml:"fields"`
			}{view, fields})
		},
	}
}

func (a *app) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <instant> <field>=<value>...",
		Short: "Set fields of an instant in order",
		Long: `Set fields of an instant in order. Values are numbers or field text
in the configured locale, as in monthOfYear=March or era=BC.`,
		Args: minArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			instant, err := parseInstant(a.c, args[0], a.now)
			if err != nil {
				return err
			}
			for _, assignment := range args[1:] {
				if instant, err = a.assign(instant, assignment); err != nil {
					return err
				}
			}
			view, err := render(a.c, instant)
			if err != nil {
				return err
			}
			return a.emit(view)
		},
	}
}

func (a *app) assign(instant int64, assignment string) (int64, error) {
	name, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return 0, usageError{err: fmt.Errorf("assignment %q is not <field>=<value>", assignment)}
	}
	t, ok := field.ParseDateTimeFieldType(name)
	if !ok {
		return 0, usageError{err: fmt.Errorf("unknown field %q", name)}
	}
	f := a.c.Field(t)
	a.log.WithFields(logrus.Fields{"field": name, "value": value}).Debug("setting field")
	if n, err := strconv.Atoi(value); err == nil {
		return f.Set(instant, n)
	}
	return f.SetText(instant, value, a.tag)
}

func (a *app) addCmd() *cobra.Command {
	var times int
	cmd := &cobra.Command{
		Use:   "add <instant> <period>",
		Short: "Add an ISO-8601 period such as P1M2DT3H to an instant",
		Args:  exactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			instant, err := parseInstant(a.c, args[0], a.now)
			if err != nil {
				return err
			}
			amounts, err := lexical.ParsePeriod(args[1])
			if err != nil {
				return err
			}
			result, err := chrono.AddPeriod(a.c, instant, period(amounts), times)
			if err != nil {
				return err
			}
			view, err := render(a.c, result)
			if err != nil {
				return err
			}
			return a.emit(view)
		},
	}
	cmd.Flags().IntVar(&times, "times", 1, "number of times to add the period; negative subtracts")
	return cmd
}

func (a *app) betweenCmd() *cobra.Command {
	var units []string
	cmd := &cobra.Command{
		Use:   "between <start> <end>",
		Short: "Print the period from start to end in the given units",
		Args:  exactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			start, err := parseInstant(a.c, args[0], a.now)
			if err != nil {
				return err
			}
			end, err := parseInstant(a.c, args[1], a.now)
			if err != nil {
				return err
			}
			types := make([]field.DurationFieldType, len(units))
			for i, u := range units {
				t, ok := field.ParseDurationFieldType(strings.TrimSpace(u))
				if !ok {
					return usageError{err: fmt.Errorf("unknown unit %q", u)}
				}
				types[i] = t
			}
			fields, err := chrono.PeriodBetween(a.c, types, start, end)
			if err != nil {
				return err
			}
			amounts := make([]lexical.Amount, 0, len(fields))
			for _, pf := range fields {
				if pf.Value != 0 {
					amounts = append(amounts, lexical.Amount{Type: pf.Type, Value: pf.Value})
				}
			}
			text, err := lexical.FormatPeriod(amounts)
			if err != nil {
				return err
			}
			return a.emit(struct {
				Period string `yaml:"period"`
			}{text})
		},
	}
	cmd.Flags().StringSliceVar(&units, "units", []string{"years", "months", "days", "hours", "minutes", "seconds", "millis"}, "units to split the period into, largest first")
	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	var targets []string
	cmd := &cobra.Command{
		Use:   "convert <instant>",
		Short: "Show an instant in other calendar systems",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			instant, err := parseInstant(a.c, args[0], a.now)
			if err != nil {
				return err
			}
			kinds := chrono.Kinds()
			if len(targets) > 0 {
				kinds = kinds[:0:0]
				for _, name := range targets {
					k, err := chrono.ParseKind(strings.TrimSpace(name))
					if err != nil {
						return usageError{err: err}
					}
					kinds = append(kinds, k)
				}
			}
			views := make([]instantView, 0, len(kinds))
			for _, k := range kinds {
				c, err := chrono.New(k, chrono.InZone(a.c.Zone()), chrono.MinDaysInFirstWeek(a.cfg.MinDays))
				if err != nil {
					return err
				}
				view, err := render(c, instant)
				if err != nil {
					a.log.WithError(err).WithField("chronology", c.String()).Warn("instant not representable")
					continue
				}
				views = append(views, view)
			}
			return a.emit(views)
		},
	}
	cmd.Flags().StringSliceVar(&targets, "to", nil, "calendar systems to convert to (default all)")
	return cmd
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration and the environment it reads",
		Args:  exactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.emit(a.cfg); err != nil {
				return err
			}
			return writeln(a.stderr, configHelp())
		},
	}
}

func (a *app) emit(v any) error {
	enc := yaml.NewEncoder(a.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return enc.Close()
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err: err}
		}
		return nil
	}
}

func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return usageError{err: err}
		}
		return nil
	}
}

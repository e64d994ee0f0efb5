package config

import (
	"os"
	"strings"

	"codeberg.org/mutker/dwm-statusbar/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultInterval      = 1
	DefaultThreshold     = 8
	DefaultTimeout       = 40
	DefaultBatteryNow    = "/sys/class/power_supply/BAT0/energy_now"
	DefaultBatteryFull   = "/sys/class/power_supply/BAT0/energy_full"
	DefaultBatteryStatus = "/sys/class/power_supply/BAT0/status"
	DefaultLinkPath      = "/sys/class/net/wlan0/operstate"
	DefaultMixerDevice   = "default"
	DefaultMixerControl  = "Master"
	DefaultLogLevel      = "warning"
	DefaultJournalPath   = "/var/lib/dwm-statusbar/journal.db"
	DefaultConfigPath    = "/etc/dwm-statusbar.toml"
	DefaultEnvPrefix     = "DWM_STATUSBAR"
)

// DefaultSuspendCommand is run detached once the battery has stayed low for Timeout ticks
var DefaultSuspendCommand = []string{"/bin/sh", "/usr/local/bin/suspend.sh"}

type Config struct {
	Interval       int      `mapstructure:"interval"`
	Threshold      int      `mapstructure:"threshold"`
	Timeout        int      `mapstructure:"timeout"`
	SuspendCommand []string `mapstructure:"suspend_command"`
	BatteryNow     string   `mapstructure:"battery_now"`
	BatteryFull    string   `mapstructure:"battery_full"`
	BatteryStatus  string   `mapstructure:"battery_status"`
	LinkPath       string   `mapstructure:"link_path"`
	MixerDevice    string   `mapstructure:"mixer_device"`
	MixerControl   string   `mapstructure:"mixer_control"`
	Console        bool     `mapstructure:"console"`
	LogLevel       string   `mapstructure:"log_level"`
	Journal        bool     `mapstructure:"journal"`
	JournalPath    string   `mapstructure:"journal_path"`

	// ShowVersion is set by -v and never read from file or env
	ShowVersion bool `mapstructure:"-"`
}

// Load builds the configuration from compiled defaults, the optional config
// file, environment variables and finally the command line.
func Load(args []string, opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := &options{
		configPath: os.Getenv(DefaultEnvPrefix + "_CONFIG"),
		envPrefix:  DefaultEnvPrefix,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidArgument, err)
		}
	}

	flags := pflag.NewFlagSet("dwm-statusbar", pflag.ContinueOnError)
	showVersion := flags.BoolP("version", "v", false, "Print version and usage, then exit")
	if err := flags.Parse(args); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	// -v must work whatever state the file and environment are in
	if *showVersion {
		return &Config{ShowVersion: true}, nil
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, o.configPath); err != nil {
		return nil, err
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrReadConfig, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("threshold", DefaultThreshold)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("suspend_command", DefaultSuspendCommand)
	v.SetDefault("battery_now", DefaultBatteryNow)
	v.SetDefault("battery_full", DefaultBatteryFull)
	v.SetDefault("battery_status", DefaultBatteryStatus)
	v.SetDefault("link_path", DefaultLinkPath)
	v.SetDefault("mixer_device", DefaultMixerDevice)
	v.SetDefault("mixer_control", DefaultMixerControl)
	v.SetDefault("console", false)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("journal", false)
	v.SetDefault("journal_path", DefaultJournalPath)
}

func readConfigFile(v *viper.Viper, path string) error {
	errFactory := errors.New()

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if _, err := os.Stat(DefaultConfigPath); err != nil {
			return nil
		}
		v.SetConfigFile(DefaultConfigPath)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return errFactory.Wrap(errors.ErrReadConfig, err)
	}

	return nil
}

// Validate checks the loaded values against their allowed ranges
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}
	if c.Threshold < 0 || c.Threshold > 100 {
		return errFactory.WithData(errors.ErrInvalidThreshold, c.Threshold)
	}
	if c.Timeout < 0 {
		return errFactory.WithData(errors.ErrInvalidTimeout, c.Timeout)
	}
	if len(c.SuspendCommand) == 0 || c.SuspendCommand[0] == "" {
		return errFactory.New(errors.ErrInvalidCommand)
	}
	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}
	if c.Journal && c.JournalPath == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "journal enabled without journal_path")
	}

	return nil
}

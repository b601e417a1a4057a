package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/eolymp/go-mfm"
)

var (
	InputFormats  = []string{"json", "yaml"}
	OutputFormats = []string{"html", "text", "ansi", "tree"}
	LogLevels     = []string{"debug", "info", "warn", "error"}
)

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "render.plain", Default: false, Comment: "Render text only, line breaks collapse into spaces"},
		{Key: "render.nowrap", Default: false, Comment: "Render quotes inline instead of as blocks"},
		{Key: "render.is_note", Default: true, Comment: "Source text is a note body"},
		{Key: "input.format", Default: "json", Comment: "Serialized tree format: json or yaml"},
		{Key: "output.format", Default: "html", Comment: "Output format: html, text, ansi or tree"},
		{Key: "output.width", Default: 80, Comment: "Terminal width used by ansi output"},
		{Key: "viewer.username", Default: "", Comment: "Viewer username, mentions of the viewer are highlighted"},
		{Key: "viewer.host", Default: "", Comment: "Viewer host, empty for local users"},
		{Key: "log.level", Default: "warn", Comment: "Diagnostic level: debug, info, warn or error"},
		{Key: "emojis", Default: map[string]any{}, Comment: "Custom emoji: name = \"image url\""},
	}
}

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env. The result is not
// validated, callers apply their own overrides first and then call Validate.
func Load(ctx context.Context, v *viper.Viper) error {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "mfm-render"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mfm-render"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var missing viper.ConfigFileNotFoundError
		if !errors.As(err, &missing) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// MFM_OUTPUT_FORMAT=ansi overrides output.format
	v.SetEnvPrefix("mfm")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

// Validate reports every invalid option at once.
func Validate(v *viper.Viper) error {
	var errs []error

	if f := v.GetString("input.format"); !contains(InputFormats, f) {
		errs = append(errs, fmt.Errorf("input.format %q must be one of %s", f, strings.Join(InputFormats, ", ")))
	}

	if f := v.GetString("output.format"); !contains(OutputFormats, f) {
		errs = append(errs, fmt.Errorf("output.format %q must be one of %s", f, strings.Join(OutputFormats, ", ")))
	}

	if l := v.GetString("log.level"); !contains(LogLevels, l) {
		errs = append(errs, fmt.Errorf("log.level %q must be one of %s", l, strings.Join(LogLevels, ", ")))
	}

	if v.GetInt("output.width") <= 0 {
		errs = append(errs, errors.New("output.width must be greater than 0"))
	}

	if v.GetString("viewer.host") != "" && v.GetString("viewer.username") == "" {
		errs = append(errs, errors.New("viewer.host requires viewer.username"))
	}

	return errors.Join(errs...)
}

// Context builds render context from resolved configuration.
func Context(v *viper.Viper) mfm.Context {
	ctx := mfm.Context{
		Plain:  v.GetBool("render.plain"),
		NoWrap: v.GetBool("render.nowrap"),
		IsNote: v.GetBool("render.is_note"),
	}

	if name := v.GetString("viewer.username"); name != "" {
		ctx.Viewer = &mfm.User{Username: name, Host: v.GetString("viewer.host")}
	}

	emojis := v.GetStringMapString("emojis")
	names := make([]string, 0, len(emojis))
	for name := range emojis {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		ctx.CustomEmojis = append(ctx.CustomEmojis, mfm.CustomEmoji{Name: name, URL: emojis[name]})
	}

	return ctx
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "mfm-render", "config.toml")
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}

	return false
}

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eolymp/go-mfm"
	"github.com/eolymp/go-mfm/internal/config"
)

type ctxKey string

const appKey ctxKey = "app"

// app is what subcommands share once configuration is resolved.
type app struct {
	v        *viper.Viper
	log      *zap.Logger
	renderer *mfm.Renderer
}

// flagKeys maps command line flags onto configuration keys they override.
var flagKeys = map[string]string{
	"plain":     "render.plain",
	"nowrap":    "render.nowrap",
	"input":     "input.format",
	"output":    "output.format",
	"width":     "output.width",
	"log-level": "log.level",
}

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "mfm-render",
		Short:         "Render MFM syntax trees into HTML, text or terminal output",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}

			applyFlagOverrides(cmd, v)
			if err := config.Validate(v); err != nil {
				return err
			}

			log, err := newLogger(cmd.ErrOrStderr(), v.GetString("log.level"))
			if err != nil {
				return err
			}

			a := &app{v: v, log: log, renderer: mfm.NewRenderer(mfm.WithLogger(log))}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, appKey, a))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (toml|yaml|json)")
	cmd.PersistentFlags().Bool("plain", false, "render text only")
	cmd.PersistentFlags().Bool("nowrap", false, "render quotes inline")
	cmd.PersistentFlags().String("input", "", "input tree format: json or yaml")
	cmd.PersistentFlags().String("output", "", "output format: html, text, ansi or tree")
	cmd.PersistentFlags().Int("width", 0, "terminal width for ansi output")
	cmd.PersistentFlags().String("log-level", "", "diagnostic level: debug, info, warn or error")

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newConfigCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getApp(cmd *cobra.Command) (*app, error) {
	a, ok := cmd.Context().Value(appKey).(*app)
	if !ok {
		return nil, fmt.Errorf("internal error: app not initialized")
	}

	return a, nil
}

func applyFlagOverrides(cmd *cobra.Command, v *viper.Viper) {
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}

		switch flag.Value.Type() {
		case "bool":
			if val, err := cmd.Flags().GetBool(name); err == nil {
				v.Set(key, val)
			}
		case "int":
			if val, err := cmd.Flags().GetInt(name); err == nil {
				v.Set(key, val)
			}
		default:
			v.Set(key, flag.Value.String())
		}
	}
}

func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}

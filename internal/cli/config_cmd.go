package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eolymp/go-mfm/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}
	cmd.AddCommand(newConfigGenerateCmd())
	return cmd
}

func newConfigGenerateCmd() *cobra.Command {
	var out string
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a default config.toml, prints to stdout unless --output-file is set",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.RenderDefaultTOML())
				return err
			}

			if _, err := os.Stat(out); err == nil && !overwrite {
				return fmt.Errorf("config already exists at %s; use --overwrite to replace it", out)
			}

			if err := os.MkdirAll(filepath.Dir(out), 0o700); err != nil {
				return err
			}

			if err := os.WriteFile(out, []byte(config.RenderDefaultTOML()), 0o600); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output-file", "f", "", "output path, for example "+config.DefaultConfigPath())
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite existing config")
	return cmd
}

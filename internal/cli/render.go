package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/eolymp/go-mfm"
	"github.com/eolymp/go-mfm/internal/config"
	"github.com/eolymp/go-mfm/internal/term"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Render a serialized syntax tree, reads stdin when file is omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			nodes, err := readTree(cmd, a, args)
			if err != nil {
				return err
			}

			fragments := a.renderer.Render(nodes, config.Context(a.v))
			return write(cmd.OutOrStdout(), a, fragments)
		},
	}
}

func readTree(cmd *cobra.Command, a *app, args []string) ([]mfm.Node, error) {
	r := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	switch a.v.GetString("input.format") {
	case "yaml":
		return mfm.DecodeYAML(r)
	default:
		return mfm.DecodeJSON(r)
	}
}

func write(w io.Writer, a *app, fragments []mfm.Fragment) error {
	if len(fragments) == 0 {
		return nil
	}

	switch a.v.GetString("output.format") {
	case "text":
		_, err := fmt.Fprintln(w, mfm.String(fragments))
		return err
	case "ansi":
		return term.New(w, a.v.GetInt("output.width")).Write(w, fragments)
	case "tree":
		_, err := pp.Fprintln(w, fragments)
		return err
	default:
		if err := mfm.WriteHTML(w, []mfm.Fragment{&mfm.Element{Tag: "span", Children: fragments}}); err != nil {
			return err
		}

		_, err := fmt.Fprintln(w)
		return err
	}
}

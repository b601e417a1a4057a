package cli

import (
	"bytes"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/eolymp/go-mfm"
	"github.com/eolymp/go-mfm/internal/config"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Count nodes per kind and measure rendered HTML",
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

			total := 0
			counts := map[mfm.Kind]int{}
			mfm.Walk(nodes, func(n mfm.Node) {
				total++
				counts[n.Kind()]++
			})

			kinds := make([]mfm.Kind, 0, len(counts))
			for k := range counts {
				kinds = append(kinds, k)
			}
			sort.Slice(kinds, func(i, j int) bool {
				if counts[kinds[i]] != counts[kinds[j]] {
					return counts[kinds[i]] > counts[kinds[j]]
				}
				return kinds[i] < kinds[j]
			})

			html := bytes.NewBuffer(nil)
			if err := mfm.WriteHTML(html, a.renderer.Render(nodes, config.Context(a.v))); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "nodes\t%s\n", humanize.Comma(int64(total)))
			for _, k := range kinds {
				fmt.Fprintf(tw, "  %s\t%s\n", k, humanize.Comma(int64(counts[k])))
			}
			fmt.Fprintf(tw, "html\t%s\n", humanize.Bytes(uint64(html.Len())))
			return tw.Flush()
		},
	}
}

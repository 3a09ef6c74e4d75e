package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"formkeep/internal/analysis"
	"formkeep/internal/log"
	"formkeep/internal/screen"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List forms and saved instances",
		Long:  `List the files under the forms root and the folders under the instances root, naturally sorted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, v, err := a.openScreen(cmd)
			if err != nil {
				return err
			}
			s.Resume()
			return printList(cmd.OutOrStdout(), s, v, long, a.text().NoItems())
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "show kind, size, age, title or instance ID and full path")
	return cmd
}

// openScreen builds a screen over the configured roots with a terminal view.
func (a *app) openScreen(cmd *cobra.Command) (*screen.Screen, *termView, error) {
	store, err := a.store()
	if err != nil {
		return nil, nil, err
	}
	v := newTermView(cmd.OutOrStdout(), cmd.InOrStdin())
	return screen.New(a.screenConfig(), store, v, v, a.text()), v, nil
}

func printList(out io.Writer, s *screen.Screen, v *termView, long bool, emptyText string) error {
	fmt.Fprintln(out, headerStyle.Render(v.header))
	if v.empty {
		fmt.Fprintln(out, emptyText)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	var engine *analysis.Engine
	if long {
		engine = analysis.New()
	}
	for i, e := range s.Entries() {
		if !long {
			fmt.Fprintf(tw, "%d\t%s\n", i, e.DisplayName)
			continue
		}
		r, err := engine.Inspect(e.FullPath)
		if err != nil {
			log.LogError(err, "inspect failed")
			fmt.Fprintf(tw, "%d\t%s\t-\t-\t-\t-\t%s\n", i, e.DisplayName, e.FullPath)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", i, e.DisplayName, r.Kind,
			size(r), humanize.Time(r.ModTime), detail(r), e.FullPath)
	}
	return tw.Flush()
}

// size is the byte size of a form or the attachment count of an instance.
func size(r *analysis.Report) string {
	if r.Kind == analysis.KindInstance {
		return humanize.Comma(int64(r.Attachments)) + " att"
	}
	return humanize.Bytes(uint64(r.Size))
}

func detail(r *analysis.Report) string {
	d := r.Detail()
	if d == "" {
		d = "-"
	}
	if !r.Captured.IsZero() {
		d += " (" + humanize.Time(r.Captured) + ")"
	}
	return d
}

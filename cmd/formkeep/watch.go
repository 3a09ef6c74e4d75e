package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"formkeep/internal/log"
	"formkeep/internal/watch"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Report changes under both roots",
		Long:  `Watch the forms and instances roots and print the updated count whenever an entry appears or disappears.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watch(ctx, cmd)
		},
	}
}

// watch prints the tab header after every change until ctx ends.
func (a *app) watch(ctx context.Context, cmd *cobra.Command) error {
	s, v, err := a.openScreen(cmd)
	if err != nil {
		return err
	}
	store, err := a.store()
	if err != nil {
		return err
	}

	forms, instances := a.cfg.Roots()
	w, err := watch.WatchRoots(forms, instances, watch.WithIgnore(store.Ignored))
	if err != nil {
		return err
	}
	defer w.Stop()

	out := cmd.OutOrStdout()
	s.Resume()
	fmt.Fprintln(out, headerStyle.Render(v.header))
	log.Infof("watching %s and %s", forms, instances)

	for {
		select {
		case <-ctx.Done():
			return nil
		case c, ok := <-w.Changes():
			if !ok {
				return nil
			}
			s.Reload()
			for _, p := range c.Paths {
				fmt.Fprintf(out, "%s changed %s\n", p, humanize.Time(c.Timestamp))
			}
			fmt.Fprintln(out, headerStyle.Render(v.header))
			log.Debugf("list now has %d entries", s.Len())
		}
	}
}

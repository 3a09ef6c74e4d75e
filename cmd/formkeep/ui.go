package main

import (
	"os"
	"path/filepath"
	"time"

	"formkeep/internal/gui"
	"formkeep/internal/log"
	"formkeep/internal/tui"
	"formkeep/internal/tui/styles"
	"formkeep/internal/watch"

	"github.com/spf13/cobra"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal user interface",
		Long:  `Browse and delete forms and saved instances in an interactive terminal list.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}

			// log lines would tear the alt screen
			log.Configure(log.WithFile(filepath.Join(os.TempDir(), "formkeep.log")))

			opts := tui.Options{
				Roots:     a.screenConfig(),
				Store:     store,
				Text:      a.text(),
				Styles:    styles.FromConfig(a.cfg),
				NotifyFor: time.Duration(a.cfg.Settings.NotifySeconds) * time.Second,
			}
			if a.cfg.Settings.Watch {
				forms, instances := a.cfg.Roots()
				w, err := watch.WatchRoots(forms, instances, watch.WithIgnore(store.Ignored))
				if err != nil {
					log.LogError(err, "live refresh disabled")
				} else {
					defer w.Stop()
					opts.Changes = w.Changes()
				}
			}
			return tui.Run(tui.New(opts))
		},
	}
}

func newGUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical user interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gui.Available() {
				log.Warn("this build has no GUI")
			}
			store, err := a.store()
			if err != nil {
				return err
			}
			gui.NewApp(a.cfg, store).Run()
			return nil
		},
	}
}

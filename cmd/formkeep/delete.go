package main

import (
	"strconv"

	"formkeep/internal/errors"
	"formkeep/internal/screen"

	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete [index|name]",
		Short: "Delete one form or saved instance",
		Long: `Delete the entry at the given list index, or with the given display name
or full path. The entry is removed recursively after a Yes/No confirmation.
Without a target nothing is selected, so nothing is deleted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, v, err := a.openScreen(cmd)
			if err != nil {
				return err
			}
			s.Resume()

			if len(args) == 0 {
				s.MenuSelected(screen.MenuDelete)
				return errors.ErrNoSelection
			}
			idx, err := resolveEntry(s, args[0])
			if err != nil {
				return err
			}
			s.Select(idx)

			before := s.Len()
			s.MenuSelected(screen.MenuDelete)
			v.answer(yes)

			if v.confirmed && s.Len() == before {
				return errors.NewFileError("delete failed", s.Entries()[idx].FullPath, errors.DeleteFailed, nil)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

// resolveEntry maps an index, display name or full path to a row.
func resolveEntry(s *screen.Screen, arg string) (int, error) {
	if i, err := strconv.Atoi(arg); err == nil {
		if i < 0 || i >= s.Len() {
			return screen.NoSelection, errors.NewInputError("index out of range", arg, errors.IndexOutOfRange)
		}
		return i, nil
	}
	for i, e := range s.Entries() {
		if e.DisplayName == arg || e.FullPath == arg {
			return i, nil
		}
	}
	return screen.NoSelection, errors.NewInputError("no such entry", arg, errors.FileNotFound)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/carbon/internal/config"
	"github.com/vango-dev/carbon/internal/errors"
	"github.com/vango-dev/carbon/internal/fixture"
	"github.com/vango-dev/carbon/pkg/diff"
)

func diffCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "diff <old.yaml> <new.yaml>",
		Short: "Print the changeset between two snapshots",
		Long: `Diff two snapshot files and print the edit operations a view would
receive in one batch update. Deletes and updates use old coordinates,
inserts use new coordinates, moves go from old to new.

The changeset is also replayed against an in-memory view to check that it
reproduces the new snapshot.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Output.Format
			}
			if !config.ValidFormat(format) {
				return errors.New("E401").WithDetail(fmt.Sprintf("Got %q; supported formats are text and yaml.", format))
			}

			old, err := fixture.Load(args[0])
			if err != nil {
				return err
			}
			next, err := fixture.Load(args[1])
			if err != nil {
				return err
			}
			changes := diff.Diff(old, next)

			mode, err := replay(cfg, nil, old, next)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "yaml" {
				data, err := fixture.MarshalChangeset(changes)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			if changes.IsEmpty() {
				success(cmd, "No changes")
				return nil
			}
			fmt.Fprint(out, changes.String())
			fmt.Fprintf(out, "\n%d operations (%d section, %d item), applied as %s\n",
				changes.Count(), changes.SectionCount(), changes.ItemCount(), mode)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (text, yaml); default from carbon.yaml")

	return cmd
}

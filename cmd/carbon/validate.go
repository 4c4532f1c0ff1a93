package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/carbon/internal/errors"
	"github.com/vango-dev/carbon/internal/fixture"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <tree.yaml>",
		Short: "Check a snapshot for duplicate identifiers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}
			tree, err := fixture.Load(args[0])
			if err != nil {
				return err
			}
			dups := tree.Duplicates()
			if len(dups) == 0 {
				success(cmd, "%d sections, %d items, identifiers unique", tree.Len(), tree.ItemCount())
				return nil
			}
			for _, d := range dups {
				warn(cmd, "%s", d)
			}
			return errors.New("E104").WithDetail(fmt.Sprintf("%s has %d duplicate identifiers.", args[0], len(dups)))
		},
	}
}

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phrazzld/pokedex-api/internal/identification"
	"github.com/phrazzld/pokedex-api/internal/session"
)

func newScanCmd(getClient func() *client) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <text...>",
		Short: "Identify a single Pokemon",
		Example: `  pokedex scan pikachu
  pokedex scan "the yellow electric mouse"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := getClient()
			out := cmd.OutOrStdout()

			result, err := c.service.Identify(cmd.Context(), strings.Join(args, " "))
			if errors.Is(err, session.ErrEmptyInput) {
				return fmt.Errorf("nothing to scan: %w", err)
			}
			if err != nil {
				return err
			}

			if result.Identified {
				fmt.Fprintln(out, c.renderer.Panel(&result, c.resourcesFor(result)))
			}
			fmt.Fprintln(out, result.Message)

			if identification.IsFailure(result) {
				return errors.New("scan failed")
			}
			return nil
		},
	}
}

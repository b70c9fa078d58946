package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newLocationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations <query...>",
		Short: "List locations matching a keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Locations(cmd.Context(), strings.Join(args, " "))
		},
	}
}

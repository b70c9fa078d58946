package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/compass/internal/app"
	"go.trai.ch/compass/internal/core/domain"
)

var modeShort = map[domain.Mode]string{
	domain.ModeHotels:  "Search hotel offers around a destination",
	domain.ModeFlights: "Search flights between the airports near two places",
	domain.ModeTrip:    "Search hotels and flights for a trip in one request",
}

func (c *CLI) newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search hotels, flights or a whole trip",
	}
	for _, mode := range domain.Modes {
		cmd.AddCommand(c.newModeCmd(mode))
	}
	return cmd
}

func (c *CLI) newModeCmd(mode domain.Mode) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(mode),
		Short: modeShort[mode],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			req := domain.SearchRequest{Mode: mode}
			req.To, _ = flags.GetString("to")
			req.From, _ = flags.GetString("from")
			req.CheckIn, _ = flags.GetString("check-in")
			req.CheckOut, _ = flags.GetString("check-out")
			req.Adults, _ = flags.GetInt("adults")
			req.Rooms, _ = flags.GetInt("rooms")
			req.RadiusKm, _ = flags.GetInt("radius")
			req.Limit, _ = flags.GetInt("limit")

			pageSize, _ := flags.GetInt("page-size")
			output, _ := flags.GetString("output")
			ci, _ := flags.GetBool("ci")

			// If --ci is set, override output to "linear"
			if ci {
				output = domain.OutputLinear
			}

			return c.app.Search(cmd.Context(), req, app.SearchOptions{
				Output:   output,
				PageSize: pageSize,
			})
		},
	}

	cmd.Flags().StringP("to", "t", "", "Destination: a place name or \"lat,lng\"")
	cmd.Flags().StringP("from", "f", "", "Origin: a place name or \"lat,lng\"")
	cmd.Flags().String("check-in", "", "Check-in or departure date, YYYY-MM-DD (default tomorrow)")
	cmd.Flags().String("check-out", "", "Check-out date, YYYY-MM-DD")
	cmd.Flags().Int("adults", 1, "Number of adults")
	cmd.Flags().Int("rooms", 1, "Number of rooms")
	cmd.Flags().Int("radius", 0, "Search radius in km (default from configuration)")
	cmd.Flags().Int("limit", 0, "Maximum number of hotel offers to request")
	cmd.Flags().Int("page-size", 0, "Hotels per page (default from configuration)")
	cmd.Flags().StringP("output", "o", "", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output (shorthand for --output=linear)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/app"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/discovery"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
)

var (
	discoverLocations []string
	discoverRadius    float64
	discoverUser      string
	discoverExtended  bool
	discoverJSON      bool
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Search for venues around one or more locations",
	Long: `Search the places provider for bars and music venues around each location,
skip venues that are already stored and insert the rest.

Examples:
  bookingctl discover --location "Austin, TX"
  bookingctl discover --location "Austin, TX" --location "Tulsa, OK" --radius 40
  bookingctl discover --location "Fort Worth, TX" --extended --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(discoverLocations) == 0 {
			return fmt.Errorf("at least one --location is required")
		}
		locations, err := parseLocations(discoverLocations)
		if err != nil {
			return err
		}
		if discoverRadius < 0 {
			return fmt.Errorf("--radius must not be negative")
		}

		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if discoverExtended {
			cfg.Discovery.Queries = discovery.ExtendedQueries
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		application, err := app.New(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer application.Close()

		result, runErr := application.Discovery.Discover(ctx, discovery.DiscoverRequest{
			Locations:   locations,
			RadiusMiles: discoverRadius,
			UserID:      discoverUser,
		})
		if result != nil {
			if discoverJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				printSummary(os.Stdout, result)
			}
		}
		return runErr
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().StringArrayVarP(&discoverLocations, "location", "l", nil, `Location as "City, ST" (repeatable)`)
	discoverCmd.Flags().Float64VarP(&discoverRadius, "radius", "r", models.DefaultRadiusMiles, "Search radius in miles")
	discoverCmd.Flags().StringVar(&discoverUser, "user", "", "User id that owns inserted venues")
	discoverCmd.Flags().BoolVar(&discoverExtended, "extended", false, "Use the extended country and roots query list")
	discoverCmd.Flags().BoolVar(&discoverJSON, "json", false, "Print the run result as JSON")
}

func parseLocations(raw []string) ([]models.Location, error) {
	locations := make([]models.Location, 0, len(raw))
	for _, r := range raw {
		loc, err := models.ParseLocation(r)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

func printSummary(w io.Writer, res *models.RunResult) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(w, "%s\n", cyan("Discovery complete"))
	fmt.Fprintf(w, "  discovered: %d\n", res.Discovered)
	fmt.Fprintf(w, "  new:        %s\n", green(res.New))
	fmt.Fprintf(w, "  duplicates: %s\n", yellow(res.Duplicates))

	skipped := res.Skipped
	if total := skipped.Locations + skipped.Searches + skipped.Details + skipped.Inserts; total > 0 {
		fmt.Fprintf(w, "  skipped:    %s\n", yellow(fmt.Sprintf(
			"%d (locations %d, searches %d, details %d, inserts %d)",
			total, skipped.Locations, skipped.Searches, skipped.Details, skipped.Inserts,
		)))
	}

	if len(res.Venues) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, v := range res.Venues {
		fmt.Fprintf(w, "  %s %s, %s %s\n", green("+"), v.Name, v.City, gray(fmt.Sprintf("[%s, score %d]", v.VenueType, v.Score)))
	}
}

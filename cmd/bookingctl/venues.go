package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/app"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/models"
)

var (
	venuesCity   string
	venuesState  string
	venuesStatus string
	venuesUser   string
)

var venuesCmd = &cobra.Command{
	Use:   "venues",
	Short: "List stored venues, best score first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		application, err := app.New(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer application.Close()

		venues, err := application.Venues.ListVenues(ctx, models.VenueFilter{
			UserID: venuesUser,
			City:   venuesCity,
			State:  venuesState,
			Status: models.ContactStatus(venuesStatus),
		})
		if err != nil {
			return err
		}

		printVenues(os.Stdout, venues)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(venuesCmd)
	venuesCmd.Flags().StringVar(&venuesCity, "city", "", "Only venues in this city")
	venuesCmd.Flags().StringVar(&venuesState, "state", "", "Only venues in this state")
	venuesCmd.Flags().StringVar(&venuesStatus, "status", "", "Only venues with this contact status")
	venuesCmd.Flags().StringVar(&venuesUser, "user", "", "Only venues owned by this user id")
}

func printVenues(w io.Writer, venues []*models.Venue) {
	if len(venues) == 0 {
		color.New(color.FgYellow).Fprintln(w, "No venues found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tNAME\tCITY\tTYPE\tSTATUS\tPHONE")
	for _, v := range venues {
		fmt.Fprintf(tw, "%d\t%s\t%s, %s\t%s\t%s\t%s\n", v.Score, v.Name, v.City, v.State, v.VenueType, v.ContactStatus, v.Phone)
	}
	tw.Flush()
}

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"twviewer/filters"
	"twviewer/models"
)

const cliDateLayout = "2006-01-02"

func (c *cli) tournamentsCmd() *cobra.Command {
	var eventType, date string

	cmd := &cobra.Command{
		Use:   "tournaments [query]",
		Short: "Search tournaments",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			et := filters.ParseTypeFilter(eventType)
			if et == "" && eventType != "" && eventType != filters.All {
				return fmt.Errorf("unknown event type %q", eventType)
			}
			df, err := filters.ParseDateFilter(date)
			if err != nil {
				return err
			}

			tournaments, err := c.api.QueryTournaments(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("load tournaments: %w", err)
			}
			now := time.Now()
			tournaments = df.Apply(filters.ByEventType(tournaments, et), now)

			out := cmd.OutOrStdout()
			if len(tournaments) == 0 {
				fmt.Fprintln(out, "No tournaments found.")
				return nil
			}
			rows := make([][]string, 0, len(tournaments))
			for _, t := range tournaments {
				rows = append(rows, []string{
					strconv.Itoa(t.ID),
					t.Name,
					string(t.EventType),
					dateRange(t),
					t.Status(now),
					t.CityState(),
				})
			}
			printTable(out, []string{"ID", "Name", "Type", "Dates", "Status", "Location"}, rows, nil)
			return nil
		},
	}
	cmd.Flags().StringVar(&eventType, "type", "", "event type (predefined, open, team, freestyle, season)")
	cmd.Flags().StringVar(&date, "date", string(filters.DatesAll), "all, upcoming or past")
	return cmd
}

func dateRange(t models.Tournament) string {
	if !t.HasStart() {
		return ""
	}
	s := t.StartDate.Format(cliDateLayout)
	if t.HasEnd() && !t.SingleDay() {
		s += " to " + t.EndDate.Format(cliDateLayout)
	}
	return s
}

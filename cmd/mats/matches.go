package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"twviewer/export"
	"twviewer/filters"
	"twviewer/live"
	"twviewer/models"
)

var statusColors = map[models.MatchStatus]lipgloss.Color{
	models.StatusInProgress: lipgloss.Color("2"),
	models.StatusOnDeck:     lipgloss.Color("3"),
}

func (c *cli) matchesCmd() *cobra.Command {
	var (
		mat, status, school string
		format              string
		watch               bool
		interval            time.Duration
	)

	cmd := &cobra.Command{
		Use:   "matches TYPE ID",
		Short: "Show a tournament's mat schedule",
		Long: `Show a tournament's mat schedule.

With --watch the schedule is fetched again every --interval until interrupted.
Press Enter to refresh ahead of the next interval.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			et, id, err := tournamentArgs(args)
			if err != nil {
				return err
			}
			if format != "table" && format != "csv" {
				return fmt.Errorf("unknown format %q (table or csv)", format)
			}
			f := filters.ParseMatchFilter(mat, status, school)
			out := cmd.OutOrStdout()

			show := func(matches []models.Match, fetched time.Time) error {
				if format == "csv" {
					return export.WriteMatchesCSV(out, f.Apply(matches))
				}
				printBoard(out, f, matches, fetched)
				return nil
			}

			if !watch {
				matches, err := c.api.GetMatches(cmd.Context(), et, id)
				if err != nil {
					return fmt.Errorf("load match data: %w", err)
				}
				return show(matches, time.Now())
			}

			poller := live.NewPoller(interval, func(ctx context.Context) ([]models.Match, error) {
				return c.api.GetMatches(ctx, et, id)
			})
			poller.Log = c.logger
			go refreshOnEnter(cmd.InOrStdin(), poller)
			err = poller.Run(cmd.Context(), func(r live.Result[[]models.Match]) {
				if r.Err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "Failed to load match data")
					return
				}
				if err := show(r.Value, r.Fetched); err != nil {
					c.logger.Warn("print matches", zap.Uint64("seq", r.Seq), zap.Error(err))
				}
			})
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&mat, "mat", filters.All, "mat number or all")
	flags.StringVar(&status, "status", filters.All, "in_hole, on_deck, in_progress or all")
	flags.StringVar(&school, "school", filters.All, "school id or all")
	flags.StringVar(&format, "format", "table", "table or csv")
	flags.BoolVarP(&watch, "watch", "w", false, "keep refreshing until interrupted")
	flags.DurationVar(&interval, "interval", live.DefaultInterval, "refresh interval for --watch")
	return cmd
}

// refreshOnEnter triggers a fetch for every line read from in, until in is exhausted.
func refreshOnEnter(in io.Reader, poller *live.Poller[[]models.Match]) {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		poller.Trigger()
	}
}

func printBoard(w io.Writer, f filters.MatchFilter, matches []models.Match, fetched time.Time) {
	shown := f.Apply(matches)
	fmt.Fprintf(w, "%d of %d matches, updated %s\n", len(shown), len(matches), fetched.Format("3:04:05 PM"))
	if len(shown) == 0 {
		return
	}

	wrestler := func(wr models.Wrestler) string {
		s := wr.FullName()
		if wr.Team.Name != "" {
			s += " (" + wr.Team.Name + ")"
		}
		if f.Highlighted(wr) {
			s = "* " + s
		}
		return s
	}
	rows := make([][]string, 0, len(shown))
	for _, m := range shown {
		rows = append(rows, []string{
			strconv.Itoa(m.Mat),
			strconv.Itoa(m.Bout),
			m.Status.Display(),
			m.WeightClass,
			m.Round,
			wrestler(m.Wrestler1),
			wrestler(m.Wrestler2),
		})
	}

	printTable(w, []string{"Mat", "Bout", "Status", "Weight", "Round", "Wrestler 1", "Wrestler 2"}, rows,
		func(re *lipgloss.Renderer, row, col int) *lipgloss.Style {
			if col != 2 || row < 0 || row >= len(shown) {
				return nil
			}
			color, ok := statusColors[shown[row].Status]
			if !ok {
				return nil
			}
			s := re.NewStyle().Foreground(color)
			return &s
		})
}

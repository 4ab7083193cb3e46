// Package export writes mat schedules in formats people paste into spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"twviewer/models"
)

var matchColumns = []string{
	"mat", "bout", "status", "weight_class", "round",
	"wrestler1", "wrestler1_team", "wrestler1_year", "wrestler1_record",
	"wrestler2", "wrestler2_team", "wrestler2_year", "wrestler2_record",
}

func WriteMatchesCSV(w io.Writer, matches []models.Match) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(matchColumns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i, m := range matches {
		record := []string{
			strconv.Itoa(m.Mat),
			strconv.Itoa(m.Bout),
			m.Status.Display(),
			m.WeightClass,
			m.Round,
		}
		record = append(record, wrestlerColumns(m.Wrestler1)...)
		record = append(record, wrestlerColumns(m.Wrestler2)...)
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func wrestlerColumns(w models.Wrestler) []string {
	return []string{w.FullName(), w.Team.Name, w.Year, w.Record}
}

// Filename is the download name for a tournament's schedule, e.g. "open-812-matches.csv".
func Filename(eventType models.EventType, id string) string {
	return fmt.Sprintf("%s-%s-matches.csv", eventType, id)
}

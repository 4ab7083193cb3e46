package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"twviewer/models"
)

func TestWriteMatchesCSV(t *testing.T) {
	matches := []models.Match{
		{
			Mat: 3, Bout: 1204, Status: models.StatusOnDeck, WeightClass: "157", Round: "Semis",
			Wrestler1: models.Wrestler{FirstName: "Austin", LastName: "Gomez", Team: models.Team{Name: "Iowa State"}, Year: "SR", Record: "21-2"},
			Wrestler2: models.Wrestler{FirstName: "Levi", LastName: "Haines", Team: models.Team{Name: "Penn State, PA"}},
		},
	}

	var buf bytes.Buffer
	if err := WriteMatchesCSV(&buf, matches); err != nil {
		t.Fatalf("expected write to succeed, got error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("expected output to be valid csv, got error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header and one row, got %d records", len(records))
	}
	if records[0][0] != "mat" || records[0][5] != "wrestler1" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	row := records[1]
	if row[0] != "3" || row[1] != "1204" || row[2] != "On Deck" {
		t.Fatalf("unexpected leading columns: %v", row)
	}
	if row[5] != "Austin Gomez" || row[7] != "SR" || row[8] != "21-2" {
		t.Fatalf("unexpected wrestler1 columns: %v", row[5:9])
	}
	if row[10] != "Penn State, PA" || row[11] != "" {
		t.Fatalf("unexpected wrestler2 columns: %v", row[9:])
	}
}

func TestWriteMatchesCSVEmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMatchesCSV(&buf, nil); err != nil {
		t.Fatalf("expected write to succeed, got error: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Fatalf("expected only the header line, got %d lines", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteMatchesCSVWriterError(t *testing.T) {
	err := WriteMatchesCSV(failingWriter{}, []models.Match{{Mat: 1}})
	if err == nil {
		t.Fatalf("expected error from failing writer")
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(models.EventOpen, "812"); got != "open-812-matches.csv" {
		t.Fatalf("unexpected filename %q", got)
	}
}

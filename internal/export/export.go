// Package export renders a finished build into its interchange formats:
// a JSON report, a CSV summary, and a YAML deck file. All output preserves
// registration order so exports of identical runs are byte-identical.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"jumpcube/internal/assign"
)

// WriteJSON writes the full result as indented JSON.
func WriteJSON(w io.Writer, res *assign.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// csvHeader is the column layout of the CSV summary, one row per deck.
var csvHeader = []string{
	"theme", "size", "creatures", "lands", "non_lands",
	"core_coverage", "mean_score", "complete", "violations",
}

// WriteCSV writes a per-deck summary table.
func WriteCSV(w io.Writer, res *assign.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, d := range res.Decks {
		row := []string{
			d.Theme,
			strconv.Itoa(len(d.Cards)),
			strconv.Itoa(d.CreatureCount),
			strconv.Itoa(d.LandCount),
			strconv.Itoa(d.NonLandCount),
			strconv.FormatFloat(d.CoreCoverage, 'f', 2, 64),
			strconv.FormatFloat(d.MeanScore, 'f', 2, 64),
			strconv.FormatBool(d.Complete()),
			strings.Join(d.Violations, "; "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DeckFile is the YAML structure for a saved build.
type DeckFile struct {
	RunID    string      `yaml:"run_id"`
	Decks    []DeckEntry `yaml:"decks"`
	Leftover []string    `yaml:"leftover,omitempty"`
}

// DeckEntry is one deck in a saved build.
type DeckEntry struct {
	Theme string   `yaml:"theme"`
	Cards []string `yaml:"cards"`
}

// WriteDecks writes the deck lists as YAML, the format deck files are
// shared and re-loaded in.
func WriteDecks(w io.Writer, res *assign.Result) error {
	df := DeckFile{
		RunID:    res.RunID,
		Leftover: res.Leftover,
	}
	for _, d := range res.Decks {
		df.Decks = append(df.Decks, DeckEntry{Theme: d.Theme, Cards: d.Cards})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(df); err != nil {
		return err
	}
	return enc.Close()
}

// ParseDecks parses a saved YAML deck file.
func ParseDecks(data []byte) (*DeckFile, error) {
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck file YAML: %w", err)
	}
	return &df, nil
}

// LoadDecks reads and parses a saved YAML deck file.
func LoadDecks(path string) (*DeckFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDecks(data)
}

// WriteFile writes the result to path in the format implied by its
// extension: .json, .csv, or .yaml/.yml.
func WriteFile(path string, res *assign.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch {
	case strings.HasSuffix(path, ".json"):
		err = WriteJSON(f, res)
	case strings.HasSuffix(path, ".csv"):
		err = WriteCSV(f, res)
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		err = WriteDecks(f, res)
	default:
		err = fmt.Errorf("unknown export extension on %q (want .json, .csv, or .yaml)", path)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

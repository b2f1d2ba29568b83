// Package main implements sleepscore, an offline CLI that runs the scoring
// pipeline over a JSON file of raw stage intervals.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/healthpilot/sleep-scorer/internal/api/validation"
	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/healthpilot/sleep-scorer/internal/scoring"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "sleepscore",
		Short: "Score sleep sessions from raw wearable stage intervals",
		Long: `sleepscore runs the sleep scoring pipeline locally, without the API server
or a database. Input is a JSON document shaped like the POST /v1/users/{id}/sleep-scores
request body: {"segments": [...], "local_timezone": "..."}.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.SetIn(in)
	root.SetOut(out)

	root.AddCommand(newScoreCmd(), newNormalizeCmd())
	return root
}

func newScoreCmd() *cobra.Command {
	var (
		file    string
		tz      string
		history string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Segment, cluster and score every night in the input",
		Long: `Score every night found in the input and print the results as JSON.

Examples:
  # Score a Health export converted to segments
  sleepscore score --file nights.json --tz Europe/Prague

  # Read from stdin with two prior midpoints for regularity
  cat nights.json | sleepscore score --history 2024-01-13T02:00:00Z,2024-01-14T02:10:00Z`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := readRequest(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			if tz != "" {
				if err := checkTimezone(tz); err != nil {
					return err
				}
			} else if req.LocalTimezone != nil {
				tz = *req.LocalTimezone
			}
			prior, err := parseHistory(history)
			if err != nil {
				return err
			}

			loc := scoring.LoadLocation(tz)
			return writeJSON(cmd.OutOrStdout(), domain.ComputeScoresResponse{
				LocalTimezone: loc.String(),
				Nights:        scoring.ScoreNights(req.Segments, loc, prior),
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "input JSON file, - for stdin")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA timezone for night keys and midpoints (default from input, else UTC)")
	cmd.Flags().StringVar(&history, "history", "", "comma separated RFC3339 midpoints of earlier nights")
	return cmd
}

func newNormalizeCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Print the classified, sorted stage segments without scoring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := readRequest(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), scoring.Normalize(req.Segments))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "input JSON file, - for stdin")
	return cmd
}

func readRequest(stdin io.Reader, file string) (*domain.ComputeScoresRequest, error) {
	r := stdin
	if file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var req domain.ComputeScoresRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrNoSegments
		}
		return nil, fmt.Errorf("decode input: %w", err)
	}
	if len(req.Segments) == 0 {
		return nil, domain.ErrNoSegments
	}

	if errs := validation.Validate(&req); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Field + ": " + e.Message
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
	}
	return &req, nil
}

// checkTimezone rejects names the API timezone validator would reject.
func checkTimezone(name string) error {
	if _, err := time.LoadLocation(name); err != nil || name == "Local" {
		return fmt.Errorf("%w: invalid --tz %q", domain.ErrInvalidInput, name)
	}
	return nil
}

func parseHistory(raw string) ([]time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var out []time.Time
	for _, part := range strings.Split(raw, ",") {
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid --history value %q: %w", part, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

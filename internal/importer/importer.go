// Package importer parses CSV uploads into roster entities. Malformed rows
// are collected as per-row errors; valid rows still come through.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/krystalg80/The-Reddit-Mastermind/internal/types"
)

// RowError describes one rejected CSV row. Line is 1-based and counts the
// header.
type RowError struct {
	Line int    `json:"line"`
	Msg  string `json:"msg"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Personas parses a persona CSV with header
// name,username,bio,expertise,tone. Expertise is semicolon-separated; an
// unknown tone falls back to casual with a row error noting it.
func Personas(r io.Reader, companyID string) ([]types.Persona, []RowError, error) {
	records, errs, err := read(r, []string{"name", "username", "bio", "expertise", "tone"})
	if err != nil {
		return nil, nil, err
	}

	var personas []types.Persona
	for _, rec := range records {
		if rec.fields[0] == "" || rec.fields[1] == "" {
			errs = append(errs, RowError{Line: rec.line, Msg: "name and username are required"})
			continue
		}

		tone := types.Tone(strings.ToLower(rec.fields[4]))
		if !types.ValidTone(tone) {
			errs = append(errs, RowError{Line: rec.line,
				Msg: fmt.Sprintf("unknown tone %q, defaulting to casual", rec.fields[4])})
			tone = types.ToneCasual
		}

		personas = append(personas, types.Persona{
			CompanyID:      companyID,
			Name:           rec.fields[0],
			RedditUsername: rec.fields[1],
			Bio:            rec.fields[2],
			Expertise:      splitExpertise(rec.fields[3]),
			Tone:           tone,
		})
	}
	return personas, errs, nil
}

// Subreddits parses a subreddit CSV with header
// name,description,posts_per_week.
func Subreddits(r io.Reader, companyID string) ([]types.Subreddit, []RowError, error) {
	records, errs, err := read(r, []string{"name", "description", "posts_per_week"})
	if err != nil {
		return nil, nil, err
	}

	var subs []types.Subreddit
	for _, rec := range records {
		if rec.fields[0] == "" {
			errs = append(errs, RowError{Line: rec.line, Msg: "name is required"})
			continue
		}

		limit := 0
		if rec.fields[2] != "" {
			limit, err = strconv.Atoi(strings.TrimSpace(rec.fields[2]))
			if err != nil || limit < 0 {
				errs = append(errs, RowError{Line: rec.line,
					Msg: fmt.Sprintf("invalid posts_per_week %q", rec.fields[2])})
				continue
			}
		}

		subs = append(subs, types.Subreddit{
			CompanyID:    companyID,
			Name:         strings.TrimPrefix(rec.fields[0], "r/"),
			Description:  rec.fields[1],
			PostsPerWeek: limit,
		})
	}
	return subs, errs, nil
}

// Topics parses a topic CSV with header query,intent.
func Topics(r io.Reader, companyID string) ([]types.Topic, []RowError, error) {
	records, errs, err := read(r, []string{"query", "intent"})
	if err != nil {
		return nil, nil, err
	}

	var topics []types.Topic
	for _, rec := range records {
		if rec.fields[0] == "" {
			errs = append(errs, RowError{Line: rec.line, Msg: "query is required"})
			continue
		}

		intent := types.Intent(strings.ToLower(rec.fields[1]))
		if !types.ValidIntent(intent) {
			errs = append(errs, RowError{Line: rec.line,
				Msg: fmt.Sprintf("unknown intent %q", rec.fields[1])})
			continue
		}

		topics = append(topics, types.Topic{
			CompanyID: companyID,
			Query:     rec.fields[0],
			Intent:    intent,
		})
	}
	return topics, errs, nil
}

type record struct {
	line   int
	fields []string
}

// read consumes the CSV, checks the header and returns trimmed records of
// the expected width. Short rows become row errors rather than aborting the
// whole import.
func read(r io.Reader, header []string) ([]record, []RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	first, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("empty CSV")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if !headerMatches(first, header) {
		return nil, nil, fmt.Errorf("expected header %q, got %q",
			strings.Join(header, ","), strings.Join(first, ","))
	}

	var records []record
	var errs []RowError
	line := 1
	for {
		line++
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = append(errs, RowError{Line: line, Msg: err.Error()})
			continue
		}
		if len(fields) < len(header) {
			errs = append(errs, RowError{Line: line,
				Msg: fmt.Sprintf("expected %d fields, got %d", len(header), len(fields))})
			continue
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		records = append(records, record{line: line, fields: fields[:len(header)]})
	}
	return records, errs, nil
}

func headerMatches(got, want []string) bool {
	if len(got) < len(want) {
		return false
	}
	for i, w := range want {
		if !strings.EqualFold(strings.TrimSpace(got[i]), w) {
			return false
		}
	}
	return true
}

func splitExpertise(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

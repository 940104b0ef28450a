package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/filingwatch/regdocs-monitor/internal/repository"
)

// Candidate is one discovered filing as reported by the scrape step,
// serialized as JSON in a drop file.
type Candidate struct {
	ExternalID       string              `json:"external_id"`
	Date             string              `json:"date,omitempty"` // YYYY-MM-DD
	Applicant        string              `json:"applicant,omitempty"`
	FilingType       string              `json:"filing_type,omitempty"`
	ProceedingNumber string              `json:"proceeding_number,omitempty"`
	Title            string              `json:"title,omitempty"`
	URL              string              `json:"url,omitempty"`
	Documents        []CandidateDocument `json:"documents"`
}

// CandidateDocument is one downloadable artifact of a candidate filing.
type CandidateDocument struct {
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
}

// Result is the per-candidate ingest outcome.
type Result struct {
	ExternalID   string
	Deduplicated bool
	Err          string
}

// Stats summarizes one ingest pass.
type Stats struct {
	Found        uint32
	New          uint32
	Deduplicated uint32
	Failed       uint32
}

// Service registers discovered filings, skipping ones already stored.
type Service struct {
	Filings repository.FilingRepository
	Logger  *slog.Logger
}

func NewService(filings repository.FilingRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Filings: filings, Logger: logger}
}

// IngestFile reads a JSON drop file holding an array of candidates and
// registers each one.
func (s *Service) IngestFile(ctx context.Context, path string) ([]Result, Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("read candidates file: %w", err)
	}
	var candidates []Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, Stats{}, fmt.Errorf("parse candidates file %s: %w", path, err)
	}
	results, stats := s.IngestCandidates(ctx, candidates)
	return results, stats, nil
}

// IngestCandidates registers each candidate, continuing past individual
// failures. Known external ids are counted as deduplicated, not errors.
func (s *Service) IngestCandidates(ctx context.Context, candidates []Candidate) ([]Result, Stats) {
	var results []Result
	var stats Stats

	for _, c := range candidates {
		stats.Found++
		res := s.ingestOne(ctx, c)
		results = append(results, res)
		switch {
		case res.Err != "":
			stats.Failed++
		case res.Deduplicated:
			stats.Deduplicated++
		default:
			stats.New++
		}
	}

	s.Logger.Info("ingest complete",
		"found", stats.Found, "new", stats.New,
		"deduplicated", stats.Deduplicated, "failed", stats.Failed)
	return results, stats
}

func (s *Service) ingestOne(ctx context.Context, c Candidate) Result {
	id := strings.TrimSpace(c.ExternalID)
	if id == "" {
		return Result{Err: "missing external_id"}
	}

	exists, err := s.Filings.Exists(ctx, id)
	if err != nil {
		return Result{ExternalID: id, Err: err.Error()}
	}
	if exists {
		return Result{ExternalID: id, Deduplicated: true}
	}

	req := &repository.CreateFilingRequest{
		ExternalID:       id,
		Applicant:        c.Applicant,
		FilingType:       c.FilingType,
		ProceedingNumber: c.ProceedingNumber,
		Title:            c.Title,
		URL:              c.URL,
	}
	if c.Date != "" {
		t, err := time.Parse("2006-01-02", c.Date)
		if err != nil {
			s.Logger.Warn("unparseable candidate date, storing without one",
				"external_id", id, "date", c.Date)
		} else {
			req.Date = &t
		}
	}
	for _, d := range c.Documents {
		if strings.TrimSpace(d.URL) == "" {
			continue
		}
		req.Documents = append(req.Documents, repository.CandidateDocument{
			URL:      d.URL,
			Filename: d.Filename,
		})
	}

	if _, err := s.Filings.Create(ctx, req); err != nil {
		return Result{ExternalID: id, Err: err.Error()}
	}
	return Result{ExternalID: id}
}

package commands

import (
	"context"
	"sort"
	"strings"

	"github.com/Davisanity-TW/stock-report/internal/domain"
	"github.com/Davisanity-TW/stock-report/internal/ports"
)

// SearchResult wraps domain.SearchResult with a relevance score
type SearchResult struct {
	domain.SearchResult
	Score int
}

// SearchCommand searches the source reports with fuzzy matching
type SearchCommand struct {
	repo  ports.ReportRepository
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(repo ports.ReportRepository, query string) *SearchCommand {
	return &SearchCommand{
		repo:  repo,
		Query: query,
	}
}

// Execute runs the search and returns scored results, best first.
// Queries under two characters return nothing; against four sections of
// weekly files a single character matches almost every identifier.
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if len(c.Query) < 2 {
		return nil, nil
	}

	results, err := c.repo.Search(c.Query)
	if err != nil {
		return nil, err
	}

	return FuzzySort(results, c.Query), nil
}

// FuzzyScore rates how well target matches query, 0 meaning no match.
// A direct substring (100, or 150 anchored at the start) always beats a
// scattered match, which must contain every query rune in order.
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)
	if query == "" {
		return 0
	}

	if strings.Contains(target, query) {
		if strings.HasPrefix(target, query) {
			return 150
		}
		return 100
	}
	return scatteredScore([]rune(target), []rune(query))
}

// scatteredScore walks the target runes looking for the query runes in
// order, rewarding unbroken runs and matches that open an identifier
// segment. Rune based because content lines are mostly CJK.
func scatteredScore(target, query []rune) int {
	score := 0
	qi := 0
	prev := -1

	for i := 0; i < len(target) && qi < len(query); i++ {
		if target[i] != query[qi] {
			continue
		}
		score++
		if prev >= 0 && i == prev+1 {
			score += 10
		}
		if i == 0 {
			score += 15
		} else if segmentBoundary(target[i-1]) {
			score += 10
		}
		prev = i
		qi++
	}
	if qi < len(query) {
		return 0
	}
	return score
}

// segmentBoundary reports whether a rune separates identifier segments,
// as in "2026-W05", "202602/02-01" or "tw/2026-W05.md"
func segmentBoundary(r rune) bool {
	switch r {
	case '-', '/', '.', '_', ' ':
		return true
	}
	return false
}

// FuzzySort scores results against the query and returns the survivors
// ordered best first. The qualified identifier and the matched line
// compete on the same scale; the better of the two counts.
func FuzzySort(results []domain.SearchResult, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(results))
	for _, r := range results {
		best := max(FuzzyScore(r.QualifiedID(), query), FuzzyScore(r.MatchedText, query))
		if best <= 0 {
			continue
		}
		scored = append(scored, SearchResult{SearchResult: r, Score: best})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].QualifiedID() < scored[j].QualifiedID()
	})
	return scored
}

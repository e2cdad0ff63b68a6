package app

import (
	"context"
	"strings"

	"msys2-buildqueue/internal/types"
)

const searchTypeSource = "pkg"
const searchTypeBinary = "binpkg"

// Search performs a substring search over source or binary package
// names. Every whitespace-separated query part must match; a full name
// match is reported separately as the exact hit.
func (s Service) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	snapshot, err := s.loadSnapshot(ctx, req.SnapshotPath, req.SnapshotURL, req.HTTPTimeoutSec, req.HTTPRetries, req.HTTPRetryDelayMs)
	if err != nil {
		return SearchResult{}, err
	}

	qtype := req.Type
	if qtype != searchTypeSource && qtype != searchTypeBinary {
		qtype = searchTypeSource
	}
	query := strings.ToLower(strings.TrimSpace(req.Query))
	result := SearchResult{Query: query, Type: qtype, Other: []SourceSummary{}}
	if query == "" {
		return result, nil
	}
	parts := strings.Fields(query)

	for _, source := range snapshot.Sources {
		switch qtype {
		case searchTypeSource:
			if strings.ToLower(source.Name) == query || strings.ToLower(source.RealName) == query {
				result.Exact = summarize(source)
				continue
			}
			if matchesAll(source.Name, parts) {
				result.Other = append(result.Other, *summarize(source))
			}
		case searchTypeBinary:
			matched := false
			for _, pkg := range source.Packages {
				if strings.ToLower(pkg.Name) == query || strings.ToLower(pkg.RealName) == query {
					result.Exact = summarize(source)
					matched = true
					break
				}
				if !matched && matchesAll(pkg.Name, parts) {
					result.Other = append(result.Other, *summarize(source))
					matched = true
				}
			}
		}
	}
	return result, nil
}

func matchesAll(name string, parts []string) bool {
	lower := strings.ToLower(name)
	for _, part := range parts {
		if !strings.Contains(lower, part) {
			return false
		}
	}
	return true
}

func summarize(source types.Source) *SourceSummary {
	return &SourceSummary{
		Name:     source.Name,
		RealName: source.RealName,
		Version:  source.Version,
	}
}

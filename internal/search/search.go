// Package search provides name search over folder lists.
package search

import (
	"regexp"
	"strings"

	"github.com/taigrr/folder-mcp/internal/types"
)

const defaultLimit = 15

// Service provides name search over folder lists.
type Service struct{}

// New creates a new SearchService.
func New() *Service {
	return &Service{}
}

// Search returns folders and files whose names match the query, in list
// order with each folder reported before its own files.
func (s *Service) Search(list types.List, params types.SearchParams) ([]types.SearchResult, error) {
	query := params.Query
	if strings.TrimSpace(query) == "" {
		return nil, &SearchError{Message: "Search query cannot be empty"}
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	pattern, err := compile(query, params.UseRegex, params.CaseSensitive)
	if err != nil {
		return nil, err
	}

	results := []types.SearchResult{}
	for _, folder := range list {
		if pattern.MatchString(folder.Name) {
			results = append(results, types.SearchResult{
				Kind:     types.KindFolder,
				ID:       folder.ID,
				Name:     folder.Name,
				FolderID: folder.ID,
			})
			if len(results) >= limit {
				return results, nil
			}
		}
		for _, file := range folder.Files {
			if !pattern.MatchString(file.Name) {
				continue
			}
			results = append(results, types.SearchResult{
				Kind:     types.KindFile,
				ID:       file.ID,
				Name:     file.Name,
				FolderID: folder.ID,
			})
			if len(results) >= limit {
				return results, nil
			}
		}
	}

	return results, nil
}

func compile(query string, useRegex, caseSensitive bool) (*regexp.Regexp, error) {
	expr := query
	if !useRegex {
		// Escape regex special chars for literal search
		expr = regexp.QuoteMeta(query)
	}
	if !caseSensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		if useRegex {
			return nil, &SearchError{Message: "Invalid regex pattern: " + err.Error()}
		}
		return nil, &SearchError{Message: "Search error: " + err.Error()}
	}
	return re, nil
}

// SearchError represents a search error.
type SearchError struct {
	Message string
}

func (e *SearchError) Error() string {
	return e.Message
}

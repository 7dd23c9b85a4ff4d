// Package workspace owns a single folder list and applies moves to it.
package workspace

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/taigrr/folder-mcp/internal/folders"
	"github.com/taigrr/folder-mcp/internal/listfile"
	"github.com/taigrr/folder-mcp/internal/search"
	"github.com/taigrr/folder-mcp/internal/types"
)

// Service serializes access to one folder list.
type Service struct {
	mu     sync.Mutex
	list   types.List
	source string

	listHandler   *listfile.Handler
	searchService *search.Service
	logger        *slog.Logger
}

// Stats summarizes the size of the list.
type Stats struct {
	Folders int `json:"folders"`
	Files   int `json:"files"`
}

// New creates a workspace around a copy of list. The list must satisfy
// listfile.Validate.
func New(list types.List, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Service{
		listHandler:   listfile.New(),
		searchService: search.New(),
		logger:        logger,
	}

	if list == nil {
		list = types.List{}
	}
	if err := s.validate(list); err != nil {
		return nil, err
	}
	s.list = list.Clone()
	return s, nil
}

// Open loads a list file and creates a workspace for it.
func Open(path string, logger *slog.Logger) (*Service, error) {
	list, err := listfile.New().Load(path)
	if err != nil {
		return nil, err
	}
	s, err := New(list, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.source = path
	s.logger.Info("loaded folder list", "path", path, "folders", len(list), "files", list.FileCount())
	return s, nil
}

func (s *Service) validate(list types.List) error {
	result := s.listHandler.Validate(list)
	for _, w := range result.Warnings {
		s.logger.Warn("folder list", "warning", w)
	}
	if !result.IsValid {
		return fmt.Errorf("invalid folder list: %s", strings.Join(result.Errors, ", "))
	}
	return nil
}

// Move relocates a file into another folder.
func (s *Service) Move(params types.MoveParams) types.MoveResult {
	sourceID := strings.TrimSpace(params.SourceID)
	destinationID := strings.TrimSpace(params.DestinationID)

	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := folders.Move(s.list, sourceID, destinationID)
	if err != nil {
		kind := folders.KindOf(err)
		s.logger.Info("move rejected",
			"source", sourceID,
			"destination", destinationID,
			"kind", kind.String(),
		)
		return types.MoveResult{
			Success:       false,
			SourceID:      sourceID,
			DestinationID: destinationID,
			Kind:          kind.String(),
			Message:       failureMessage(err),
		}
	}

	s.list = updated
	s.logger.Debug("moved file", "source", sourceID, "destination", destinationID)

	return types.MoveResult{
		Success:       true,
		SourceID:      sourceID,
		DestinationID: destinationID,
		Message:       fmt.Sprintf("Successfully moved file %s to folder %s", sourceID, destinationID),
	}
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, folders.ErrInvalidSource):
		return fmt.Sprintf("Cannot move %s: it is a folder, only files can be moved", idOf(err))
	case errors.Is(err, folders.ErrInvalidDestination):
		return fmt.Sprintf("Cannot move into %s: it is a file, the destination must be a folder", idOf(err))
	case errors.Is(err, folders.ErrSourceNotFound):
		return fmt.Sprintf("Source file not found: %s", idOf(err))
	case errors.Is(err, folders.ErrDestinationNotFound):
		return fmt.Sprintf("Destination folder not found: %s", idOf(err))
	case errors.Is(err, folders.ErrAlreadyInDestination):
		return fmt.Sprintf("File %s is already in the destination folder", idOf(err))
	default:
		return fmt.Sprintf("Move failed: %v", err)
	}
}

// idOf returns the identifier a move error refers to.
func idOf(err error) string {
	var me *folders.MoveError
	if errors.As(err, &me) {
		return me.ID
	}
	return ""
}

// List returns a copy of the current folders.
func (s *Service) List() types.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Clone()
}

// Locate reports whether id names a folder or a file.
func (s *Service) Locate(id string) (types.Location, error) {
	id = strings.TrimSpace(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	loc, ok := folders.Locate(s.list, id)
	if !ok {
		return types.Location{}, fmt.Errorf("id not found: %s", id)
	}
	return loc, nil
}

// Search matches folder and file names.
func (s *Service) Search(params types.SearchParams) ([]types.SearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchService.Search(s.list, params)
}

// Stats returns the current folder and file counts.
func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{Folders: len(s.list), Files: s.list.FileCount()}
}

// Source returns the path the list was loaded from, if any.
func (s *Service) Source() string {
	return s.source
}

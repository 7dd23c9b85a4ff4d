// Package listfile handles YAML encoding, decoding and validation of folder lists.
package listfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/taigrr/folder-mcp/internal/types"
	"gopkg.in/yaml.v3"
)

// Handler handles folder list parsing and validation.
type Handler struct{}

// New creates a new list file Handler.
func New() *Handler {
	return &Handler{}
}

type document struct {
	Folders types.List `yaml:"folders"`
}

// Parse decodes a folder list. The document may be a bare sequence of
// folders or a mapping with a "folders" key. JSON input is accepted.
func (h *Handler) Parse(data []byte) (types.List, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse list: %w", err)
	}

	// Empty document
	if len(root.Content) == 0 {
		return types.List{}, nil
	}

	node := root.Content[0]
	var list types.List
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&list); err != nil {
			return nil, fmt.Errorf("failed to decode folders: %w", err)
		}
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode folders: %w", err)
		}
		list = doc.Folders
	default:
		return nil, fmt.Errorf("list must be a sequence of folders or a mapping with a folders key")
	}

	if list == nil {
		list = types.List{}
	}
	for i := range list {
		if list[i].Files == nil {
			list[i].Files = []types.File{}
		}
	}
	return list, nil
}

// Stringify encodes a folder list as a YAML sequence.
func (h *Handler) Stringify(list types.List) (string, error) {
	if list == nil {
		list = types.List{}
	}
	out, err := yaml.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("failed to stringify list: %w", err)
	}
	return string(out), nil
}

// Load reads and parses a list file from disk.
func (h *Handler) Load(path string) (types.List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("list file not found: %s", path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("permission denied: %s", path)
		}
		return nil, fmt.Errorf("failed to read list file: %s - %w", path, err)
	}

	list, err := h.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Validate checks the identifier rules a list must satisfy before moves
// are applied to it: every id is non-empty, folder ids are unique, file ids
// are unique across all folders, no id names both a folder and a file, and
// no id has leading or trailing whitespace.
func (h *Handler) Validate(list types.List) types.ListValidationResult {
	result := types.ListValidationResult{
		IsValid:  true,
		Errors:   []string{},
		Warnings: []string{},
	}

	fail := func(format string, args ...any) {
		result.IsValid = false
		result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
	}

	folderIDs := make(map[string]int, len(list))
	for i, folder := range list {
		if strings.TrimSpace(folder.ID) == "" {
			fail("Folder at index %d has an empty id", i)
			continue
		}
		if strings.TrimSpace(folder.ID) != folder.ID {
			fail("Folder id %q has surrounding whitespace", folder.ID)
			continue
		}
		if prev, ok := folderIDs[folder.ID]; ok {
			fail("Duplicate folder id %q at indexes %d and %d", folder.ID, prev, i)
			continue
		}
		folderIDs[folder.ID] = i
		if folder.Name == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Folder %q has no name", folder.ID))
		}
	}

	fileOwners := make(map[string]string)
	for i, folder := range list {
		for j, file := range folder.Files {
			if strings.TrimSpace(file.ID) == "" {
				fail("File at index %d of folder %d has an empty id", j, i)
				continue
			}
			if strings.TrimSpace(file.ID) != file.ID {
				fail("File id %q has surrounding whitespace", file.ID)
				continue
			}
			if _, ok := folderIDs[file.ID]; ok {
				fail("Id %q is used by both a folder and a file", file.ID)
				continue
			}
			if owner, ok := fileOwners[file.ID]; ok {
				fail("Duplicate file id %q in folders %q and %q", file.ID, owner, folder.ID)
				continue
			}
			fileOwners[file.ID] = folder.ID
			if file.Name == "" {
				result.Warnings = append(result.Warnings, fmt.Sprintf("File %q has no name", file.ID))
			}
		}
	}

	return result
}

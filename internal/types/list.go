// Package types defines all data structures used across the MCP server.
package types

type (
	// File is a leaf record that belongs to exactly one folder.
	File struct {
		ID   string `json:"id" yaml:"id"`
		Name string `json:"name" yaml:"name"`
	}

	// Folder is a named container holding an ordered sequence of files.
	Folder struct {
		ID    string `json:"id" yaml:"id"`
		Name  string `json:"name" yaml:"name"`
		Files []File `json:"files" yaml:"files"`
	}

	// List is the top-level ordered sequence of folders.
	List []Folder

	// ListValidationResult contains the result of list validation.
	ListValidationResult struct {
		IsValid  bool     `json:"isValid"`
		Errors   []string `json:"errors"`
		Warnings []string `json:"warnings"`
	}
)

// Clone returns a deep copy of the list.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	for i, folder := range l {
		out[i] = Folder{ID: folder.ID, Name: folder.Name}
		if folder.Files != nil {
			out[i].Files = make([]File, len(folder.Files))
			copy(out[i].Files, folder.Files)
		}
	}
	return out
}

// FileCount returns the total number of files across all folders.
func (l List) FileCount() int {
	n := 0
	for _, folder := range l {
		n += len(folder.Files)
	}
	return n
}

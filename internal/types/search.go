package types

type (
	// SearchParams contains parameters for searching folder and file names.
	SearchParams struct {
		Query         string `json:"query"`
		UseRegex      bool   `json:"useRegex,omitempty"`
		CaseSensitive bool   `json:"caseSensitive,omitempty"`
		Limit         int    `json:"limit,omitempty"`
	}

	// SearchResult is a single folder or file whose name matched.
	SearchResult struct {
		Kind     string `json:"kind"`
		ID       string `json:"id"`
		Name     string `json:"name"`
		FolderID string `json:"folderId"`
	}
)

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/folder-mcp/internal/types"
)

type (
	// ListInput contains parameters for listing folders.
	ListInput struct {
		FolderID string `json:"folderId,omitempty" jsonschema:"Only return this folder (default: all folders)"`
	}

	// ListOutput contains the current folders.
	ListOutput struct {
		Folders     types.List `json:"folders"`
		FolderCount int        `json:"folderCount"`
		FileCount   int        `json:"fileCount"`
	}

	// MoveInput contains parameters for moving a file.
	MoveInput struct {
		Source      string `json:"source" jsonschema:"Id of the file to move"`
		Destination string `json:"destination" jsonschema:"Id of the folder to move the file into"`
	}

	// MoveOutput contains the result of moving a file.
	MoveOutput struct {
		Success     bool   `json:"success"`
		Source      string `json:"source"`
		Destination string `json:"destination"`
		Kind        string `json:"kind,omitempty"`
		Message     string `json:"message"`
	}

	// LocateInput contains parameters for locating an id.
	LocateInput struct {
		ID string `json:"id" jsonschema:"Folder or file id to look up"`
	}

	// LocateOutput describes where an id lives.
	LocateOutput struct {
		ID          string `json:"id"`
		Kind        string `json:"kind"`
		FolderID    string `json:"folderId"`
		FolderIndex int    `json:"folderIndex"`
		FileIndex   *int   `json:"fileIndex"` // null for folders
	}

	// SearchInput contains parameters for searching names.
	SearchInput struct {
		Query         string `json:"query" jsonschema:"Search query (plain text or regex if useRegex=true)"`
		UseRegex      bool   `json:"useRegex,omitempty" jsonschema:"Treat query as regex pattern (default: false)"`
		CaseSensitive bool   `json:"caseSensitive,omitempty" jsonschema:"Case sensitive search (default: false)"`
		Limit         int    `json:"limit,omitempty" jsonschema:"Maximum results (default: 15)"`
	}

	// SearchOutput contains search results.
	SearchOutput struct {
		Results []types.SearchResult `json:"results"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list",
		Description: "List all folders and the files they contain, in order. Pass folderId to return a single folder.",
	}, handleList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "move",
		Description: "Move a file into a different folder. The file is removed from its current folder and appended to the end of the destination folder. Source must be a file id, destination must be a folder id.",
	}, handleMove)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "locate",
		Description: "Look up an id and report whether it names a folder or a file, and which folder holds it.",
	}, handleLocate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search",
		Description: "Search folder and file names. Case-insensitive plain text by default; supports regex.",
	}, handleSearch)
}

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/folder-mcp/internal/types"
)

func handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	list := folderWorkspace.List()
	folderID := strings.TrimSpace(input.FolderID)

	if folderID != "" {
		var selected types.List
		for _, folder := range list {
			if folder.ID == folderID {
				selected = types.List{folder}
				break
			}
		}
		if selected == nil {
			return &mcp.CallToolResult{IsError: true}, ListOutput{}, fmt.Errorf("folder not found: %s", folderID)
		}
		list = selected
	}

	return nil, ListOutput{
		Folders:     list,
		FolderCount: len(list),
		FileCount:   list.FileCount(),
	}, nil
}

func handleMove(ctx context.Context, req *mcp.CallToolRequest, input MoveInput) (*mcp.CallToolResult, MoveOutput, error) {
	result := folderWorkspace.Move(types.MoveParams{
		SourceID:      input.Source,
		DestinationID: input.Destination,
	})

	output := MoveOutput{
		Success:     result.Success,
		Source:      result.SourceID,
		Destination: result.DestinationID,
		Kind:        result.Kind,
		Message:     result.Message,
	}

	// Returned as a tool result rather than an error so clients keep the
	// structured kind.
	if !result.Success {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("%s (%s)", result.Message, result.Kind)},
			},
			StructuredContent: output,
		}, output, nil
	}

	return nil, output, nil
}

func handleLocate(ctx context.Context, req *mcp.CallToolRequest, input LocateInput) (*mcp.CallToolResult, LocateOutput, error) {
	loc, err := folderWorkspace.Locate(input.ID)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, LocateOutput{}, err
	}

	output := LocateOutput{
		ID:          loc.ID,
		Kind:        loc.Kind,
		FolderID:    loc.FolderID,
		FolderIndex: loc.FolderIndex,
	}
	if loc.Kind == types.KindFile {
		output.FileIndex = &loc.FileIndex
	}
	return nil, output, nil
}

func handleSearch(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return &mcp.CallToolResult{IsError: true}, SearchOutput{}, fmt.Errorf("query cannot be empty")
	}

	results, err := folderWorkspace.Search(types.SearchParams{
		Query:         query,
		UseRegex:      input.UseRegex,
		CaseSensitive: input.CaseSensitive,
		Limit:         input.Limit,
	})
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, SearchOutput{}, err
	}

	return nil, SearchOutput{Results: results}, nil
}

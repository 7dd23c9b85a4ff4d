// Package folders implements relocation of file records between folders
// of an in-memory folder list.
package folders

import (
	"slices"

	"github.com/taigrr/folder-mcp/internal/types"
)

// Move relocates the file sourceID into the folder destinationID.
//
// Identifiers are assumed unique across the whole list; the scan stops as
// soon as both the source file and the destination folder are found, so a
// duplicated identifier resolves to its first occurrence. Callers that load
// untrusted lists should reject duplicates first (see listfile.Validate).
//
// The input list is never modified. The returned list is a new slice in
// which the two affected folders carry new file slices; every other folder
// shares its file slice with the input.
func Move(list types.List, sourceID, destinationID string) (types.List, error) {
	sourceFolder, sourceFile, destFolder := -1, -1, -1

	for fi, folder := range list {
		if folder.ID == sourceID {
			return nil, &MoveError{Kind: InvalidSource, ID: sourceID}
		}
		if folder.ID == destinationID {
			destFolder = fi
		}
		if sourceFolder != -1 && destFolder != -1 {
			break
		}

		for i, file := range folder.Files {
			if file.ID == destinationID {
				return nil, &MoveError{Kind: InvalidDestination, ID: destinationID}
			}
			if file.ID == sourceID {
				sourceFolder, sourceFile = fi, i
				break
			}
		}
	}

	if sourceFolder == -1 {
		return nil, &MoveError{Kind: SourceNotFound, ID: sourceID}
	}
	if destFolder == -1 {
		return nil, &MoveError{Kind: DestinationNotFound, ID: destinationID}
	}
	if sourceFolder == destFolder {
		return nil, &MoveError{Kind: AlreadyInDestination, ID: sourceID}
	}

	out := slices.Clone(list)
	file := out[sourceFolder].Files[sourceFile]

	src := out[sourceFolder].Files
	remaining := make([]types.File, 0, len(src)-1)
	remaining = append(remaining, src[:sourceFile]...)
	out[sourceFolder].Files = append(remaining, src[sourceFile+1:]...)

	dst := out[destFolder].Files
	moved := make([]types.File, 0, len(dst)+1)
	moved = append(moved, dst...)
	out[destFolder].Files = append(moved, file)

	return out, nil
}

// Locate reports whether id names a folder or a file in list, and where.
func Locate(list types.List, id string) (types.Location, bool) {
	for fi, folder := range list {
		if folder.ID == id {
			return types.Location{
				ID:          id,
				Kind:        types.KindFolder,
				FolderID:    folder.ID,
				FolderIndex: fi,
				FileIndex:   -1,
			}, true
		}
		for i, file := range folder.Files {
			if file.ID == id {
				return types.Location{
					ID:          id,
					Kind:        types.KindFile,
					FolderID:    folder.ID,
					FolderIndex: fi,
					FileIndex:   i,
				}, true
			}
		}
	}
	return types.Location{}, false
}

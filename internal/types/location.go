package types

// Kinds of entity an identifier can name.
const (
	KindFolder = "folder"
	KindFile   = "file"
)

// Location describes where an identifier lives in a list.
type Location struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	FolderID    string `json:"folderId"`
	FolderIndex int    `json:"folderIndex"`
	FileIndex   int    `json:"fileIndex"` // -1 for folders
}

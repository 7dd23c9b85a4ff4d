package types

type (
	// MoveParams contains parameters for moving a file between folders.
	MoveParams struct {
		SourceID      string `json:"sourceId"`
		DestinationID string `json:"destinationId"`
	}

	// MoveResult contains the result of a move operation.
	MoveResult struct {
		Success       bool   `json:"success"`
		SourceID      string `json:"sourceId"`
		DestinationID string `json:"destinationId"`
		Kind          string `json:"kind,omitempty"`
		Message       string `json:"message"`
	}
)

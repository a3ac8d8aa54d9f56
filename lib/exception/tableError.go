package exception

import "fmt"

type TableNotFoundError struct {
	*AppError
	PageId     string
	BlockIndex int
}

func NewTableNotFoundError(pageId string, blockIndex int) *TableNotFoundError {
	return &TableNotFoundError{
		AppError: &AppError{
			Code:    "TABLE_NOT_FOUND",
			Message: fmt.Sprintf("page '%s' has no table at block %d", pageId, blockIndex),
		},
		PageId:     pageId,
		BlockIndex: blockIndex,
	}
}

package exception

import "fmt"

type PageNotFoundError struct {
	*AppError
	PageId string
}

func NewPageNotFoundError(pageId string) *PageNotFoundError {
	return &PageNotFoundError{
		AppError: &AppError{
			Code:    "PAGE_NOT_FOUND",
			Message: fmt.Sprintf("page with id '%s' does not exist", pageId),
		},
		PageId: pageId,
	}
}

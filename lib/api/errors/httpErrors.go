package errors

var InternalApiError = Error{
	Message: "Internal API Error",
	Error:   500,
}

var InvalidRequestError = Error{
	Message: "Invalid request",
	Error:   400,
}

var InvalidPageIdError = Error{
	Message: "Invalid page id",
	Error:   400,
}

var PageNotFoundError = Error{
	Message: "Page not found",
	Error:   404,
}

var TableNotFoundError = Error{
	Message: "Table not found",
	Error:   404,
}

var CellNotFoundError = Error{
	Message: "Cell not found",
	Error:   404,
}

var MalformedReferenceError = Error{
	Message: "Malformed cell reference",
	Error:   400,
}

var FormulaCellError = Error{
	Message: "Cell value is formula-derived, edit the formula instead",
	Error:   409,
}

func NewInvalidParamError(paramName string) Error {
	return Error{
		Message: "Invalid parameter: " + paramName,
		Error:   400,
	}
}

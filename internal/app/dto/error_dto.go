package dto

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse carries the message twice: Detail for the bundled web
// client, Error for API consumers that switch on the code.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Error  Error  `json:"error"`
}

func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Detail: message,
		Error:  Error{Code: code, Message: message},
	}
}

package utils

// Response is the standard API envelope. Data is always present, null when
// there is nothing to return.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func NewResponse(status int, message string, data interface{}) Response {
	return Response{Status: status, Message: message, Data: data}
}

func NewSuccessResponse(message string, data interface{}) Response {
	return Response{Status: 200, Message: message, Data: data}
}

func NewErrorResponse(status int, message string) Response {
	return Response{Status: status, Message: message, Data: nil}
}

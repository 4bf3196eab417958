package response

// Body is the JSON error envelope used by middleware responses.
type Body struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Error(code, message string, data any) Body {
	return Body{
		Success: false,
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func Success(message string, data any) Body {
	return Body{
		Success: true,
		Code:    "OK",
		Message: message,
		Data:    data,
	}
}

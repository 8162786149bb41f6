package model

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
} // @name model.SuccessResponse

// ErrorResponse carries the stable error code for clients and the raw error
// in Info for debugging.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Info    string `json:"info,omitempty"`
} // @name model.ErrorResponse

package dto

// APIResponse is the envelope every endpoint responds with.
type APIResponse struct {
	Success    bool            `json:"success" example:"true"`
	Message    string          `json:"message,omitempty" example:"Operation completed successfully"`
	Data       interface{}     `json:"data,omitempty"`
	Error      ErrorCode       `json:"error,omitempty" example:"NOT_FOUND"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
}

// PaginationInfo accompanies list responses.
type PaginationInfo struct {
	Page       int   `json:"page" example:"1"`
	Limit      int   `json:"limit" example:"10"`
	Total      int64 `json:"total" example:"42"`
	TotalPages int   `json:"totalPages" example:"5"`
	HasMore    bool  `json:"hasMore" example:"true"`
}

// NewSuccessResponse wraps data in a successful envelope.
func NewSuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// NewListResponse wraps a page of items.
func NewListResponse(message string, items interface{}, pagination PaginationInfo) APIResponse {
	return APIResponse{Success: true, Message: message, Data: items, Pagination: &pagination}
}

// NewErrorResponse builds a failed envelope. data may carry field errors or
// other context safe to show to clients.
func NewErrorResponse(code ErrorCode, message string, data interface{}) APIResponse {
	return APIResponse{Success: false, Message: message, Error: code, Data: data}
}

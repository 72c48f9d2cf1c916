package response

import "github.com/mukundan1989/baebyzleep/internal"

type APIResponse struct {
	Data  interface{}        `json:"data,omitempty"`
	Meta  map[string]any     `json:"meta,omitempty"`
	Error *internal.AppError `json:"error,omitempty"`
}

func Success(data interface{}, meta map[string]any) APIResponse {
	return APIResponse{Data: data, Meta: meta}
}

func BadRequest(msg string, meta map[string]any) APIResponse {
	return APIResponse{Meta: meta, Error: internal.NewAppError(400, msg)}
}

func InternalError(msg string) APIResponse {
	return APIResponse{Error: internal.NewAppError(500, msg)}
}

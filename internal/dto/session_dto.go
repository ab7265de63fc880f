package dto

type UploadResponse struct {
	SessionId  string              `json:"session_id"`
	Message    string              `json:"message"`
	Filename   string              `json:"filename"`
	Rows       int                 `json:"rows"`
	Columns    int                 `json:"columns"`
	SampleData []map[string]string `json:"sample_data"`
}

type ChatRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Model     string `json:"model"` // Opaque, forwarded to the provider verbatim
}

type ChatResponse struct {
	Response string `json:"response"`
}

// SessionDataResponse is the debug preview of a stored session.
type SessionDataResponse struct {
	Filename       string              `json:"filename"`
	TotalRows      int                 `json:"total_rows"`
	DataPreview    []map[string]string `json:"data_preview"`
	ContextPreview string              `json:"context_preview"`
}

package dto

// ListResponse is the envelope for collection endpoints.
type ListResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    interface{} `json:"data"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

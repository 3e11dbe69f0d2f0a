package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponseDTO struct {
	Success    bool   `json:"success"`
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	DevMessage string `json:"dev_message,omitempty"`
}

package httpmodel

// Health is the GET /health payload of the model server
type Health struct {
	Status       string `json:"status"`
	Ready        bool   `json:"ready"`
	GPUAvailable bool   `json:"gpu_available"`
	Device       string `json:"device"`
}

// LoadRequest is the POST /load body
type LoadRequest struct {
	ModelName    string `json:"model_name"`
	AdapterPath  string `json:"adapter_path,omitempty"`
	Quantization string `json:"quantization,omitempty"`
	MaxLength    int    `json:"max_length"`
}

// LoadResponse is the POST /load reply
type LoadResponse struct {
	Loaded       bool   `json:"loaded"`
	ModelName    string `json:"model_name"`
	Device       string `json:"device"`
	GPUAvailable bool   `json:"gpu_available"`
}

// ScoreRequest is the POST /score body
type ScoreRequest struct {
	Texts     []string `json:"texts"`
	MaxLength int      `json:"max_length"`
	BatchSize int      `json:"batch_size"`
}

// ScoreResponse carries one probability per input text
type ScoreResponse struct {
	Probabilities []float64 `json:"probabilities"`
}

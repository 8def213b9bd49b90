package chat

// DefaultModel is used when a request names no model.
const DefaultModel = "deepseek/deepseek-chat"

// AvailableModels maps short model aliases to the full gateway model names.
var AvailableModels = map[string]string{
	"deepseek": "deepseek/deepseek-chat",
	"llama":    "meta-llama/llama-3.1-70b-instruct",
	"claude":   "anthropic/claude-3.5-sonnet",
	"gemini":   "google/gemini-pro-1.5",
}

type ChatRequest struct {
	Message string `json:"message"`
	Model   string `json:"model,omitempty"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	ModelUsed string `json:"model_used"`
}

package showcase

// ModelKind groups models by the gateway operation that drives them.
type ModelKind string

const (
	ModelKindChat      ModelKind = "chat"
	ModelKindImage     ModelKind = "image"
	ModelKindReasoning ModelKind = "reasoning"
)

// ModelCapabilities describes what features a model supports.
type ModelCapabilities struct {
	SupportsConversation bool
	SupportsStreaming    bool
	SupportsThinking     bool
	SupportsImageOutput  bool

	// Limits
	MaxOutputImages int
}

// ModelInfo contains metadata for a model the gateway uses.
type ModelInfo struct {
	Name         string // Public model name (e.g., "flash")
	APIModelName string // Actual API name (e.g., "gemini-2.5-flash")
	Kind         ModelKind
	Description  string

	Capabilities ModelCapabilities

	// Image constraints, only set for image models
	SupportedAspectRatios []AspectRatio
}

// IsChatModel reports whether m is one of the models a Session may be bound to.
func IsChatModel(m ChatModel) bool {
	switch m {
	case ChatModelStandard, ChatModelLowLatency:
		return true
	default:
		return false
	}
}

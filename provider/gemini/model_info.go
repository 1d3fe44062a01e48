package gemini

import "github.com/mhpenta/showcase"

// FlashInfo is the general-purpose conversational model.
var FlashInfo = showcase.ModelInfo{
	Name:         "flash",
	APIModelName: string(showcase.ChatModelStandard),
	Kind:         showcase.ModelKindChat,
	Description:  "Conversational chat",

	Capabilities: showcase.ModelCapabilities{
		SupportsConversation: true,
		SupportsStreaming:    true,
	},
}

// FlashLiteInfo is the low-latency chat variant used for streaming.
var FlashLiteInfo = showcase.ModelInfo{
	Name:         "flash-lite",
	APIModelName: string(showcase.ChatModelLowLatency),
	Kind:         showcase.ModelKindChat,
	Description:  "Low-latency streaming chat",

	Capabilities: showcase.ModelCapabilities{
		SupportsConversation: true,
		SupportsStreaming:    true,
	},
}

// ImagenInfo is the text-to-image model.
var ImagenInfo = showcase.ModelInfo{
	Name:         "imagen-4",
	APIModelName: showcase.ImageModel,
	Kind:         showcase.ModelKindImage,
	Description:  "Text-to-image generation",

	Capabilities: showcase.ModelCapabilities{
		SupportsImageOutput: true,
		MaxOutputImages:     4,
	},

	SupportedAspectRatios: showcase.AspectRatios,
}

// ProInfo is the reasoning model driven with a fixed thinking budget.
var ProInfo = showcase.ModelInfo{
	Name:         "pro",
	APIModelName: showcase.ThinkingModel,
	Kind:         showcase.ModelKindReasoning,
	Description:  "Extended reasoning (thinking budget 32768 tokens)",

	Capabilities: showcase.ModelCapabilities{
		SupportsThinking: true,
	},
}

package showcase

// ChatModel identifies a conversational model a Session can be bound to.
type ChatModel string

const (
	// ChatModelStandard is the general-purpose conversational model.
	ChatModelStandard ChatModel = "gemini-2.5-flash"

	// ChatModelLowLatency is the low-latency variant used for streaming.
	ChatModelLowLatency ChatModel = "gemini-2.5-flash-lite"
)

const (
	// ImageModel is the model used by GenerateImage.
	ImageModel = "imagen-4.0-generate-001"

	// ThinkingModel is the higher-capability model used by GenerateWithThinking.
	ThinkingModel = "gemini-2.5-pro"

	// ThinkingBudget is the fixed internal-reasoning allowance, in tokens.
	ThinkingBudget int32 = 32768

	// ImageMIMEType is the output encoding requested for generated images.
	ImageMIMEType = "image/png"
)

// AspectRatio represents the aspect ratio for generated images.
type AspectRatio string

const (
	AspectRatio1x1  AspectRatio = "1:1"
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio3x4  AspectRatio = "3:4"
)

// AspectRatios lists the supported ratios in display order.
var AspectRatios = []AspectRatio{
	AspectRatio1x1,
	AspectRatio16x9,
	AspectRatio9x16,
	AspectRatio4x3,
	AspectRatio3x4,
}

// ImageRequest is a single image generation request sent to a Provider.
type ImageRequest struct {
	Model          string
	Prompt         string
	NumberOfImages int
	OutputMIMEType string
	AspectRatio    AspectRatio
}

// TextRequest is a single text completion request sent to a Provider.
type TextRequest struct {
	Model  string
	Prompt string

	// ThinkingBudget caps the provider-side reasoning tokens. Zero leaves
	// the provider default in place.
	ThinkingBudget int32
}

// String returns the model identifier.
func (m ChatModel) String() string {
	return string(m)
}

// String returns the string representation for API calls.
func (a AspectRatio) String() string {
	return string(a)
}

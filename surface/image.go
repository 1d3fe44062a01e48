package surface

import (
	"context"
	"sync"

	"github.com/mhpenta/showcase"
)

// ImageGenerator is the text-to-image surface.
type ImageGenerator struct {
	busyGuard
	status

	gw *showcase.Gateway

	mu    sync.Mutex
	ratio showcase.AspectRatio
	image showcase.ImageData
}

// NewImageGenerator creates the surface with a square aspect ratio selected.
func NewImageGenerator(gw *showcase.Gateway) *ImageGenerator {
	return &ImageGenerator{gw: gw, ratio: showcase.AspectRatio1x1}
}

// AspectRatio returns the selected ratio.
func (g *ImageGenerator) AspectRatio() showcase.AspectRatio {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ratio
}

// SetAspectRatio selects ratio. Values outside showcase.AspectRatios are
// rejected and the previous selection is kept.
func (g *ImageGenerator) SetAspectRatio(ratio showcase.AspectRatio) error {
	if err := showcase.ValidateAspectRatio(ratio); err != nil {
		return err
	}
	g.mu.Lock()
	g.ratio = ratio
	g.mu.Unlock()
	return nil
}

// Generate requests an image for prompt at the selected ratio. A blank
// prompt only sets the status text. The previous image and status are
// cleared before the request starts.
func (g *ImageGenerator) Generate(ctx context.Context, prompt string) (showcase.ImageData, error) {
	if err := showcase.ValidatePrompt(prompt); err != nil {
		g.set(EmptyImagePrompt)
		return showcase.ImageData{}, err
	}
	if !g.acquire() {
		return showcase.ImageData{}, ErrBusy
	}
	defer g.release()

	ratio := g.AspectRatio()

	g.Dismiss()
	g.mu.Lock()
	g.image = showcase.ImageData{}
	g.mu.Unlock()

	img, err := g.gw.GenerateImage(ctx, prompt, ratio)
	if err != nil {
		g.set(showcase.UserMessage(err))
		return showcase.ImageData{}, err
	}

	g.mu.Lock()
	g.image = img
	g.mu.Unlock()
	return img, nil
}

// Image returns the latest generated image, if any.
func (g *ImageGenerator) Image() (showcase.ImageData, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.image, !g.image.IsZero()
}

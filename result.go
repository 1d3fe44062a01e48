package showcase

import "encoding/base64"

// Role is the author of a chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ChatMessage is one entry of a conversation as shown to the user.
type ChatMessage struct {
	Role Role
	Text string
}

// ImageData is an inline generated image.
type ImageData struct {
	// Data contains the raw image bytes
	Data []byte

	// MIMEType of the image
	MIMEType string
}

// DataURI returns the image as a self-contained data URI that can be
// displayed without a second fetch.
func (d ImageData) DataURI() string {
	mime := d.MIMEType
	if mime == "" {
		mime = ImageMIMEType
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(d.Data)
}

// IsZero reports whether d carries no image.
func (d ImageData) IsZero() bool {
	return len(d.Data) == 0
}

// ImageResponse holds the images returned by a Provider.
type ImageResponse struct {
	Images []ImageData
}

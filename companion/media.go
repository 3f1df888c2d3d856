package companion

import (
	"encoding/base64"
	"fmt"

	"github.com/companionlabs/ava-go-sdk/model"
)

// Media is an image or audio attachment as carried by the session layer:
// a MIME type plus base64-encoded payload. The generation request needs
// raw bytes; that boundary conversion happens exactly once per turn, when
// the request parts are built.
type Media struct {
	MIMEType string
	Data     string
}

// toPart decodes the transport encoding and wraps the raw bytes.
func (m *Media) toPart() (model.BlobPart, error) {
	raw, err := base64.StdEncoding.DecodeString(m.Data)
	if err != nil {
		return model.BlobPart{}, fmt.Errorf("decode %s payload: %w", m.MIMEType, err)
	}
	return model.BlobPart{MIMEType: m.MIMEType, Data: raw}, nil
}

// buildParts assembles the ordered multimodal request: text first, then
// image, then audio.
func buildParts(promptText string, image, audio *Media) ([]model.Part, error) {
	parts := []model.Part{model.TextPart{Text: promptText}}

	if image != nil {
		p, err := image.toPart()
		if err != nil {
			return nil, fmt.Errorf("image: %w", err)
		}
		parts = append(parts, p)
	}
	if audio != nil {
		p, err := audio.toPart()
		if err != nil {
			return nil, fmt.Errorf("audio: %w", err)
		}
		parts = append(parts, p)
	}
	return parts, nil
}

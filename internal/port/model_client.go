package port

import "context"

// GenerateInput carries one document plus an extraction prompt for a model call.
type GenerateInput struct {
	MimeType string
	Data     []byte
	Prompt   string
}

// ModelClient abstracts a generative model call. The returned text is raw
// model output and may or may not contain valid JSON; callers are expected
// to run it through the response parser.
type ModelClient interface {
	GenerateContent(ctx context.Context, input GenerateInput) (string, error)
}

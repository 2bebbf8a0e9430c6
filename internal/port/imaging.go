package port

// ImageRecompressor shrinks and re-encodes images before model submission.
type ImageRecompressor interface {
	// Recompress returns the re-encoded bytes and their MIME type.
	Recompress(data []byte, mimeType string) ([]byte, string, error)
}

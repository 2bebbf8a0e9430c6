package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"invotab/internal/config"
	"invotab/internal/domain"
	"invotab/internal/model"
	"invotab/internal/port"
	"invotab/internal/reconcile"
)

// ExtractInput is the DTO for extraction requests.
type ExtractInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// ExtractionService defines the document extraction contract.
type ExtractionService interface {
	Extract(ctx context.Context, input ExtractInput) (domain.ExtractedData, error)
}

type extractionService struct {
	model    port.ModelClient
	sheets   port.SpreadsheetProcessor
	images   port.ImageRecompressor
	pipeline *reconcile.Pipeline
	cfg      *config.UploadConfig
}

// NewExtractionService creates a new ExtractionService implementation.
func NewExtractionService(
	modelClient port.ModelClient,
	sheets port.SpreadsheetProcessor,
	images port.ImageRecompressor,
	pipeline *reconcile.Pipeline,
	cfg *config.UploadConfig,
) ExtractionService {
	return &extractionService{
		model:    modelClient,
		sheets:   sheets,
		images:   images,
		pipeline: pipeline,
		cfg:      cfg,
	}
}

func (s *extractionService) Extract(ctx context.Context, input ExtractInput) (domain.ExtractedData, error) {
	var empty domain.ExtractedData

	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return empty, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return empty, domain.ErrFileTooLarge
	}

	data, err := io.ReadAll(input.File)
	if err != nil {
		return empty, fmt.Errorf("reading upload: %w", err)
	}

	fileType, err = resolveFileType(fileType, data)
	if err != nil {
		return empty, err
	}

	log.Printf("extractionService.Extract: processing %s (%s, %d bytes)",
		input.Header.Filename, fileType, len(data))

	if fileType.IsSpreadsheet() {
		return s.extractSpreadsheet(data)
	}
	return s.extractDocument(ctx, data, domain.AllowedFileTypes[fileType], fileType)
}

// resolveFileType cross-checks the extension-derived type against the magic
// bytes. Sniffing wins when it identifies a supported type. Spreadsheets and
// HEIC/HEIF are container formats http.DetectContentType cannot identify, so
// the extension stands for those.
func resolveFileType(extType domain.FileType, data []byte) (domain.FileType, error) {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	detected := http.DetectContentType(head)

	if sniffed, ok := domain.AllowedContentTypes[detected]; ok {
		return sniffed, nil
	}
	if extType.IsSpreadsheet() || extType == domain.FileTypeHEIC || extType == domain.FileTypeHEIF {
		return extType, nil
	}
	return "", domain.ErrUnsupportedFileType
}

func (s *extractionService) extractSpreadsheet(data []byte) (domain.ExtractedData, error) {
	raw, err := s.sheets.Process(data)
	if err != nil {
		log.Printf("extractionService.extractSpreadsheet: %v", err)
		return domain.ExtractedData{}, errors.Join(domain.ErrSpreadsheetFailed, err)
	}
	return s.pipeline.Process(raw), nil
}

type modelResult struct {
	text string
	err  error
}

// extractDocument sends the document to the model twice concurrently, once
// with the product-focused prompt and once with the customer and invoice
// metadata prompt, then reconciles both responses.
func (s *extractionService) extractDocument(ctx context.Context, data []byte, mimeType string, fileType domain.FileType) (domain.ExtractedData, error) {
	var empty domain.ExtractedData

	if fileType.IsImage() {
		maxImageBytes := s.cfg.MaxImageSizeMB * 1024 * 1024
		if int64(len(data)) > maxImageBytes {
			return empty, domain.ErrFileTooLarge
		}
		// Recompression failure is not fatal; the original bytes still work.
		if compressed, compressedType, err := s.images.Recompress(data, mimeType); err != nil {
			log.Printf("extractionService.extractDocument: recompression failed, sending original: %v", err)
		} else {
			data, mimeType = compressed, compressedType
		}
	}

	productsCh := make(chan modelResult, 1)
	metadataCh := make(chan modelResult, 1)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		text, err := s.model.GenerateContent(ctx, port.GenerateInput{
			MimeType: mimeType,
			Data:     data,
			Prompt:   model.BuildProductsPrompt(),
		})
		productsCh <- modelResult{text: text, err: err}
	}()
	go func() {
		defer wg.Done()
		text, err := s.model.GenerateContent(ctx, port.GenerateInput{
			MimeType: mimeType,
			Data:     data,
			Prompt:   model.BuildMetadataPrompt(),
		})
		metadataCh <- modelResult{text: text, err: err}
	}()
	wg.Wait()

	products := <-productsCh
	metadata := <-metadataCh

	if products.err != nil {
		log.Printf("extractionService.extractDocument: products call failed: %v", products.err)
		return empty, errors.Join(domain.ErrExtractionFailed, products.err)
	}
	if metadata.err != nil {
		log.Printf("extractionService.extractDocument: metadata call failed: %v", metadata.err)
		return empty, errors.Join(domain.ErrExtractionFailed, metadata.err)
	}

	return s.pipeline.ProcessResponses(products.text, metadata.text), nil
}

package domain

// FileType represents the kinds of documents accepted for extraction.
type FileType string

const (
	FileTypeXLSX FileType = "xlsx"
	FileTypeXLS  FileType = "xls"
	FileTypePDF  FileType = "pdf"
	FileTypeJPG  FileType = "jpg"
	FileTypePNG  FileType = "png"
	FileTypeWEBP FileType = "webp"
	FileTypeHEIC FileType = "heic"
	FileTypeHEIF FileType = "heif"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypeXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FileTypeXLS:  "application/vnd.ms-excel",
	FileTypePDF:  "application/pdf",
	FileTypeJPG:  "image/jpeg",
	FileTypePNG:  "image/png",
	FileTypeWEBP: "image/webp",
	FileTypeHEIC: "image/heic",
	FileTypeHEIF: "image/heif",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": FileTypeXLSX,
	"application/vnd.ms-excel": FileTypeXLS,
	"application/pdf":          FileTypePDF,
	"image/jpeg":               FileTypeJPG,
	"image/png":                FileTypePNG,
	"image/webp":               FileTypeWEBP,
	"image/heic":               FileTypeHEIC,
	"image/heif":               FileTypeHEIF,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"xlsx": FileTypeXLSX,
	"xls":  FileTypeXLS,
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
	"webp": FileTypeWEBP,
	"heic": FileTypeHEIC,
	"heif": FileTypeHEIF,
}

// IsSpreadsheet reports whether the file type takes the spreadsheet path.
func (t FileType) IsSpreadsheet() bool {
	return t == FileTypeXLSX || t == FileTypeXLS
}

// IsImage reports whether the file type takes the image recompression path.
func (t FileType) IsImage() bool {
	switch t {
	case FileTypeJPG, FileTypePNG, FileTypeWEBP, FileTypeHEIC, FileTypeHEIF:
		return true
	}
	return false
}

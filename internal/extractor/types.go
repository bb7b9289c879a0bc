package extractor

import "errors"

var (
	// ErrNotFound means the input path does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrUnsupportedFormat means the file extension is not .pdf or .docx.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrExtraction means every parsing strategy for the format failed.
	ErrExtraction = errors.New("text extraction failed")
)

// Metadata holds document properties read during extraction.
// Title and Author default to "Unknown" when the document carries none.
type Metadata struct {
	Title     string
	Author    string
	Subject   string
	PageCount int
	FileSize  int64
}

// Document is the result of extracting text from a file.
type Document struct {
	Path      string
	Text      string
	Metadata  Metadata
	WordCount int
	CharCount int
}

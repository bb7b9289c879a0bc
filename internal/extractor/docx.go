package extractor

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// extractDocx reads paragraph text from word/document.xml and document
// properties from docProps/core.xml inside the ZIP archive.
func (e *implExtractor) extractDocx(ctx context.Context, path string) (string, Metadata, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", Metadata{}, fmt.Errorf("%w: open docx archive: %v", ErrExtraction, err)
	}
	defer r.Close()

	var docFile, coreFile *zip.File
	for _, f := range r.File {
		switch f.Name {
		case "word/document.xml":
			docFile = f
		case "docProps/core.xml":
			coreFile = f
		}
	}
	if docFile == nil {
		return "", Metadata{}, fmt.Errorf("%w: word/document.xml not found in archive", ErrExtraction)
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", Metadata{}, fmt.Errorf("%w: open document.xml: %v", ErrExtraction, err)
	}
	defer rc.Close()

	text, sectionCount, err := docxParagraphs(rc)
	if err != nil {
		return "", Metadata{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	meta := Metadata{
		Title:     "Unknown",
		Author:    "Unknown",
		PageCount: sectionCount,
	}
	if coreFile != nil {
		if props, propsErr := docxCoreProperties(coreFile); propsErr == nil {
			if props.Title != "" {
				meta.Title = props.Title
			}
			if props.Creator != "" {
				meta.Author = props.Creator
			}
			meta.Subject = props.Subject
		} else {
			e.logger.Warn(ctx, "Failed to read docx properties from %s: %v", path, propsErr)
		}
	}

	return text, meta, nil
}

// docxParagraphs walks the document XML and joins paragraph text with
// newlines. Section breaks are counted as a page-count stand-in, matching
// how word processors report section-based length for .docx.
func docxParagraphs(rc io.Reader) (string, int, error) {
	decoder := xml.NewDecoder(rc)

	var paragraphs []string
	var current strings.Builder
	inParagraph := false
	sectionCount := 0

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", 0, fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "sectPr":
				sectionCount++
			}

		case xml.CharData:
			if inParagraph {
				current.Write(t)
			}

		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				paragraphs = append(paragraphs, current.String())
			}
		}
	}

	if sectionCount == 0 {
		sectionCount = 1
	}

	return strings.Join(paragraphs, "\n"), sectionCount, nil
}

type docxProps struct {
	Title   string `xml:"title"`
	Creator string `xml:"creator"`
	Subject string `xml:"subject"`
}

func docxCoreProperties(coreFile *zip.File) (*docxProps, error) {
	rc, err := coreFile.Open()
	if err != nil {
		return nil, fmt.Errorf("open core.xml: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read core.xml: %w", err)
	}

	var props docxProps
	if err := xml.Unmarshal(data, &props); err != nil {
		return nil, fmt.Errorf("parse core.xml: %w", err)
	}

	props.Title = strings.TrimSpace(props.Title)
	props.Creator = strings.TrimSpace(props.Creator)
	props.Subject = strings.TrimSpace(props.Subject)
	return &props, nil
}

package extractor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractPDF tries the page-aware reader first. When it fails or yields no
// text, the raw content streams are scanned instead. Both failing is an
// ErrExtraction carrying the underlying causes.
func (e *implExtractor) extractPDF(ctx context.Context, path string) (string, Metadata, error) {
	text, meta, primaryErr := readPDFPages(path)
	if primaryErr == nil && strings.TrimSpace(text) != "" {
		return text, meta, nil
	}

	if primaryErr != nil {
		e.logger.Warn(ctx, "Primary PDF parser failed for %s: %v", path, primaryErr)
		meta = Metadata{Title: "Unknown", Author: "Unknown"}
	} else {
		e.logger.Debug(ctx, "Primary PDF parser found no text in %s, trying content stream scan", path)
	}

	fallbackText, pageCount, fallbackErr := scanPDFContent(path)
	if fallbackErr != nil {
		if primaryErr != nil {
			return "", Metadata{}, fmt.Errorf("%w: %v (fallback: %v)", ErrExtraction, primaryErr, fallbackErr)
		}
		return "", Metadata{}, fmt.Errorf("%w: %v", ErrExtraction, fallbackErr)
	}

	if meta.PageCount == 0 {
		meta.PageCount = pageCount
	}
	return fallbackText, meta, nil
}

// readPDFPages extracts text page by page and document metadata from the
// trailer Info dictionary. The reader panics on some malformed files, so
// panics are converted to errors to let the fallback run.
func readPDFPages(path string) (text string, meta Metadata, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", Metadata{}, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	meta = pdfMetadata(r)

	var sb strings.Builder
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			continue
		}

		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return sb.String(), meta, nil
}

func pdfMetadata(r *pdf.Reader) Metadata {
	meta := Metadata{
		Title:     "Unknown",
		Author:    "Unknown",
		PageCount: r.NumPage(),
	}

	info := r.Trailer().Key("Info")
	if info.IsNull() {
		return meta
	}

	if v := pdfInfoString(info, "Title"); v != "" {
		meta.Title = v
	}
	if v := pdfInfoString(info, "Author"); v != "" {
		meta.Author = v
	}
	meta.Subject = pdfInfoString(info, "Subject")

	return meta
}

func pdfInfoString(info pdf.Value, key string) string {
	v := info.Key(key)
	if v.Kind() != pdf.String {
		return ""
	}
	return strings.TrimSpace(v.Text())
}

// scanPDFContent reads every page content stream sequentially and collects
// the string literals shown by text operators.
func scanPDFContent(path string) (string, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	pctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return "", 0, fmt.Errorf("pdfcpu read: %w", err)
	}

	var sb strings.Builder
	for pageNr := 1; pageNr <= pctx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(pctx, pageNr)
		if err != nil || r == nil {
			continue
		}

		data, err := io.ReadAll(r)
		if err != nil || len(data) == 0 {
			continue
		}

		pageText := textFromContentStream(data)
		if pageText == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(pageText)
	}

	return sb.String(), pctx.PageCount, nil
}

// pdfLiteralRe matches PDF string literals: (text), with escaped parens.
var pdfLiteralRe = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)`)

// textFromContentStream pulls the literals of Tj, TJ and ' operators out of a
// decoded content stream. Positioning operators act as separators.
func textFromContentStream(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")),
			bytes.HasSuffix(line, []byte("TJ")),
			bytes.HasSuffix(line, []byte("'")):
			for _, m := range pdfLiteralRe.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("Td")),
			bytes.HasSuffix(line, []byte("TD")),
			bytes.Equal(line, []byte("T*")):
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}

// decodePDFString resolves the escape sequences of a PDF string literal.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}

		i++
		switch c := raw[i]; {
		case c == 'n':
			sb.WriteByte('\n')
		case c == 'r':
			sb.WriteByte('\r')
		case c == 't':
			sb.WriteByte('\t')
		case c == '\\' || c == '(' || c == ')':
			sb.WriteByte(c)
		case c >= '0' && c <= '7':
			// Octal escape, up to three digits.
			val := int(c - '0')
			for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
				i++
				val = val*8 + int(raw[i]-'0')
			}
			sb.WriteByte(byte(val))
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

package processor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/doc-flow/internal/config"
	"github.com/nguyentantai21042004/doc-flow/internal/summarizer"
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// writeSummaryDocx renders the summary as a styled docx document. Model
// output may contain light markdown, which is mapped to document styling.
func writeSummaryDocx(title string, result *summarizer.Result, style config.OutputConfig, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, style, style.FontSize+3)
	doc.AddParagraph("")

	for _, line := range strings.Split(result.Summary, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			p := doc.AddParagraph("")
			addStyledRun(p, m[2], true, style, headingSize(len(m[1]), style.FontSize))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			p := doc.AddParagraph("")
			addRichText(p, "• "+m[1], style)
			continue
		}

		p := doc.AddParagraph("")
		addRichText(p, trimmed, style)
	}

	doc.AddParagraph("")
	stats := fmt.Sprintf("%s summary: %d of %d words (ratio %.2f)",
		result.Method, result.SummaryWordCount, result.OriginalWordCount, result.CompressionRatio)
	addStyledRun(doc.AddParagraph(""), stats, false, style, style.FontSize-2)

	return doc.SaveTo(outputPath)
}

func headingSize(level int, base uint64) uint64 {
	switch level {
	case 1:
		return base + 3
	case 2:
		return base + 2
	case 3:
		return base + 1
	default:
		return base
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, style config.OutputConfig, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(style.FontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string, style config.OutputConfig) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			clean := cleanMarkdownInline(part)
			p.AddText(clean).Font(style.FontName).Size(style.FontSize).Color("000000")
		}
		if i < len(matches) {
			clean := cleanMarkdownInline(matches[i][1])
			p.AddText(clean).Font(style.FontName).Size(style.FontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}

package summarizer

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// writeSummaryDocx renders the summary as a styled docx report: title,
// key points, detailed summary, then the full transcript.
func writeSummaryDocx(title, transcript string, summary EducationalSummary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addHeading(doc, title, 16)

	addHeading(doc, "Key Points", 15)
	for _, line := range splitParagraphs(summary.KeyPoints) {
		addBody(doc, line)
	}

	addHeading(doc, "Detailed Summary", 15)
	for _, line := range splitParagraphs(summary.DetailedSummary) {
		addBody(doc, line)
	}

	addHeading(doc, "Full Transcript", 15)
	addBody(doc, transcript)

	return doc.SaveTo(outputPath)
}

func splitParagraphs(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func addHeading(doc *docx.RootDoc, text string, size uint64) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(size).Color("000000").Bold(true)
}

func addBody(doc *docx.RootDoc, text string) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000")
}

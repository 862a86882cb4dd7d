// Copyright Meridiano Data SL, 2026. All rights reserved.

package convert

import (
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/gen2brain/go-fitz"
)

// embeddedImagePattern matches base64 images inlined by the HTML renderer,
// e.g. ![](data:image/png;base64,...). They bloat the output and carry no
// text content.
var embeddedImagePattern = regexp.MustCompile(`!\[\]\(data:image/[^)]+\)`)

// FitzConverter converts PDFs in-process: MuPDF renders each page to HTML
// and html-to-markdown turns that into Markdown. No external tooling needed,
// at the cost of PDF-only input.
type FitzConverter struct{}

// Convert renders every page of the PDF at path and concatenates the
// per-page Markdown with blank lines between pages.
func (FitzConverter) Convert(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer doc.Close()

	converter := md.NewConverter("", true, nil)

	var b strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		html, err := doc.HTML(i, true)
		if err != nil {
			return "", fmt.Errorf("rendering page %d of %s: %w", i+1, path, err)
		}

		text, err := converter.ConvertString(html)
		if err != nil {
			return "", fmt.Errorf("converting page %d of %s: %w", i+1, path, err)
		}

		b.WriteString(embeddedImagePattern.ReplaceAllString(text, ""))
		b.WriteString("\n\n")
	}

	return b.String(), nil
}

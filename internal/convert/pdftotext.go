// Copyright Meridiano Data SL, 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os/exec"
)

const binPdftotext = "pdftotext"

// PdftotextConverter converts PDFs with the poppler pdftotext binary. The
// output is plain text rather than structured Markdown, which is enough for
// documents whose tables the adjustment pipeline rebuilds anyway.
type PdftotextConverter struct {
	bin string
}

// NewPdftotextConverter verifies that pdftotext is on PATH.
func NewPdftotextConverter() (*PdftotextConverter, error) {
	bin, err := exec.LookPath(binPdftotext)
	if err != nil {
		return nil, fmt.Errorf("pdftotext not found on PATH: %w", err)
	}
	return &PdftotextConverter{bin: bin}, nil
}

// Convert runs pdftotext in layout mode and returns its stdout.
func (p *PdftotextConverter) Convert(path string) (string, error) {
	var out, errOut bytes.Buffer
	cmd := exec.Command(p.bin, "-layout", path, "-")
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("converting %s with pdftotext: %w (%s)", path, err, bytes.TrimSpace(errOut.Bytes()))
	}
	return out.String(), nil
}

// Copyright Meridiano Data SL, 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os"

	"github.com/meridianodata/docs2md/internal/container"
)

const imageMarkitdown = "markitdown:latest"

// MarkitdownConverter converts documents by piping them through the
// markitdown container image. The container engine (docker or podman) is
// injected at construction time.
type MarkitdownConverter struct {
	engine container.Engine
}

// NewMarkitdownConverter creates a converter bound to the given engine. It
// verifies that the markitdown image exists locally before returning.
func NewMarkitdownConverter(engine container.Engine) (*MarkitdownConverter, error) {
	if err := engine.CheckImage(imageMarkitdown); err != nil {
		return nil, fmt.Errorf("markitdown image not available in %s: %w", engine.Name(), err)
	}
	return &MarkitdownConverter{engine: engine}, nil
}

// Convert streams the document at path through the markitdown container and
// returns the resulting Markdown text.
func (m *MarkitdownConverter) Convert(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := m.engine.Pipe(imageMarkitdown, f, &out); err != nil {
		return "", fmt.Errorf("converting %s with markitdown: %w", path, err)
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("markitdown produced empty output for %s", path)
	}

	return out.String(), nil
}

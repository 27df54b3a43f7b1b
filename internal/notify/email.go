package notify

import (
	"bytes"
	"context"
	"fmt"

	"github.com/a-h/templ"
)

func airlineName(code string) string {
	if code == "" {
		return "Unknown"
	}
	return code
}

func render(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("rendering email: %w", err)
	}
	return buf.String(), nil
}

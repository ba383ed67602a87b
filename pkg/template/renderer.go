package template

import "io"

// Renderer renders template content against per-record data. The returned
// string is the rendered output; any writers passed in out receive the same
// bytes, which lets the render loop stream records without re-buffering.
type Renderer interface {
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}

package svg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/okian/alpe/internal/domain/chart"
)

// DefaultAssetBase is where style.css and tooltip.js are served.
const DefaultAssetBase = "/static/"

// Page is the HTML document around the chart.
type Page struct {
	Title string
	// Scene is nil when no chart could be drawn; the container stays empty.
	Scene    *chart.Scene
	Tooltips []chart.Content

	AssetBase string
	// InlineCSS and InlineJS replace the linked assets, for self-contained
	// exports.
	InlineCSS string
	InlineJS  string
}

// PageComponent renders p as a full HTML document.
func PageComponent(p Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tooltips, err := json.Marshal(p.Tooltips)
		if err != nil {
			return fmt.Errorf("encode tooltips: %w", err)
		}
		if p.Tooltips == nil {
			tooltips = []byte("[]")
		}
		base := p.AssetBase
		if base == "" {
			base = DefaultAssetBase
		}

		sw := &stickyWriter{w: w}
		sw.printf(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title>`,
			attr(p.Title))
		if p.InlineCSS != "" {
			sw.printf(`<style>%s</style>`, p.InlineCSS)
		} else {
			sw.printf(`<link rel="stylesheet" href="%sstyle.css">`, attr(base))
		}
		sw.printf(`</head><body><div class="container">`)
		if sw.err != nil {
			return sw.err
		}
		if p.Scene != nil {
			if err := Chart(*p.Scene).Render(ctx, w); err != nil {
				return err
			}
			sw.printf(`<div id="tooltip" style="opacity: 0"></div>`)
		}
		sw.printf(`</div><script type="application/json" id="tooltip-data">%s</script>`, tooltips)
		if p.InlineJS != "" {
			sw.printf(`<script>%s</script>`, p.InlineJS)
		} else {
			sw.printf(`<script src="%stooltip.js"></script>`, attr(base))
		}
		sw.printf(`</body></html>`)
		return sw.err
	})
}

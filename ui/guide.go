package ui

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// usageGuide is the markdown shown on the index page before any upload
const usageGuide = `### How to use

1. **Upload a results file**: the pipeline's standard output
   (` + "`tax-results*.csv`" + `), comma or tab separated, or an .xlsx workbook.
2. **Pick a chart type**: stacked composition, heatmap, or diversity
   indices.
3. **Adjust the display**: relative abundance vs read counts, top-N
   species, color scheme, log scale.

### Supported input

- Header row with one species column and one column per sample
- Sample columns named after ` + "`.fastq`" + ` read files, or plain numeric columns
- UTF-8 and Shift-JIS encodings

### Charts

- **Composition**: per-sample species make-up as stacked bars
- **Heatmap**: the sample × species matrix
- **Diversity**: species richness, Shannon index, Simpson index
`

// renderGuide converts the usage guide to safe HTML once per render
func renderGuide() template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return template.HTML(markdown.ToHTML([]byte(usageGuide), p, renderer))
}

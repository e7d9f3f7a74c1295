// Package render draws point layouts as SVG documents.
package render

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/born-ml/fwdiff/internal/layout"
	"github.com/born-ml/fwdiff/internal/linalg"
)

// Options controls the drawing.
type Options struct {
	Width  float64 // View box width (default: 5)
	Height float64 // View box height (default: 5)
	Radius float64 // Point radius (default: 0.1)
	Title  string  // Optional document title
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = 5
	}
	if o.Height == 0 {
		o.Height = 5
	}
	if o.Radius == 0 {
		o.Radius = 0.1
	}
	return o
}

const labelStyle = "font: normal 0.1px sans-serif; text-anchor: middle; dominant-baseline: central;"

// SVG writes points and their connections to w. The origin is drawn at the
// centre of the view box with both axes.
func SVG(w io.Writer, points []linalg.Vector[linalg.Float], conns []layout.Connection, opts Options) error {
	for _, c := range conns {
		if c.From < 0 || c.From >= len(points) || c.To < 0 || c.To >= len(points) {
			return fmt.Errorf("render: %w: %v for %d points", layout.ErrBadConnection, c, len(points))
		}
	}

	opts = opts.withDefaults()
	cx, cy := opts.Width*0.5, opts.Height*0.5

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s">`+"\n", num(opts.Width), num(opts.Height))
	if opts.Title != "" {
		bw.WriteString("<title>")
		if err := xml.EscapeText(bw, []byte(opts.Title)); err != nil {
			return err
		}
		bw.WriteString("</title>\n")
	}

	line(bw, 0, cy, opts.Width, cy, "black")
	line(bw, cx, 0, cx, opts.Height, "black")

	for _, c := range conns {
		p1, p2 := points[c.From], points[c.To]
		line(bw, x(p1)+cx, y(p1)+cy, x(p2)+cx, y(p2)+cy, "gray")
	}

	for i, p := range points {
		px, py := num(x(p)+cx), num(y(p)+cy)
		fmt.Fprintf(bw, `<circle cx="%s" cy="%s" r="%s" fill="white" stroke="black" stroke-width="0.01"/>`+"\n",
			px, py, num(opts.Radius))
		fmt.Fprintf(bw, `<text x="%s" y="%s" style="%s">%d</text>`+"\n", px, py, labelStyle, i)
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func line(w io.Writer, x1, y1, x2, y2 float64, stroke string) {
	fmt.Fprintf(w, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke-width="0.01" stroke="%s"/>`+"\n",
		num(x1), num(y1), num(x2), num(y2), stroke)
}

func x(p linalg.Vector[linalg.Float]) float64 { return float64(p.At(0)) }

func y(p linalg.Vector[linalg.Float]) float64 { return float64(p.At(1)) }

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	svg "github.com/ajstarks/svgo"

	"github.com/hackjudge/gavel/pkg/schedule"
)

const clockFormat = "03:04 PM"

// Gantt layout in pixels. The horizontal scale is minutes since the chart
// origin.
const (
	rowHeight   = 44
	barHeight   = 28
	leftMargin  = 110
	topMargin   = 48
	bottomAxis  = 40
	pxPerMinute = 5
)

// palette holds the fill colors cycled across chart rows.
var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// gantt describes one horizontal timeline chart.
type gantt struct {
	title  string
	origin time.Time
	rows   []ganttRow
}

// ganttRow is one labeled timeline lane.
type ganttRow struct {
	label    string
	sessions []schedule.Session
}

func writeGantt(path string, g gantt) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	g.render(f)
	return nil
}

func (g gantt) render(w io.Writer) {
	total := g.totalMinutes()
	width := leftMargin + total*pxPerMinute + 60
	height := topMargin + len(g.rows)*rowHeight + bottomAxis

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")
	canvas.Text(width/2, 28, g.title, "text-anchor:middle;font-size:18px;font-weight:bold")

	// Time axis with a gridline every half hour.
	axisY := topMargin + len(g.rows)*rowHeight
	for m := 0; m <= total; m += 30 {
		x := leftMargin + m*pxPerMinute
		canvas.Line(x, topMargin, x, axisY, "stroke:#dddddd;stroke-width:1")
		canvas.Text(x, axisY+16, g.origin.Add(time.Duration(m)*time.Minute).Format(clockFormat),
			"text-anchor:middle;font-size:10px;fill:#444444")
	}

	for i, row := range g.rows {
		y := topMargin + i*rowHeight
		canvas.Text(leftMargin-10, y+barHeight/2+4, row.label, "text-anchor:end;font-size:12px")

		fill := palette[i%len(palette)]
		for _, s := range row.sessions {
			x := leftMargin + g.minutes(s.Start)*pxPerMinute
			bw := int(s.End.Sub(s.Start)/time.Minute) * pxPerMinute
			if bw < 1 {
				bw = 1
			}
			canvas.Rect(x, y, bw, barHeight,
				fmt.Sprintf("fill:%s;fill-opacity:0.8;stroke:black;stroke-width:0.5", fill))
			canvas.Text(x+bw/2, y+barHeight/2+4, s.TeamName, "text-anchor:middle;font-size:10px")
		}
	}

	canvas.End()
}

// totalMinutes is the chart span from origin to the latest session end, with
// a floor so near-empty schedules still get a readable axis.
func (g gantt) totalMinutes() int {
	total := 60
	for _, row := range g.rows {
		for _, s := range row.sessions {
			if m := g.minutes(s.End); m > total {
				total = m
			}
		}
	}
	return total
}

func (g gantt) minutes(t time.Time) int {
	return int(t.Sub(g.origin) / time.Minute)
}

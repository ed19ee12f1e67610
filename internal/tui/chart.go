package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/akyairhashvil/sleeplog/internal/config"
	"github.com/akyairhashvil/sleeplog/internal/models"
)

const (
	chartPoint = '●'
	chartLine  = '·'
)

// ChartPoint is one plotted (date, hours) pair.
type ChartPoint struct {
	Date  time.Time
	Hours float64
}

// ChartPoints projects entries into ascending date order. Entries that share
// a date keep their collection order. entries is not modified.
func ChartPoints(entries []models.SleepEntry) []ChartPoint {
	points := make([]ChartPoint, len(entries))
	for i, e := range entries {
		points[i] = ChartPoint{Date: e.Date, Hours: e.Hours}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// renderChart draws points as a connected line. The y axis runs from 0 to
// the highest value rounded up to an integer. When there are more points
// than columns only the most recent ones are drawn.
func renderChart(points []ChartPoint, width, height int, theme Theme) string {
	if height < 2 {
		height = 2
	}
	plotWidth := width - config.ChartAxisWidth - 1
	if plotWidth < 1 {
		plotWidth = 1
	}
	if len(points) > plotWidth {
		points = points[len(points)-plotWidth:]
	}

	yMax := 1
	for _, p := range points {
		if c := int(math.Ceil(p.Hours)); c > yMax {
			yMax = c
		}
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", plotWidth))
	}

	cols := make([]int, len(points))
	rows := make([]int, len(points))
	for i, p := range points {
		cols[i] = chartColumn(i, len(points), plotWidth)
		rows[i] = chartRow(p.Hours, yMax, height)
	}
	for i := 1; i < len(points); i++ {
		x0, x1 := cols[i-1], cols[i]
		y0, y1 := rows[i-1], rows[i]
		for x := x0 + 1; x < x1; x++ {
			t := float64(x-x0) / float64(x1-x0)
			y := int(math.Round(float64(y0) + t*float64(y1-y0)))
			grid[y][x] = chartLine
		}
	}
	for i := range points {
		grid[rows[i]][cols[i]] = chartPoint
	}

	labels := axisLabels(yMax, height)
	var b strings.Builder
	for r, row := range grid {
		axis := strings.Repeat(" ", config.ChartAxisWidth-1) + "│"
		if label, ok := labels[r]; ok {
			axis = fmt.Sprintf("%*d┤", config.ChartAxisWidth-1, label)
		}
		b.WriteString(theme.Axis.Render(axis))
		b.WriteString(styleChartRow(row, theme))
		b.WriteString("\n")
	}
	b.WriteString(theme.Axis.Render(strings.Repeat(" ", config.ChartAxisWidth-1) + "└" + strings.Repeat("─", plotWidth)))
	b.WriteString("\n")

	indent := strings.Repeat(" ", config.ChartAxisWidth)
	switch len(points) {
	case 0:
		b.WriteString(indent + theme.Dim.Render("Nothing to plot yet."))
	case 1:
		b.WriteString(indent + theme.Dim.Render(formatAxisDate(points[0].Date)))
	default:
		first := formatAxisDate(points[0].Date)
		last := formatAxisDate(points[len(points)-1].Date)
		b.WriteString(indent + theme.Dim.Render(padBetween(first, last, plotWidth)))
	}
	return b.String()
}

func chartColumn(i, n, plotWidth int) int {
	if n <= 1 {
		return 0
	}
	return i * (plotWidth - 1) / (n - 1)
}

func chartRow(hours float64, yMax, height int) int {
	ratio := hours / float64(yMax)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round((1 - ratio) * float64(height-1)))
}

// axisLabels places integer ticks on the top, middle and bottom rows.
func axisLabels(yMax, height int) map[int]int {
	labels := map[int]int{0: yMax, height - 1: 0}
	mid := (height - 1) / 2
	if mid > 0 && mid < height-1 {
		value := float64(yMax) * float64(height-1-mid) / float64(height-1)
		labels[mid] = int(math.Round(value))
	}
	return labels
}

func styleChartRow(row []rune, theme Theme) string {
	var b strings.Builder
	for _, r := range row {
		switch r {
		case chartPoint:
			b.WriteString(theme.Point.Render(string(r)))
		case chartLine:
			b.WriteString(theme.Line.Render(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (m TrackerModel) renderChartPane(width int) string {
	points := ChartPoints(m.repo.Entries())
	body := m.theme.Title.Render("Sleep Trend") + "\n\n" +
		renderChart(points, width-4, config.ChartHeight, m.theme)
	return m.theme.box(width, false).Render(body)
}

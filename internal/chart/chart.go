// Package chart renders a 24h price series as a PNG line chart.
package chart

import (
	"errors"

	"github.com/vicanso/go-charts/v2"

	"github.com/Tima2028/crypto-bot1/internal/coingecko"
)

// Theme names registered with go-charts; identical dark themes except
// for the line color, which encodes trend direction.
const (
	themeUp   = "crypto-up"
	themeDown = "crypto-down"
)

var (
	colorUp   = charts.Color{R: 0x26, G: 0xa6, B: 0x9a, A: 0xff}
	colorDown = charts.Color{R: 0xef, G: 0x53, B: 0x50, A: 0xff}
)

func init() {
	for name, line := range map[string]charts.Color{themeUp: colorUp, themeDown: colorDown} {
		charts.AddTheme(name, charts.ThemeOption{
			IsDarkMode:         true,
			BackgroundColor:    charts.Color{R: 0x14, G: 0x16, B: 0x1e, A: 0xff},
			TextColor:          charts.Color{R: 0xdc, G: 0xdc, B: 0xdc, A: 0xff},
			AxisStrokeColor:    charts.Color{R: 0x6e, G: 0x6e, B: 0x6e, A: 0xff},
			AxisSplitLineColor: charts.Color{R: 0x44, G: 0x44, B: 0x44, A: 0xff},
			SeriesColors:       []charts.Color{line},
		})
	}
}

// trendTheme picks the theme by comparing the first and last price.
// A flat series counts as upward.
func trendTheme(series coingecko.PriceSeries) string {
	if series.Last() >= series.First() {
		return themeUp
	}
	return themeDown
}

// Render draws the series as a single dark-themed line chart and
// returns the PNG bytes. A series with fewer than two points produces
// no chart, since no line can be drawn.
func Render(name string, series coingecko.PriceSeries) ([]byte, error) {
	if len(series) == 0 {
		return nil, errors.New("no data")
	}
	if len(series) < 2 {
		return nil, errors.New("not enough data points")
	}

	labels := make([]string, len(series))
	values := make([]float64, len(series))
	var yMin, yMax float64
	for i, p := range series {
		labels[i] = p.Timestamp.UTC().Format("15:04")
		values[i] = p.Price
		if i == 0 {
			yMin, yMax = p.Price, p.Price
			continue
		}
		if p.Price < yMin {
			yMin = p.Price
		}
		if p.Price > yMax {
			yMax = p.Price
		}
	}
	pad := (yMax - yMin) * 0.05
	if pad < yMax*0.002 {
		pad = yMax * 0.002
	}
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad

	painter, err := charts.LineRender([][]float64{values},
		charts.TitleTextOptionFunc(name+" Price (Last 24h)"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 8}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(trendTheme(series)),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

package dashboard

import (
	finance "github.com/MarcovChain/FlaskFinance"
	"github.com/MarcovChain/FlaskFinance/date"
	"github.com/MarcovChain/FlaskFinance/quote"
	"github.com/MarcovChain/FlaskFinance/renderer"
)

// Figure is a plotly.js figure, drawn in the browser.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one plotly.js series.
type Trace struct {
	Type   string     `json:"type"`
	Mode   string     `json:"mode"`
	Name   string     `json:"name"`
	X      []string   `json:"x"`
	Y      []*float64 `json:"y"`
	Marker *Marker    `json:"marker,omitempty"`
	Line   *Line      `json:"line,omitempty"`
}

type Marker struct {
	Size     []float64 `json:"size,omitempty"`
	SizeMode string    `json:"sizemode,omitempty"`
	SizeRef  float64   `json:"sizeref,omitempty"`
}

type Line struct {
	Color string `json:"color,omitempty"`
	Width int    `json:"width,omitempty"`
	Dash  string `json:"dash,omitempty"`
}

type Font struct {
	Color string `json:"color"`
}

type Axis struct {
	Title       string   `json:"title,omitempty"`
	Range       []string `json:"range,omitempty"`
	RangeSlider *Toggle  `json:"rangeslider,omitempty"`
}

type Toggle struct {
	Visible bool `json:"visible"`
}

// Shape is a line drawn over the plot.
type Shape struct {
	Type string  `json:"type"`
	X0   string  `json:"x0"`
	X1   string  `json:"x1"`
	Y0   float64 `json:"y0"`
	Y1   float64 `json:"y1"`
	Line Line    `json:"line"`
}

type Layout struct {
	Title        string  `json:"title,omitempty"`
	Height       int     `json:"height,omitempty"`
	ShowLegend   bool    `json:"showlegend"`
	PaperBGColor string  `json:"paper_bgcolor"`
	PlotBGColor  string  `json:"plot_bgcolor,omitempty"`
	Font         Font    `json:"font"`
	XAxis        Axis    `json:"xaxis"`
	YAxis        Axis    `json:"yaxis"`
	Shapes       []Shape `json:"shapes,omitempty"`
}

func themed(title string, height int, theme renderer.Theme) Layout {
	return Layout{
		Title:        title,
		Height:       height,
		ShowLegend:   true,
		PaperBGColor: theme.Background,
		PlotBGColor:  theme.PlotBackground,
		Font:         Font{Color: theme.Text},
	}
}

func ptr(v float64) *float64 { return &v }

// maxMarker is the diameter, in pixels, of the largest bubble.
const maxMarker = 20

// balanceFigure plots the balance after each row, one series per row type,
// bubbles sized by the principal paid.
func balanceFigure(m *finance.Mortgage, theme renderer.Theme) Figure {
	var largest float64
	for _, l := range m.Lines {
		largest = max(largest, l.Principal.AsFloat())
	}
	sizeRef := 1.0
	if largest > 0 {
		sizeRef = 2 * largest / (maxMarker * maxMarker)
	}

	var types []finance.MortgageType
	series := make(map[finance.MortgageType]*Trace)
	for _, l := range m.Lines {
		tr, ok := series[l.Type]
		if !ok {
			tr = &Trace{Type: "scatter", Mode: "markers", Name: string(l.Type), Marker: &Marker{SizeMode: "area", SizeRef: sizeRef}}
			series[l.Type] = tr
			types = append(types, l.Type)
		}
		tr.X = append(tr.X, l.Date.String())
		tr.Y = append(tr.Y, ptr(l.Balance.AsFloat()))
		tr.Marker.Size = append(tr.Marker.Size, max(0, l.Principal.AsFloat()))
	}
	fig := Figure{Layout: themed("Balance", 650, theme)}
	for _, t := range types {
		fig.Data = append(fig.Data, *series[t])
	}
	fig.Layout.YAxis.Title = "balance"
	return fig
}

// totalsFigure plots the cumulative principal and interest paid.
func totalsFigure(m *finance.Mortgage, theme renderer.Theme) Figure {
	prin := Trace{Type: "scatter", Mode: "markers", Name: "prin_total"}
	inter := Trace{Type: "scatter", Mode: "markers", Name: "int_total"}
	for _, l := range m.Lines {
		prin.X, inter.X = append(prin.X, l.Date.String()), append(inter.X, l.Date.String())
		prin.Y = append(prin.Y, ptr(l.PrincipalTotal.AsFloat()))
		inter.Y = append(inter.Y, ptr(l.InterestTotal.AsFloat()))
	}
	fig := Figure{Data: []Trace{prin, inter}, Layout: themed("Principal and Interest", 650, theme)}
	fig.Layout.YAxis.Title = "value"
	return fig
}

// stockFigure plots the closes of a ticker with its 50 and 200 days moving
// averages, and a dotted line at the buy price since the buy date.
func stockFigure(s finance.StockSummary, h *date.History[float64], theme renderer.Theme) Figure {
	days := make([]string, 0, h.Len())
	closes := make([]*float64, 0, h.Len())
	for on, v := range h.Values() {
		days = append(days, on.String())
		closes = append(closes, ptr(v))
	}
	last, _ := h.Latest()

	fig := Figure{
		Data: []Trace{
			{Type: "scatter", Mode: "lines", Name: "close", X: days, Y: closes, Line: &Line{Color: "black", Width: 2}},
			{Type: "scatter", Mode: "lines", Name: "50-day SMA", X: days, Y: quote.SMA(h, 50), Line: &Line{Color: "LightSeaGreen", Width: 2}},
			{Type: "scatter", Mode: "lines", Name: "200-day SMA", X: days, Y: quote.SMA(h, 200), Line: &Line{Color: "SeaGreen", Width: 2}},
		},
		Layout: themed(s.Ticker, 800, theme),
	}
	if theme.Night {
		fig.Data[0].Line.Color = theme.Text
	}
	fig.Layout.ShowLegend = false
	fig.Layout.XAxis.RangeSlider = &Toggle{Visible: true}
	if !s.BuyDate.IsZero() {
		fig.Layout.XAxis.Range = []string{s.BuyDate.String(), last.String()}
		fig.Layout.Shapes = []Shape{{
			Type: "line",
			X0:   s.BuyDate.String(),
			X1:   last.String(),
			Y0:   s.BuyPrice.AsFloat(),
			Y1:   s.BuyPrice.AsFloat(),
			Line: Line{Color: "firebrick", Width: 2, Dash: "dot"},
		}}
	}
	return fig
}

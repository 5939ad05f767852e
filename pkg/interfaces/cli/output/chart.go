package output

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/vsinha/wallcalc/pkg/application/dto"
)

// Chart is the plot geometry shared by the PNG exports
type Chart struct {
	Width        int
	Height       int
	MarginLeft   float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	XMin, XMax   float64
	YMin, YMax   float64
}

// Series is one polyline of a chart
type Series struct {
	Label  string
	Color  string
	Dashed bool
	X, Y   []float64
}

// NewChart creates a chart for the given data range, padding a flat range
func NewChart(xMin, xMax, yMin, yMax float64) *Chart {
	if xMax <= xMin {
		xMax = xMin + 1
	}
	if yMax <= yMin {
		yMin, yMax = yMin-1, yMax+1
	}
	return &Chart{
		Width:        1000,
		Height:       600,
		MarginLeft:   80,
		MarginTop:    50,
		MarginRight:  40,
		MarginBottom: 60,
		XMin:         xMin,
		XMax:         xMax,
		YMin:         yMin,
		YMax:         yMax,
	}
}

// X maps a data value onto the canvas
func (c *Chart) X(v float64) float64 {
	plot := float64(c.Width) - c.MarginLeft - c.MarginRight
	return c.MarginLeft + (v-c.XMin)/(c.XMax-c.XMin)*plot
}

// Y maps a data value onto the canvas, growing upwards
func (c *Chart) Y(v float64) float64 {
	plot := float64(c.Height) - c.MarginTop - c.MarginBottom
	return float64(c.Height) - c.MarginBottom - (v-c.YMin)/(c.YMax-c.YMin)*plot
}

func (c *Chart) context(title, xLabel, yLabel string) *gg.Context {
	dc := gg.NewContext(c.Width, c.Height)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	dc.SetHexColor("#333333")
	dc.DrawStringAnchored(title, float64(c.Width)/2, c.MarginTop/2, 0.5, 0.5)
	dc.DrawStringAnchored(xLabel, float64(c.Width)/2, float64(c.Height)-15, 0.5, 0.5)
	dc.DrawStringAnchored(yLabel, 10, c.MarginTop/2, 0, 0.5)
	return dc
}

func (c *Chart) drawAxes(dc *gg.Context) {
	dc.SetLineWidth(1)
	for i := 0; i <= 5; i++ {
		v := c.YMin + float64(i)*(c.YMax-c.YMin)/5
		y := c.Y(v)
		dc.SetHexColor("#e0e0e0")
		dc.DrawLine(c.MarginLeft, y, float64(c.Width)-c.MarginRight, y)
		dc.Stroke()
		dc.SetHexColor("#666666")
		dc.DrawStringAnchored(fmt.Sprintf("%.1f", v), c.MarginLeft-8, y, 1, 0.5)

		u := c.XMin + float64(i)*(c.XMax-c.XMin)/5
		dc.DrawStringAnchored(fmt.Sprintf("%.0f", u), c.X(u), float64(c.Height)-c.MarginBottom+15, 0.5, 0.5)
	}

	dc.SetHexColor("#333333")
	dc.DrawLine(c.MarginLeft, c.MarginTop, c.MarginLeft, float64(c.Height)-c.MarginBottom)
	dc.DrawLine(c.MarginLeft, float64(c.Height)-c.MarginBottom, float64(c.Width)-c.MarginRight, float64(c.Height)-c.MarginBottom)
	dc.Stroke()
}

func (c *Chart) drawSeries(dc *gg.Context, series []Series) {
	dc.SetLineWidth(2.5)
	for i, s := range series {
		dc.SetHexColor(s.Color)
		if s.Dashed {
			dc.SetDash(8, 5)
		}
		for j := range s.X {
			if j == 0 {
				dc.MoveTo(c.X(s.X[j]), c.Y(s.Y[j]))
			} else {
				dc.LineTo(c.X(s.X[j]), c.Y(s.Y[j]))
			}
		}
		dc.Stroke()
		dc.SetDash()

		// legend
		ly := c.MarginTop + 15 + float64(i)*18
		lx := float64(c.Width) - c.MarginRight - 190
		dc.DrawLine(lx, ly, lx+25, ly)
		dc.Stroke()
		dc.SetHexColor("#333333")
		dc.DrawStringAnchored(s.Label, lx+32, ly, 0, 0.5)
	}
}

// WriteProfilePNG plots the temperature and dew point through the wall
// over the layer bands, with condensation zones shaded
func WriteProfilePNG(w io.Writer, report *dto.AssemblyReport) error {
	temperature := Series{Label: "Temperature", Color: "#d62728"}
	for _, p := range report.TemperatureProfile {
		if p.Value.Finite() {
			temperature.X = append(temperature.X, p.Depth)
			temperature.Y = append(temperature.Y, float64(p.Value))
		}
	}
	dewPoint := Series{Label: "Dew point", Color: "#1f77b4", Dashed: true}
	for _, l := range report.DewPoint.Layers {
		if l.StartDewPoint.Finite() && l.EndDewPoint.Finite() {
			dewPoint.X = append(dewPoint.X, l.StartDepth, l.EndDepth)
			dewPoint.Y = append(dewPoint.Y, float64(l.StartDewPoint), float64(l.EndDewPoint))
		}
	}

	yMin, yMax := bounds(temperature.Y, dewPoint.Y)
	chart := NewChart(0, report.TotalThickness, math.Floor(yMin-2), math.Ceil(yMax+2))
	dc := chart.context(report.Name+": temperature profile", "Depth from interior [mm]", "°C")

	top, bottom := chart.Y(chart.YMax), chart.Y(chart.YMin)
	position := 0.0
	for i, l := range report.Layers {
		if i%2 == 0 {
			dc.SetHexColor("#f2efe9")
		} else {
			dc.SetHexColor("#e6e1d6")
		}
		dc.DrawRectangle(chart.X(position), top, chart.X(position+l.Thickness)-chart.X(position), bottom-top)
		dc.Fill()
		dc.SetHexColor("#888888")
		dc.DrawStringAnchored(truncate(l.Material, 18), chart.X(position+l.Thickness/2), bottom-10, 0.5, 0.5)
		position += l.Thickness
	}
	for _, z := range report.DewPoint.Zones {
		dc.SetRGBA(0.85, 0.1, 0.1, 0.25)
		dc.DrawRectangle(chart.X(z.StartDepth), top, chart.X(z.EndDepth)-chart.X(z.StartDepth), bottom-top)
		dc.Fill()
	}

	chart.drawAxes(dc)
	chart.drawSeries(dc, []Series{temperature, dewPoint})

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WriteOptimizationPNG plots investment, cumulative savings and net profit
// against insulation thickness, marking the optimum
func WriteOptimizationPNG(w io.Writer, report *dto.OptimizationReport) error {
	investment := Series{Label: "Investment", Color: "#ff7f0e"}
	savings := Series{Label: "Cumulative savings", Color: "#1f77b4"}
	profit := Series{Label: "Net profit", Color: "#2ca02c"}
	for _, p := range report.DataPoints {
		investment.X = append(investment.X, p.Thickness)
		investment.Y = append(investment.Y, p.InvestmentCost)
		savings.X = append(savings.X, p.Thickness)
		savings.Y = append(savings.Y, p.CumulativeSavings)
		profit.X = append(profit.X, p.Thickness)
		profit.Y = append(profit.Y, p.NetProfit)
	}

	xMin, xMax := bounds(profit.X)
	yMin, yMax := bounds(investment.Y, savings.Y, profit.Y)
	chart := NewChart(xMin, xMax, math.Min(0, yMin), yMax)
	dc := chart.context(
		fmt.Sprintf("%s: optimal thickness %.0f cm", report.Input.MaterialName, report.Optimal.Thickness),
		"Insulation thickness [cm]", "Cost")

	chart.drawAxes(dc)

	dc.SetHexColor("#999999")
	dc.SetLineWidth(1)
	dc.SetDash(4, 4)
	x := chart.X(report.Optimal.Thickness)
	dc.DrawLine(x, chart.Y(chart.YMax), x, chart.Y(chart.YMin))
	dc.Stroke()
	dc.SetDash()

	chart.drawSeries(dc, []Series{investment, savings, profit})

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func bounds(values ...[]float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, vs := range values {
		for _, v := range vs {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	return lo, hi
}

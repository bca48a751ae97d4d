/*
 * dosplot.go, part of godos
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package dosplot draws densities of states read by the dos package,
//using gonum/plot. Figures are saved as eps and pdf.
package dosplot

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"k8s.io/klog/v2"

	dos "github.com/rmera/godos"
)

const (
	XLabel = "E-E_f (eV)"
	YLabel = "LDOS (arb. units)"
)

//Style contains the options for the labels of a DOS plot.
type Style struct {
	AxisFontSize int //in points, for the axis labels and the ticks.
	ShowLegend   bool
}

//DefaultStyle returns 16 point fonts and a legend.
func DefaultStyle() Style {
	return Style{AxisFontSize: 16, ShowLegend: true}
}

//Figure is a plot with labeled DOS series on it.
type Figure struct {
	p      *plot.Plot
	lines  []*plotter.Line
	labels []string
}

//NewFigure returns an empty figure with the given title.
func NewFigure(title string) *Figure {
	F := new(Figure)
	F.p = plot.New()
	F.p.Title.Text = title
	F.p.Title.Padding = 3 * vg.Millimeter
	F.p.Add(plotter.NewGrid())
	return F
}

//Plot returns the underlying gonum plot, for any further customization.
func (F *Figure) Plot() *plot.Plot {
	return F.p
}

//Len returns the number of series in the figure.
func (F *Figure) Len() int {
	return len(F.lines)
}

//Labels returns the labels of the series in the figure, in the order they were added.
func (F *Figure) Labels() []string {
	ret := make([]string, len(F.labels))
	copy(ret, F.labels)
	return ret
}

//Add adds a series with the values y at the energies x.
func (F *Figure) Add(label string, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("dosplot: %d energies but %d DOS values for series %q", len(x), len(y), label)
	}
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Width = vg.Points(1.5)
	F.p.Add(l)
	F.lines = append(F.lines, l)
	F.labels = append(F.labels, label)
	F.recolor()
	return nil
}

//every series gets a color according to its position among all of them.
func (F *Figure) recolor() {
	for i, l := range F.lines {
		l.LineStyle.Color = seriesColor(i, len(F.lines))
	}
}

//AddLDOS adds the DOS of the given atom and orbital column in L to the figure.
//If label is empty, one is made up from the atom and orbital indexes.
func AddLDOS(F *Figure, L dos.Seriesr, atom, orbital int, label string) error {
	e, err := L.EnergyGrid()
	if err != nil {
		return err
	}
	s, err := L.Series(atom, orbital)
	if err != nil {
		return err
	}
	if label == "" {
		label = fmt.Sprintf("atom %d, column %d", atom, orbital)
	}
	return F.Add(label, e, s)
}

//SetLabels sets the axis labels, the font sizes and, if requested, the legend of the figure.
//It can be called many times, the last call wins.
func SetLabels(F *Figure, st Style) {
	p := F.p
	size := vg.Points(float64(st.AxisFontSize))
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.X.Label.TextStyle.Font.Size = size
	p.Y.Label.TextStyle.Font.Size = size
	p.X.Tick.Label.Font.Size = size
	p.Y.Tick.Label.Font.Size = size
	p.Legend = plot.NewLegend()
	if !st.ShowLegend {
		return
	}
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = size
	for i, l := range F.lines {
		p.Legend.Add(F.labels[i], l)
	}
}

//Save sets the labels of fig according to st, and saves it to fname, in eps format,
//and to the same name with a pdf extension. ".eps" is appended to fname unless
//it already ends with it. If fig is nil, an empty figure is saved.
//size, if given, is the width and height of the figure. The default is 6x4 inches.
//It returns the names of the files written.
func Save(fname string, fig *Figure, st Style, size ...vg.Length) ([]string, error) {
	if fig == nil {
		fig = NewFigure("")
	}
	w, h := 6*vg.Inch, 4*vg.Inch
	if len(size) >= 2 {
		w, h = size[0], size[1]
	}
	SetLabels(fig, st)
	eps := fname
	if !strings.HasSuffix(eps, ".eps") {
		eps += ".eps"
	}
	pdf := strings.TrimSuffix(eps, ".eps") + ".pdf"
	written := make([]string, 0, 2)
	for _, name := range []string{eps, pdf} {
		if err := fig.p.Save(w, h, name); err != nil {
			return written, fmt.Errorf("dosplot: saving %s: %w", name, err)
		}
		klog.V(2).InfoS("Saved DOS plot", "file", name, "series", fig.Len())
		written = append(written, name)
	}
	return written, nil
}

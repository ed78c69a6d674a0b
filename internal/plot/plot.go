// Package plot renders cluster member locations as projected 3-D scatter
// plots from fixed viewpoints.
package plot

import (
	"fmt"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/TrevorS/regionclust"
)

// axisLimit bounds every projected axis; scanner coordinates of cortical
// regions stay within ±100 mm.
const axisLimit = 100

// View is a camera orientation. Pitch tilts about the left-right axis and
// Yaw turns about the vertical axis, both in radians.
type View struct {
	Name  string
	Pitch float64
	Yaw   float64
}

// Views are the four standard perspectives written for every run.
var Views = []View{
	{Name: "front", Pitch: 0.7, Yaw: 0},
	{Name: "right", Pitch: 0.7, Yaw: 0.9},
	{Name: "left", Pitch: 0.7, Yaw: -0.9},
	{Name: "rear", Pitch: -0.7, Yaw: 0},
}

// Landmark is a labelled anatomical reference point.
type Landmark struct {
	Label string
	At    regionclust.Location
}

// Landmarks orient the viewer in every plot.
var Landmarks = []Landmark{
	{"Brain Stem", regionclust.Location{X: -3.585366, Y: -24.195122, Z: -36.878049}},
	{"Right Frontal Pole", regionclust.Location{X: 49.311111, Y: 36.955556, Z: -10.844444}},
	{"Left Frontal Pole", regionclust.Location{X: -31.920530, Y: 57.615894, Z: -12.437086}},
	{"Right Temporal Pole", regionclust.Location{X: 49.806452, Y: 12.309677, Z: -31.496774}},
	{"Left Temporal Pole", regionclust.Location{X: -47.246377, Y: 6.144928, Z: -38.231884}},
	{"Cerebellum Vermis", regionclust.Location{X: -0.579186, Y: -62.986425, Z: -18.923077}},
}

// Project maps a 3-D point onto the screen plane of v. The point is turned
// by Yaw about the vertical (Z) axis, then tilted by Pitch about the X axis;
// the screen shows the resulting X (horizontal) and Z (vertical).
func Project(p regionclust.Location, v View) (x, y float64) {
	sy, cy := math.Sincos(v.Yaw)
	rx := p.X*cy - p.Y*sy
	ry := p.X*sy + p.Y*cy

	sp, cp := math.Sincos(v.Pitch)
	rz := ry*sp + p.Z*cp
	return rx, rz
}

// Series gathers the projected locations of each cluster's members. Nodes
// without a location are skipped, so a series may be empty.
func Series(g *regionclust.Graph, p regionclust.Partition, v View) []plotter.XYs {
	series := make([]plotter.XYs, p.Len())
	for i := 0; i < p.Len(); i++ {
		members := p.Cluster(i).Members
		xys := make(plotter.XYs, 0, len(members))
		for _, m := range members {
			loc := g.Node(m).Location
			if loc == nil {
				continue
			}
			x, y := Project(*loc, v)
			xys = append(xys, plotter.XY{X: x, Y: y})
		}
		series[i] = xys
	}
	return series
}

// Render builds the plot of p from viewpoint v.
func Render(g *regionclust.Graph, p regionclust.Partition, v View) (*plot.Plot, error) {
	plt := plot.New()
	plt.Title.Text = "Brain regions"
	plt.X.Min, plt.X.Max = -axisLimit, axisLimit
	plt.Y.Min, plt.Y.Max = -axisLimit, axisLimit

	for i, xys := range Series(g, p, v) {
		if len(xys) == 0 {
			continue
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("plot: cluster %d: %w", i+1, err)
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = plotutil.Shape(i)
		s.GlyphStyle.Radius = vg.Points(3)
		plt.Add(s)
		plt.Legend.Add(fmt.Sprintf("Region %d", i+1), s)
	}

	marks := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(Landmarks)),
		Labels: make([]string, len(Landmarks)),
	}
	for i, lm := range Landmarks {
		x, y := Project(lm.At, v)
		marks.XYs[i] = plotter.XY{X: x, Y: y}
		marks.Labels[i] = lm.Label
	}
	labels, err := plotter.NewLabels(marks)
	if err != nil {
		return nil, fmt.Errorf("plot: landmarks: %w", err)
	}
	plt.Add(labels)
	return plt, nil
}

// FileName is the image name for a partition of k clusters seen from v.
func FileName(k int, v View) string {
	return fmt.Sprintf("%d_%s.png", k, v.Name)
}

// WriteViews renders every view in Views into dir and returns the files
// written.
func WriteViews(dir string, g *regionclust.Graph, p regionclust.Partition) ([]string, error) {
	paths := make([]string, 0, len(Views))
	for _, v := range Views {
		plt, err := Render(g, p, v)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, FileName(p.Len(), v))
		if err := plt.Save(6.4*vg.Inch, 4.8*vg.Inch, path); err != nil {
			return nil, fmt.Errorf("plot: save %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Package report writes clustering results: the plain-text region listing
// and a TOML export for downstream tooling.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/TrevorS/regionclust"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatTOML = "toml"
)

// ImagesDir is the subdirectory of the output folder that holds plots.
const ImagesDir = "images"

// ErrNotOutputDir is returned by PrepareDir for an existing, non-empty
// directory that holds no earlier report or images folder.
var ErrNotOutputDir = errors.New("report: not an output directory")

// ErrUnknownFormat is returned by Write for a format other than FormatText
// or FormatTOML.
var ErrUnknownFormat = errors.New("report: unknown format")

// Summary is everything a report shows about one clustering run.
type Summary struct {
	RunID    string           `toml:"run_id"`
	Linkage  string           `toml:"linkage"`
	Target   int              `toml:"target"`
	Nodes    int              `toml:"nodes"`
	Clusters []ClusterSummary `toml:"cluster"`
}

// ClusterSummary describes one cluster. Region is 1-based.
type ClusterSummary struct {
	Region     int      `toml:"region"`
	Members    []int    `toml:"members"`
	Names      []string `toml:"names"`
	Cohesion   float64  `toml:"cohesion"`
	Separation float64  `toml:"separation"`
}

// NewSummary collects the report view of a clustering result.
func NewSummary(runID string, linkage regionclust.Linkage, g *regionclust.Graph, res *regionclust.Result) Summary {
	s := Summary{
		RunID:    runID,
		Linkage:  string(linkage),
		Target:   res.Partition.Len(),
		Nodes:    g.Len(),
		Clusters: make([]ClusterSummary, res.Partition.Len()),
	}
	for i, members := range res.Partition.Members() {
		cs := ClusterSummary{
			Region:  i + 1,
			Members: members,
			Names:   g.Names(members),
		}
		if i < len(res.Stats) {
			cs.Cohesion = res.Stats[i].Cohesion
			cs.Separation = res.Stats[i].Separation
		}
		s.Clusters[i] = cs
	}
	return s
}

// WriteText writes one "Region <n>: [name, name, ...]" line per cluster.
func WriteText(w io.Writer, s Summary) error {
	for _, c := range s.Clusters {
		if _, err := fmt.Fprintf(w, "Region %d: [%s]\n", c.Region, strings.Join(c.Names, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteTOML encodes the summary as TOML with one [[cluster]] table per
// cluster.
func WriteTOML(w io.Writer, s Summary) error {
	return toml.NewEncoder(w).Encode(s)
}

// reportFiles are the names Write can produce.
var reportFiles = []string{"clusters.txt", "clusters.toml"}

// PrepareDir clears dir and recreates it together with its images
// subdirectory. An existing dir is only cleared when it is empty or holds
// the images folder or a report from an earlier run.
func PrepareDir(dir string) error {
	if dir == "" || filepath.Clean(dir) == "/" {
		return fmt.Errorf("report: refusing to clear output directory %q", dir)
	}
	if err := checkOutputDir(dir); err != nil {
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("report: clear %s: %w", dir, err)
	}
	if err := os.MkdirAll(filepath.Join(dir, ImagesDir), 0o755); err != nil {
		return fmt.Errorf("report: create %s: %w", dir, err)
	}
	return nil
}

func checkOutputDir(dir string) error {
	entries, err := os.ReadDir(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("report: %w", err)
	case len(entries) == 0:
		return nil
	}

	for _, e := range entries {
		if e.IsDir() && e.Name() == ImagesDir {
			return nil
		}
		for _, name := range reportFiles {
			if !e.IsDir() && e.Name() == name {
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %s", ErrNotOutputDir, dir)
}

// Write stores the summary in dir as clusters.txt or clusters.toml and
// returns the path written.
func Write(dir, format string, s Summary) (string, error) {
	var (
		name   string
		encode func(io.Writer, Summary) error
	)
	switch format {
	case FormatText, "":
		name, encode = reportFiles[0], WriteText
	case FormatTOML:
		name, encode = reportFiles[1], WriteTOML
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report: %w", err)
	}
	if err := encode(f, s); err != nil {
		f.Close()
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("report: close %s: %w", path, err)
	}
	return path, nil
}

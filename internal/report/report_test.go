package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrevorS/regionclust"
)

func testResult(t *testing.T) (*regionclust.Graph, *regionclust.Result) {
	t.Helper()
	w := [][]float64{
		{1, 0.9, 0, 0},
		{0.9, 1, 0.8, 0},
		{0, 0.8, 1, 0.5},
		{0, 0, 0.5, 1},
	}
	nodes := regionclust.NodesFromNames([]string{"Brain Stem", "Vermis", "Left Pole", "Right Pole"}, nil)
	g, err := regionclust.NewGraph(nodes, w)
	require.NoError(t, err)

	res, err := regionclust.ClusterGraph(g, regionclust.Config{TargetClusters: 2, Workers: 1})
	require.NoError(t, err)
	return g, res
}

func TestNewSummary(t *testing.T) {
	g, res := testResult(t)
	s := NewSummary("run-1", regionclust.LinkageAverage, g, res)

	assert.Equal(t, "run-1", s.RunID)
	assert.Equal(t, "average", s.Linkage)
	assert.Equal(t, 2, s.Target)
	assert.Equal(t, 4, s.Nodes)
	require.Len(t, s.Clusters, 2)
	assert.Equal(t, 1, s.Clusters[0].Region)
	assert.Equal(t, []int{0, 1}, s.Clusters[0].Members)
	assert.Equal(t, []string{"Brain Stem", "Vermis"}, s.Clusters[0].Names)
	assert.Equal(t, 0.9, s.Clusters[0].Cohesion)
}

func TestWriteText(t *testing.T) {
	g, res := testResult(t)
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, NewSummary("x", regionclust.LinkageAverage, g, res)))

	assert.Equal(t, "Region 1: [Brain Stem, Vermis]\nRegion 2: [Left Pole, Right Pole]\n", buf.String())
}

func TestWriteTOML_RoundTrip(t *testing.T) {
	g, res := testResult(t)
	s := NewSummary("abc", regionclust.LinkageAverage, g, res)

	var buf bytes.Buffer
	require.NoError(t, WriteTOML(&buf, s))

	var back Summary
	_, err := toml.Decode(buf.String(), &back)
	require.NoError(t, err)
	assert.Equal(t, s.RunID, back.RunID)
	require.Len(t, back.Clusters, 2)
	assert.Equal(t, s.Clusters[1].Names, back.Clusters[1].Names)
	assert.Equal(t, s.Clusters[1].Members, back.Clusters[1].Members)
}

func TestPrepareDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ImagesDir), 0o755))
	stale := filepath.Join(dir, "clusters.txt")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))
	staleImage := filepath.Join(dir, ImagesDir, "8_front.png")
	require.NoError(t, os.WriteFile(staleImage, []byte("png"), 0o644))

	require.NoError(t, PrepareDir(dir))

	_, err := os.Stat(stale)
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(staleImage)
	assert.ErrorIs(t, err, os.ErrNotExist)
	info, err := os.Stat(filepath.Join(dir, ImagesDir))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.Error(t, PrepareDir(""))
	assert.Error(t, PrepareDir("/"))
}

func TestPrepareDir_NewAndEmpty(t *testing.T) {
	fresh := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, PrepareDir(fresh))
	assert.DirExists(t, filepath.Join(fresh, ImagesDir))

	empty := t.TempDir()
	require.NoError(t, PrepareDir(empty))
	assert.DirExists(t, filepath.Join(empty, ImagesDir))
}

func TestPrepareDir_RefusesForeignDir(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string)
	}{
		{"unrelated file", func(t *testing.T, dir string) {
			require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0o644))
		}},
		{"report name as directory", func(t *testing.T, dir string) {
			require.NoError(t, os.Mkdir(filepath.Join(dir, "clusters.txt"), 0o755))
		}},
		{"images as file", func(t *testing.T, dir string) {
			require.NoError(t, os.WriteFile(filepath.Join(dir, ImagesDir), nil, 0o644))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			require.ErrorIs(t, PrepareDir(dir), ErrNotOutputDir)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 1)
		})
	}
}

func TestWrite(t *testing.T) {
	g, res := testResult(t)
	s := NewSummary("x", regionclust.LinkageAverage, g, res)
	dir := t.TempDir()

	path, err := Write(dir, FormatText, s)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "clusters.txt"), path)
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Region 2: [Left Pole, Right Pole]")

	path, err = Write(dir, FormatTOML, s)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "clusters.toml"), path)

	_, err = Write(dir, "csv", s)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

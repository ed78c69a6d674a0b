package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/TrevorS/regionclust"
	"github.com/TrevorS/regionclust/internal/config"
)

func writeInputs(t *testing.T) (dir string, cfg *config.Config) {
	t.Helper()
	dir = t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	session := write("session.txt", ""+
		"1.0e+00 9.0e-01 0.0e+00 0.0e+00\n"+
		"9.0e-01 1.0e+00 8.0e-01 0.0e+00\n"+
		"0.0e+00 8.0e-01 1.0e+00 5.0e-01\n"+
		"0.0e+00 0.0e+00 5.0e-01 1.0e+00\n")
	names := write("names.txt", "A\nB\nC\nD\n")
	centers := write("centers.txt", "10 0 0\n20 0 0\n-10 5 5\n-20 5 5\n")

	c := config.Default()
	c.Input = config.Input{Sessions: []string{session}, Names: names, Centers: centers}
	c.Clustering.Target = 2
	c.Clustering.Workers = 1
	c.Output.Dir = filepath.Join(dir, "results")
	require.NoError(t, c.Validate())
	return dir, &c
}

func TestRun(t *testing.T) {
	_, cfg := writeInputs(t)
	core, logs := observer.New(zapcore.DebugLevel)

	out, err := Run(context.Background(), cfg, zap.New(core))
	require.NoError(t, err)

	body, err := os.ReadFile(out.Report)
	require.NoError(t, err)
	assert.Equal(t, "Region 1: [A, B]\nRegion 2: [C, D]\n", string(body))

	require.Len(t, out.Images, 4)
	for _, img := range out.Images {
		_, err := os.Stat(img)
		require.NoError(t, err)
	}

	assert.NotEmpty(t, out.Summary.RunID)
	assert.Equal(t, 2, logs.FilterMessage("merged clusters").Len())
	for _, e := range logs.All() {
		assert.Equal(t, out.Summary.RunID, e.ContextMap()["run_id"])
	}
}

func TestRun_TOMLWithoutPlots(t *testing.T) {
	_, cfg := writeInputs(t)
	cfg.Output.Format = "toml"
	cfg.Output.Plots = false
	cfg.Clustering.Linkage = "single"

	out, err := Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "clusters.toml", filepath.Base(out.Report))
	assert.Empty(t, out.Images)
	assert.Equal(t, "single", out.Summary.Linkage)
	assert.Equal(t, []int{0, 1, 2}, out.Summary.Clusters[0].Members)
}

func TestRun_Errors(t *testing.T) {
	_, cfg := writeInputs(t)
	cfg.Clustering.Target = 9
	_, err := Run(context.Background(), cfg, nil)
	require.ErrorIs(t, err, regionclust.ErrInvalidTarget)

	_, cfg = writeInputs(t)
	cfg.Input.Sessions = []string{filepath.Join(t.TempDir(), "missing.txt")}
	_, err = Run(context.Background(), cfg, nil)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, cfg = writeInputs(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, cfg, nil)
	require.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(cfg.Output.Dir)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

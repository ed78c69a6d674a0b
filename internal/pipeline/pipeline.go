// Package pipeline runs one clustering job end to end: load inputs, cluster,
// and write reports and plots.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TrevorS/regionclust"
	"github.com/TrevorS/regionclust/internal/config"
	"github.com/TrevorS/regionclust/internal/connectome"
	"github.com/TrevorS/regionclust/internal/plot"
	"github.com/TrevorS/regionclust/internal/report"
)

// Outcome describes a finished run.
type Outcome struct {
	Summary report.Summary
	Report  string   // path of the written report
	Images  []string // paths of the written plots, if any
}

// Run executes the job described by cfg. cfg must already be validated.
// The context is checked between stages; clustering itself is not
// interruptible.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Outcome, error) {
	if log == nil {
		log = zap.NewNop()
	}
	runID := uuid.NewString()
	log = log.With(zap.String("run_id", runID))

	g, err := connectome.Load(connectome.Sources{
		Sessions: cfg.Input.Sessions,
		Names:    cfg.Input.Names,
		Centers:  cfg.Input.Centers,
	})
	if err != nil {
		return nil, fmt.Errorf("load inputs: %w", err)
	}
	log.Info("loaded correlation graph",
		zap.Int("regions", g.Len()),
		zap.Int("sessions", len(cfg.Input.Sessions)),
	)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ccfg, err := cfg.ClusterConfig()
	if err != nil {
		return nil, err
	}
	ccfg.Logger = log
	res, err := regionclust.ClusterGraph(g, ccfg)
	if err != nil {
		return nil, fmt.Errorf("cluster: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := report.PrepareDir(cfg.Output.Dir); err != nil {
		return nil, err
	}
	summary := report.NewSummary(runID, ccfg.Linkage, g, res)
	path, err := report.Write(cfg.Output.Dir, cfg.Output.Format, summary)
	if err != nil {
		return nil, err
	}
	log.Info("wrote report", zap.String("path", path))

	out := &Outcome{Summary: summary, Report: path}
	if cfg.Output.Plots {
		images, err := plot.WriteViews(filepath.Join(cfg.Output.Dir, report.ImagesDir), g, res.Partition)
		if err != nil {
			return nil, err
		}
		log.Info("wrote plots", zap.Int("count", len(images)))
		out.Images = images
	}
	return out, nil
}

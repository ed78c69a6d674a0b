package connectome

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/TrevorS/regionclust"
)

// Sources names the input files of one subject.
type Sources struct {
	// Sessions are connectivity matrix files, averaged elementwise.
	Sessions []string
	// Names is a file of region names, one per line. Optional.
	Names string
	// Centers is a file of region centers, one "x y z" per line. Optional.
	Centers string
}

// Load reads and averages the session matrices, attaches names and centers,
// and builds the correlation graph. Regions without a names file are called
// "ROI <n>" (1-based).
func Load(src Sources) (*regionclust.Graph, error) {
	if len(src.Sessions) == 0 {
		return nil, ErrNoSessions
	}

	sessions := make([]*mat.Dense, len(src.Sessions))
	for i, path := range src.Sessions {
		m, err := ReadMatrixFile(path)
		if err != nil {
			return nil, err
		}
		sessions[i] = m
	}
	avg, err := Average(sessions...)
	if err != nil {
		return nil, err
	}
	n, _ := avg.Dims()

	var names []string
	if src.Names != "" {
		if names, err = ReadNamesFile(src.Names); err != nil {
			return nil, err
		}
		if len(names) != n {
			return nil, fmt.Errorf("%w: %d names for %d regions", ErrShapeMismatch, len(names), n)
		}
	} else {
		names = make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("ROI %d", i+1)
		}
	}

	var centers []regionclust.Location
	if src.Centers != "" {
		if centers, err = ReadCentersFile(src.Centers); err != nil {
			return nil, err
		}
		if len(centers) != n {
			return nil, fmt.Errorf("%w: %d centers for %d regions", ErrShapeMismatch, len(centers), n)
		}
	}

	return regionclust.NewGraphFromMatrix(regionclust.NodesFromNames(names, centers), avg)
}

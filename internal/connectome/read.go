package connectome

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/TrevorS/regionclust"
)

// maxLineBytes bounds a single input line; a 400-region row in scientific
// notation is well under 16 KiB.
const maxLineBytes = 1 << 20

// scanLines calls fn with each non-blank line, its 1-based line number and
// its whitespace-separated fields.
func scanLines(r io.Reader, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if err := fn(line, fields); err != nil {
			return err
		}
	}
	return sc.Err()
}

// ParseFloat reads a real number in plain or scientific notation, such as
// "0.25", "1.23e2", "-5.5678e-3" or "4E+01".
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}
	return v, nil
}

// ReadMatrix parses a whitespace-separated N×N connectivity matrix, one row
// per line. Blank lines are skipped.
func ReadMatrix(r io.Reader) (*mat.Dense, error) {
	var (
		data []float64
		cols int
		rows int
	)
	err := scanLines(r, func(line int, fields []string) error {
		if rows == 0 {
			cols = len(fields)
			data = make([]float64, 0, cols*cols)
		} else if len(fields) != cols {
			return fmt.Errorf("%w: line %d has %d values, want %d", ErrRagged, line, len(fields), cols)
		}
		for col, f := range fields {
			v, err := ParseFloat(f)
			if err != nil {
				return fmt.Errorf("line %d column %d: %w", line, col+1, err)
			}
			data = append(data, v)
		}
		rows++
		return nil
	})
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrEmpty
	}
	if rows != cols {
		return nil, fmt.Errorf("%w: %d rows of %d values", ErrNotSquare, rows, cols)
	}
	return mat.NewDense(rows, cols, data), nil
}

// ReadNames parses one region name per non-blank line. Surrounding
// whitespace is trimmed; inner spaces are kept.
func ReadNames(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			names = append(names, name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// ReadCenters parses one "x y z" region center per non-blank line.
func ReadCenters(r io.Reader) ([]regionclust.Location, error) {
	var locs []regionclust.Location
	err := scanLines(r, func(line int, fields []string) error {
		if len(fields) != 3 {
			return fmt.Errorf("%w: line %d has %d values", ErrBadCenter, line, len(fields))
		}
		var xyz [3]float64
		for i, f := range fields {
			v, err := ParseFloat(f)
			if err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
			xyz[i] = v
		}
		locs = append(locs, regionclust.Location{X: xyz[0], Y: xyz[1], Z: xyz[2]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return locs, nil
}

// readFile opens path and applies parse to it.
func readFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// ReadMatrixFile is ReadMatrix on a file.
func ReadMatrixFile(path string) (*mat.Dense, error) { return readFile(path, ReadMatrix) }

// ReadNamesFile is ReadNames on a file.
func ReadNamesFile(path string) ([]string, error) { return readFile(path, ReadNames) }

// ReadCentersFile is ReadCenters on a file.
func ReadCentersFile(path string) ([]regionclust.Location, error) {
	return readFile(path, ReadCenters)
}

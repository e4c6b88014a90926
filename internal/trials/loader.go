package trials

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	logging "frontier-report/internal/infra/log"

	"go.uber.org/zap"
)

type LoadOptions struct {
	// StrictDistance rejects the file when any distance is zero or negative.
	// By default such rows are kept with invalid factors and counted.
	StrictDistance bool
}

// Load reads a trial CSV from path.
func Load(path string, opts LoadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trials file: %w", err)
	}
	defer f.Close()

	table, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logging.LogInfo("Loaded trials",
		zap.String("path", path),
		zap.Int("rows", table.Len()),
		zap.Int("invalid_distance", table.InvalidDistance))
	return table, nil
}

// Read parses trial rows from r and derives the factor and category columns.
func Read(r io.Reader, opts LoadOptions) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range RequiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	trialCol, hasTrial := index[ColTrial]

	table := &Table{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", line, err)
		}

		p := rowParser{record: record, index: index, line: line}
		t := Trial{
			Index:                 line - 2,
			DistanceKM:            p.float(ColDistanceKM),
			DijkstraVisited:       p.float(ColDijkstraVisited),
			AStarVisited:          p.float(ColAStarVisited),
			EfficiencyGainPercent: p.float(ColEfficiencyGain),
			TimeAStarMS:           p.float(ColTimeAStarMS),
		}
		if hasTrial && trialCol < len(record) {
			if n, err := strconv.Atoi(strings.TrimSpace(record[trialCol])); err == nil {
				t.Index = n
			}
		}
		if p.err != nil {
			return nil, p.err
		}

		if t.DistanceKM <= 0 {
			if opts.StrictDistance {
				return nil, fmt.Errorf("%w: row %d has %s=%g", ErrNonPositiveDistance, line, ColDistanceKM, t.DistanceKM)
			}
			table.InvalidDistance++
		}

		t.Derive()
		table.Trials = append(table.Trials, t)
	}

	if table.InvalidDistance > 0 {
		logging.LogWarn("Trials with non-positive distance have undefined expansion factors",
			zap.Int("count", table.InvalidDistance))
	}
	return table, nil
}

// rowParser keeps the first parse error so a row can be read field by field.
type rowParser struct {
	record []string
	index  map[string]int
	line   int
	err    error
}

func (p *rowParser) float(column string) float64 {
	if p.err != nil {
		return 0
	}
	i := p.index[column]
	if i >= len(p.record) {
		p.err = fmt.Errorf("%w: row %d has no value for %s", ErrMalformedValue, p.line, column)
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(p.record[i]), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		p.err = fmt.Errorf("%w: row %d, %s=%q", ErrMalformedValue, p.line, column, p.record[i])
		return 0
	}
	return v
}

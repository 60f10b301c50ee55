package cellindex

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dggs/core"
	"github.com/katalvlaran/dggs/grid"
	"github.com/katalvlaran/dggs/h3"
)

// Kind is the index kind registered with the core builder registry.
const Kind = "dggs"

// Sentinel errors for cell-id variable extraction.
var (
	// ErrNoCellVariable indicates no candidate variable matched.
	ErrNoCellVariable = errors.New("cellindex: no cell-id variable found")
	// ErrAmbiguousCells indicates candidate variables on more than one dimension.
	ErrAmbiguousCells = errors.New("cellindex: ambiguous cell-id variables")
	// ErrNotOneDim indicates a candidate variable that is not one-dimensional.
	ErrNotOneDim = errors.New("cellindex: cell-id variable must be one-dimensional")
	// ErrCellDType indicates a candidate payload that is not uint64.
	// Wraps core.ErrDTypeMismatch, the engine's dtype error.
	ErrCellDType = fmt.Errorf("cellindex: cell-id variable must hold uint64 values: %w", core.ErrDTypeMismatch)
)

// candidateNames are the recognized cell-id variable names, in
// precedence order. When several candidates share one dimension the
// highest-precedence name wins; candidates on different dimensions are
// ambiguous.
var candidateNames = []string{"cell_ids", "zonal_ids", "zone_ids"}

func init() {
	core.RegisterIndexBuilder(Kind, func(vars map[string]*core.Variable, opts map[string]any) (core.Index, error) {
		return FromVariables(vars, opts)
	})
}

// FromVariables extracts the cell-id variable from a candidate set,
// reads the grid configuration from its attributes, and builds the
// index. The options map is the engine's builder contract; no options
// are currently recognized.
//
// The chosen variable must be one-dimensional with a uint64 payload.
// Its attributes must carry an integer resolution; grid_name is
// optional and defaults to "h3" (the deprecated grid_type key is
// ignored). An unrecognized grid_name is an error, never a fallback.
func FromVariables(vars map[string]*core.Variable, opts map[string]any) (*CellIndex, error) {
	_ = opts

	name, candidate, err := extractCellVariable(vars)
	if err != nil {
		return nil, err
	}
	dims := candidate.Dims()
	if len(dims) != 1 {
		return nil, fmt.Errorf("cellindex: variable %q has dims %v: %w", name, dims, ErrNotOneDim)
	}
	ids, ok := candidate.Data().(core.Uint64s)
	if !ok {
		return nil, fmt.Errorf("cellindex: variable %q holds %T: %w", name, candidate.Data(), ErrCellDType)
	}

	attrs := candidate.Attrs()
	gridName := h3.GridName
	if raw, present := attrs[grid.AttrGridName]; present {
		s, isString := raw.(string)
		if !isString {
			return nil, fmt.Errorf("cellindex: grid_name %v (%T) on %q: %w", raw, raw, name, grid.ErrUnknownGrid)
		}
		gridName = s
	}
	info, err := grid.New(gridName, attrs)
	if err != nil {
		return nil, err
	}
	return New([]uint64(ids), dims[0], info)
}

// extractCellVariable returns the first candidate by precedence, or a
// tagged failure: not-found when no recognized name is present,
// ambiguous when candidates span more than one dimension.
func extractCellVariable(vars map[string]*core.Variable) (string, *core.Variable, error) {
	var (
		chosenName string
		chosen     *core.Variable
		dims       []string
		names      []string
	)
	for _, name := range candidateNames {
		v, ok := vars[name]
		if !ok {
			continue
		}
		names = append(names, name)
		if chosen == nil {
			chosenName, chosen, dims = name, v, v.Dims()
			continue
		}
		if !sameDims(dims, v.Dims()) {
			return "", nil, fmt.Errorf("cellindex: candidates %s on differing dimensions: %w",
				strings.Join(names, ", "), ErrAmbiguousCells)
		}
	}
	if chosen == nil {
		return "", nil, fmt.Errorf("cellindex: recognized names are %s: %w",
			strings.Join(candidateNames, ", "), ErrNoCellVariable)
	}
	return chosenName, chosen, nil
}

func sameDims(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

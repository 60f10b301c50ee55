package accessor_test

import (
	"fmt"

	"github.com/katalvlaran/dggs/accessor"
	"github.com/katalvlaran/dggs/cellindex"
	"github.com/katalvlaran/dggs/core"
)

// Attach a cell index to a dataset and select by point.
func ExampleDatasetAccessor_SelLatLon() {
	ids, _ := core.NewVector("cells",
		core.Uint64s{0x832830FFFFFFFFF, 0x832831FFFFFFFFF, 0x832832FFFFFFFFF},
		map[string]any{"grid_name": "h3", "resolution": 3})
	temp, _ := core.NewVector("cells", core.Float64s{11, 22, 33}, nil)

	ds, _ := core.NewDataset(map[string]*core.Variable{"cell_ids": ids, "temp": temp})
	ds, _ = ds.SetIndex(cellindex.Kind, nil)

	acc, _ := accessor.ForDataset(ds)
	sub, _ := acc.SelLatLon([]float64{38.63853196}, []float64{-123.43390346})

	v, _ := sub.Variable("temp")
	fmt.Println(v.Data())
	// Output: [22]
}

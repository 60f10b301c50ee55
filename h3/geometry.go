package h3

import (
	"fmt"

	"github.com/paulmach/orb"
	h3lib "github.com/uber/h3-go/v4"
)

// GeomToCells converts a geometric region to the ids of the cells it
// covers at the configured resolution, following the H3 polyfill
// policy: a cell is covered when its center lies inside the region.
//
// Supported geometries: orb.Polygon, orb.MultiPolygon, orb.Bound.
// Anything else fails with ErrUnsupportedGeometry. A region covering
// no cell center yields an empty slice, not an error. Ids are
// deduplicated across multi-polygon parts, first occurrence order.
func (i *Info) GeomToCells(geom orb.Geometry) ([]uint64, error) {
	switch g := geom.(type) {
	case orb.Polygon:
		return i.polygonCells(g), nil
	case orb.MultiPolygon:
		seen := make(map[uint64]struct{})
		ids := make([]uint64, 0)
		for _, polygon := range g {
			for _, id := range i.polygonCells(polygon) {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
		return ids, nil
	case orb.Bound:
		return i.polygonCells(g.ToPolygon()), nil
	default:
		return nil, fmt.Errorf("h3: geometry %T: %w", geom, ErrUnsupportedGeometry)
	}
}

func (i *Info) polygonCells(polygon orb.Polygon) []uint64 {
	if len(polygon) == 0 {
		return []uint64{}
	}
	gp := h3lib.GeoPolygon{GeoLoop: geoLoop(polygon[0])}
	for _, hole := range polygon[1:] {
		gp.Holes = append(gp.Holes, geoLoop(hole))
	}
	cells := h3lib.PolygonToCells(gp, i.resolution)
	ids := make([]uint64, len(cells))
	for k, c := range cells {
		ids[k] = uint64(c)
	}
	return ids
}

// geoLoop converts an orb ring to an H3 loop, dropping the closing
// vertex when present (H3 loops are implicitly closed).
func geoLoop(ring orb.Ring) h3lib.GeoLoop {
	vertices := []orb.Point(ring)
	if len(vertices) > 1 && vertices[0] == vertices[len(vertices)-1] {
		vertices = vertices[:len(vertices)-1]
	}
	loop := make(h3lib.GeoLoop, len(vertices))
	for k, vertex := range vertices {
		loop[k] = h3lib.LatLng{Lat: vertex.Lat(), Lng: vertex.Lon()}
	}
	return loop
}

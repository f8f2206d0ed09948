package tools

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/data"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	FloatMin = 0.000001

	// decimal places kept when printing degrees and meters
	DegreePlaces = 6
	MeterPlaces  = 2
)

func FmtJSONString(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "marshal data fail"
	}
	return string(data)
}

func IsFloatEqual(f1, f2 float64) bool {
	return math.Abs(f1-f2) < FloatMin
}

// Rounds v half away from zero to the given number of decimal places. Non finite values
// are returned unchanged.
func RoundFloat(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	rounded, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return rounded
}

// Parses "minLon,minLat,maxLon,maxLat". The values are not range checked, the mesher decides
// what a usable box is.
func ParseBoundingBox(value string) (data.BoundingBox, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return data.BoundingBox{}, errors.Errorf("bounding box %q must have 4 comma separated values", value)
	}

	values := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return data.BoundingBox{}, errors.Wrapf(err, "bounding box %q", value)
		}
		values[i] = v
	}

	return data.NewBoundingBox(values[0], values[1], values[2], values[3]), nil
}

// Package loader reads spatial objects from CSV, the on-disk collaborator
// spec.md's data model treats as external to the mining engine itself.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/projectdiscovery/utils/errkit"
	fileutil "github.com/projectdiscovery/utils/file"

	rangecomine "github.com/colomine/rangecomine"
)

// patternKeySepByte is rangecomine's Pattern.Key() separator. Rejecting it
// here keeps the id/feature alphabet disjoint from the separator so
// Pattern.Key() never collides across distinct patterns.
const patternKeySepByte = '\x1f'

// ErrInvalidRow reports a CSV row that failed validation: empty id,
// empty feature, non-finite coordinate, or a duplicate id.
var ErrInvalidRow = errkit.New("invalid csv row")

// LoadCSV reads a "id,feature,x,y" header CSV file into objects. Every
// row must carry a non-empty id and feature and finite coordinates; ids
// must be unique across the file.
func LoadCSV(path string) ([]rangecomine.Object, error) {
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("csv file does not exist: %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()
	return loadCSV(f)
}

func loadCSV(r io.Reader) ([]rangecomine.Object, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var objects []rangecomine.Object
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row %d: %w", line+1, err)
		}
		line++

		obj, err := parseRow(record, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w: %v", line, ErrInvalidRow, err)
		}
		if _, ok := seen[obj.ID]; ok {
			return nil, fmt.Errorf("row %d: %w: duplicate id %q", line, ErrInvalidRow, obj.ID)
		}
		seen[obj.ID] = struct{}{}
		objects = append(objects, obj)
	}
	return objects, nil
}

type columns struct {
	id, feature, x, y int
}

func columnIndex(header []string) (columns, error) {
	cols := columns{id: -1, feature: -1, x: -1, y: -1}
	for i, h := range header {
		switch h {
		case "id":
			cols.id = i
		case "feature":
			cols.feature = i
		case "x":
			cols.x = i
		case "y":
			cols.y = i
		}
	}
	if cols.id < 0 || cols.feature < 0 || cols.x < 0 || cols.y < 0 {
		return columns{}, fmt.Errorf("%w: header must contain id, feature, x, y columns, got %v", ErrInvalidRow, header)
	}
	return cols, nil
}

func parseRow(record []string, cols columns) (rangecomine.Object, error) {
	id := record[cols.id]
	feature := record[cols.feature]
	if id == "" {
		return rangecomine.Object{}, fmt.Errorf("empty id")
	}
	if feature == "" {
		return rangecomine.Object{}, fmt.Errorf("empty feature")
	}
	if strings.ContainsRune(id, patternKeySepByte) {
		return rangecomine.Object{}, fmt.Errorf("id %q contains reserved separator byte", id)
	}
	if strings.ContainsRune(feature, patternKeySepByte) {
		return rangecomine.Object{}, fmt.Errorf("feature %q contains reserved separator byte", feature)
	}
	x, err := strconv.ParseFloat(record[cols.x], 64)
	if err != nil || math.IsInf(x, 0) || math.IsNaN(x) {
		return rangecomine.Object{}, fmt.Errorf("invalid x coordinate %q", record[cols.x])
	}
	y, err := strconv.ParseFloat(record[cols.y], 64)
	if err != nil || math.IsInf(y, 0) || math.IsNaN(y) {
		return rangecomine.Object{}, fmt.Errorf("invalid y coordinate %q", record[cols.y])
	}
	return rangecomine.Object{ID: id, Feature: feature, X: x, Y: y}, nil
}

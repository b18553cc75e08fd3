package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "points.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTempCSV(t, "id,feature,x,y\no1,A,0,0\no2,A,1,1\no3,B,2,2\n")
	objects, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, objects, 3)
	require.Equal(t, "o1", objects[0].ID)
	require.Equal(t, "A", objects[0].Feature)
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestLoadCSV_DuplicateID(t *testing.T) {
	path := writeTempCSV(t, "id,feature,x,y\no1,A,0,0\no1,B,1,1\n")
	_, err := LoadCSV(path)
	require.ErrorIs(t, err, ErrInvalidRow)
}

func TestLoadCSV_EmptyFeature(t *testing.T) {
	path := writeTempCSV(t, "id,feature,x,y\no1,,0,0\n")
	_, err := LoadCSV(path)
	require.ErrorIs(t, err, ErrInvalidRow)
}

func TestLoadCSV_NonFiniteCoordinate(t *testing.T) {
	path := writeTempCSV(t, "id,feature,x,y\no1,A,NaN,0\n")
	_, err := LoadCSV(path)
	require.ErrorIs(t, err, ErrInvalidRow)
}

func TestLoadCSV_FeatureContainsSeparatorByte(t *testing.T) {
	path := writeTempCSV(t, "id,feature,x,y\no1,A\x1fB,0,0\n")
	_, err := LoadCSV(path)
	require.ErrorIs(t, err, ErrInvalidRow)
}

func TestLoadCSV_IDContainsSeparatorByte(t *testing.T) {
	path := writeTempCSV(t, "id,feature,x,y\no1\x1f,A,0,0\n")
	_, err := LoadCSV(path)
	require.ErrorIs(t, err, ErrInvalidRow)
}

func TestLoadCSV_MissingColumn(t *testing.T) {
	path := writeTempCSV(t, "id,feature,x\no1,A,0\n")
	_, err := LoadCSV(path)
	require.ErrorIs(t, err, ErrInvalidRow)
}

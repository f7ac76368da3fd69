package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadIndicators(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeFile(t, "ok.csv",
			"Governorate,Poverty_Rate,Population\nTunis,4.6,1056247\nKasserine,32.8,439243\n")

		records, err := LoadIndicators(path, CSVOptions{})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Tunis", records[0].Governorate)
		assert.Equal(t, 4.6, records[0].PovertyRate)
		assert.Equal(t, int64(1056247), records[0].Population)
		assert.Equal(t, "Kasserine", records[1].Governorate)
	})

	t.Run("accepts Name as the key column", func(t *testing.T) {
		path := writeFile(t, "name.csv", "Name,Poverty_Rate\nTunis,4.6\n")

		records, err := LoadIndicators(path, CSVOptions{})
		require.NoError(t, err)
		assert.Equal(t, "Tunis", records[0].Governorate)
	})

	t.Run("population column is optional", func(t *testing.T) {
		path := writeFile(t, "nopop.csv", "Governorate,Poverty_Rate\nTunis,4.6\n")

		records, err := LoadIndicators(path, CSVOptions{})
		require.NoError(t, err)
		assert.Zero(t, records[0].Population)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadIndicators(filepath.Join(t.TempDir(), "absent.csv"), CSVOptions{})
		var missing *MissingFileError
		require.ErrorAs(t, err, &missing)
		assert.Contains(t, missing.Path, "absent.csv")
	})

	t.Run("missing required column", func(t *testing.T) {
		path := writeFile(t, "nocol.csv", "Governorate,Population\nTunis,1056247\n")

		_, err := LoadIndicators(path, CSVOptions{})
		var malformed *MalformedDataError
		require.ErrorAs(t, err, &malformed)
		assert.Contains(t, malformed.Error(), "Poverty_Rate")
	})

	t.Run("non-numeric rate", func(t *testing.T) {
		path := writeFile(t, "badrate.csv", "Governorate,Poverty_Rate\nTunis,n/a\n")

		_, err := LoadIndicators(path, CSVOptions{})
		var malformed *MalformedDataError
		require.ErrorAs(t, err, &malformed)
		assert.Contains(t, malformed.Error(), "non-numeric poverty rate")
	})

	t.Run("rate out of range", func(t *testing.T) {
		path := writeFile(t, "range.csv", "Governorate,Poverty_Rate\nTunis,104.0\n")

		_, err := LoadIndicators(path, CSVOptions{})
		var malformed *MalformedDataError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("duplicate governorate key", func(t *testing.T) {
		path := writeFile(t, "dup.csv", "Governorate,Poverty_Rate\nTunis,4.6\nTunis,5.0\n")

		_, err := LoadIndicators(path, CSVOptions{})
		var malformed *MalformedDataError
		require.ErrorAs(t, err, &malformed)
		assert.Contains(t, malformed.Error(), "duplicate governorate Tunis")
	})

	t.Run("all violations reported together", func(t *testing.T) {
		path := writeFile(t, "multi.csv",
			"Governorate,Poverty_Rate\nTunis,n/a\n,12.0\nKasserine,oops\n")

		_, err := LoadIndicators(path, CSVOptions{})
		var malformed *MalformedDataError
		require.ErrorAs(t, err, &malformed)
		assert.Len(t, malformed.Reasons, 3)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "empty.csv", "")

		_, err := LoadIndicators(path, CSVOptions{})
		var malformed *MalformedDataError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("header only", func(t *testing.T) {
		path := writeFile(t, "headeronly.csv", "Governorate,Poverty_Rate\n")

		_, err := LoadIndicators(path, CSVOptions{})
		var malformed *MalformedDataError
		require.ErrorAs(t, err, &malformed)
		assert.Contains(t, malformed.Error(), "no indicator rows")
	})

	t.Run("custom delimiter", func(t *testing.T) {
		path := writeFile(t, "semi.csv", "Governorate;Poverty_Rate\nTunis;4.6\n")

		records, err := LoadIndicators(path, CSVOptions{Delimiter: ';'})
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}

package loader

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/datalab-tn/povmap/internal/model"
)

// Column names accepted in the indicator file. The governorate column also
// accepts "Name", which some exports of the source dataset use.
const (
	colGovernorate = "governorate"
	colName        = "name"
	colPovertyRate = "poverty_rate"
	colPopulation  = "population"
)

// CSVOptions configures the indicator file parser.
type CSVOptions struct {
	Delimiter rune // default ','
	Comment   rune // comment character (0 = none)
}

// LoadIndicators reads the delimited indicator file and returns one record
// per governorate, in file order. It fails with *MissingFileError if the
// path does not exist and *MalformedDataError on any schema violation; all
// violations found are reported together.
func LoadIndicators(path string, opts CSVOptions) ([]model.IndicatorRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, eris.Wrapf(err, "loader: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	if opts.Comment != 0 {
		reader.Comment = opts.Comment
	}
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &MalformedDataError{Path: path, Reasons: []string{"file is empty"}}
	}
	if err != nil {
		return nil, eris.Wrapf(err, "loader: read header of %s", path)
	}

	govIdx, rateIdx, popIdx := -1, -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case colGovernorate, colName:
			govIdx = i
		case colPovertyRate:
			rateIdx = i
		case colPopulation:
			popIdx = i
		}
	}

	var reasons []string
	if govIdx < 0 {
		reasons = append(reasons, "missing required column Governorate")
	}
	if rateIdx < 0 {
		reasons = append(reasons, "missing required column Poverty_Rate")
	}
	if len(reasons) > 0 {
		return nil, &MalformedDataError{Path: path, Reasons: reasons}
	}

	var records []model.IndicatorRecord
	seen := make(map[string]int)
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "loader: read row of %s", path)
		}
		line++

		gov := strings.TrimSpace(field(row, govIdx))
		if gov == "" {
			reasons = append(reasons, rowReason(line, "empty governorate key"))
			continue
		}
		if prev, dup := seen[gov]; dup {
			reasons = append(reasons, rowReason(line, "duplicate governorate "+gov+" (first at line "+strconv.Itoa(prev)+")"))
			continue
		}
		seen[gov] = line

		rate, err := strconv.ParseFloat(strings.TrimSpace(field(row, rateIdx)), 64)
		if err != nil {
			reasons = append(reasons, rowReason(line, "non-numeric poverty rate for "+gov))
			continue
		}
		if rate < 0 || rate > 100 {
			reasons = append(reasons, rowReason(line, "poverty rate out of range for "+gov))
			continue
		}

		rec := model.IndicatorRecord{Governorate: gov, PovertyRate: rate}
		if popIdx >= 0 {
			raw := strings.TrimSpace(field(row, popIdx))
			if raw != "" {
				pop, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					reasons = append(reasons, rowReason(line, "non-numeric population for "+gov))
					continue
				}
				rec.Population = pop
			}
		}
		records = append(records, rec)
	}

	if len(reasons) > 0 {
		return nil, &MalformedDataError{Path: path, Reasons: reasons}
	}
	if len(records) == 0 {
		return nil, &MalformedDataError{Path: path, Reasons: []string{"no indicator rows"}}
	}

	zap.L().Info("indicator table loaded",
		zap.String("path", path),
		zap.Int("records", len(records)),
	)
	return records, nil
}

func field(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func rowReason(line int, msg string) string {
	return "line " + strconv.Itoa(line) + ": " + msg
}

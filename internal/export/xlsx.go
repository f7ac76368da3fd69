package export

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/datalab-tn/povmap/internal/model"
)

// WriteXLSX writes the snapshot as a two-sheet workbook: one row per
// governorate (with rank and bin) and one row per region.
func WriteXLSX(snap *model.Snapshot, path string) error {
	file := xlsx.NewFile()

	govSheet, err := file.AddSheet("Governorates")
	if err != nil {
		return eris.Wrap(err, "export: add governorates sheet")
	}
	addHeader(govSheet, "Governorate", "Region", "Poverty Rate (%)", "Population", "Rank", "Bin")

	rankOf := make(map[string]int, len(snap.National.Rankings))
	for _, r := range snap.National.Rankings {
		rankOf[r.Governorate] = r.Rank
	}
	for _, jf := range snap.Features {
		row := govSheet.AddRow()
		row.AddCell().SetString(jf.Record.Governorate)
		row.AddCell().SetString(jf.Record.Region)
		row.AddCell().SetFloatWithFormat(jf.Record.PovertyRate, "0.0")
		row.AddCell().SetInt64(jf.Record.Population)
		row.AddCell().SetInt(rankOf[jf.Record.Governorate])
		row.AddCell().SetInt(jf.Bin)
	}

	regionSheet, err := file.AddSheet("Regions")
	if err != nil {
		return eris.Wrap(err, "export: add regions sheet")
	}
	addHeader(regionSheet, "Region", "Governorates", "Mean (%)", "Median (%)", "Min (%)", "Max (%)", "Std Dev", "Population")
	for _, rs := range snap.Regions {
		row := regionSheet.AddRow()
		row.AddCell().SetString(rs.Region)
		row.AddCell().SetString(strings.Join(rs.Governorates, ", "))
		row.AddCell().SetFloatWithFormat(rs.Mean, "0.0")
		row.AddCell().SetFloatWithFormat(rs.Median, "0.0")
		row.AddCell().SetFloatWithFormat(rs.Min, "0.0")
		row.AddCell().SetFloatWithFormat(rs.Max, "0.0")
		row.AddCell().SetFloatWithFormat(rs.StdDev, "0.00")
		row.AddCell().SetString(strconv.FormatInt(rs.Population, 10))
	}

	if err := file.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}

func addHeader(sheet *xlsx.Sheet, cols ...string) {
	row := sheet.AddRow()
	for _, c := range cols {
		row.AddCell().SetString(c)
	}
}

package persistence

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sanops/zonectl/internal/domain"
	"github.com/sanops/zonectl/internal/domain/entity"
	"github.com/sanops/zonectl/internal/validation"
)

// DeviceColumns is the header of the device table. Column order is fixed;
// WWNN is optional and documentation only.
var DeviceColumns = []string{"Node", "I/f", "Subif", "Fabric", "I/T", "WWPN", "WWNN"}

const deviceMinColumns = 6

// LoadDevices reads the administrator-maintained device table. The first row
// is assumed to be a header and skipped; rows with an empty node column are
// treated as blank lines. Fields are normalized here (trimmed, fabric and
// role upper-cased, WWN text lower-cased) so validation sees canonical text.
// Malformed rows go into the report and reading continues, so one bad row
// does not hide problems further down the table.
func LoadDevices(path string) ([]entity.DeviceRecord, *validation.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrTableReadFailed, err)
	}
	defer f.Close()

	return readDevices(path, f)
}

func readDevices(source string, r io.Reader) ([]entity.DeviceRecord, *validation.Report, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	report := validation.NewReport(source)
	var records []entity.DeviceRecord
	row := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", domain.ErrTableParseFailed, err)
		}
		row++
		if row == 1 {
			continue
		}
		if len(fields) == 0 || strings.TrimSpace(fields[0]) == "" {
			continue
		}
		if len(fields) < deviceMinColumns {
			report.Errorf(row, "row", "row has %d columns, want at least %d",
				len(fields), deviceMinColumns)
			continue
		}

		rec := entity.DeviceRecord{
			Node:         strings.TrimSpace(fields[0]),
			Interface:    strings.TrimSpace(fields[1]),
			SubInterface: strings.TrimSpace(fields[2]),
			Fabric:       strings.ToUpper(strings.TrimSpace(fields[3])),
			Role:         strings.ToUpper(strings.TrimSpace(fields[4])),
			WWPN:         strings.ToLower(strings.TrimSpace(fields[5])),
			Row:          row,
		}
		if len(fields) > 6 {
			rec.WWNN = strings.ToLower(strings.TrimSpace(fields[6]))
		}
		records = append(records, rec)
	}

	return records, report, nil
}

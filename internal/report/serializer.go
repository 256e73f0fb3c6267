package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/storepulse/store-monitor/internal/core/uptime"
)

// Columns is the report header, in output order.
var Columns = []string{
	"store_id",
	"uptime_last_hour",
	"uptime_last_day",
	"downtime_last_hour",
	"downtime_last_day",
	"downtime_last_week",
}

// SerializeCSV renders one row per store under the Columns header.
// Numbers are the shortest plain decimal that round-trips, with no exponent.
func SerializeCSV(stores []uptime.StoreResult) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Columns); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, s := range stores {
		row := []string{
			s.StoreID,
			formatNumber(s.UptimeLastHour),
			formatNumber(s.UptimeLastDay),
			formatNumber(s.DowntimeLastHour),
			formatNumber(s.DowntimeLastDay),
			formatNumber(s.DowntimeLastWeek),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write csv row for store %s: %w", s.StoreID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return buf.String(), nil
}

func formatNumber(v float64) string {
	return decimal.NewFromFloat(v).String()
}

package report

import (
	"bytes"
	"testing"

	"github.com/storepulse/store-monitor/internal/core/uptime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSerializeCSV(t *testing.T) {
	csv, err := SerializeCSV([]uptime.StoreResult{
		{StoreID: "a", UptimeLastHour: 20, UptimeLastDay: 0.5, DowntimeLastHour: 40, DowntimeLastDay: 0.25, DowntimeLastWeek: 1.75, UptimeLastWeek: 99},
		{StoreID: "b"},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"store_id,uptime_last_hour,uptime_last_day,downtime_last_hour,downtime_last_day,downtime_last_week\n"+
			"a,20,0.5,40,0.25,1.75\n"+
			"b,0,0,0,0,0\n",
		csv)
}

func TestSerializeCSV_HeaderOnlyWhenNoStores(t *testing.T) {
	csv, err := SerializeCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "store_id,uptime_last_hour,uptime_last_day,downtime_last_hour,downtime_last_day,downtime_last_week\n", csv)
}

func TestFormatNumber_NoExponent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{60, "60"},
		{1.0 / 3.0, "0.3333333333333333"},
		{0.0000001, "0.0000001"},
		{12345678.5, "12345678.5"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, formatNumber(tc.in))
	}
}

func TestRenderXLSX(t *testing.T) {
	payload := "store_id,uptime_last_hour,uptime_last_day,downtime_last_hour,downtime_last_day,downtime_last_week\n" +
		"a,20,0.5,40,0.25,1.75\n"

	book, err := RenderXLSX(payload)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(book))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, []string{"a", "20", "0.5", "40", "0.25", "1.75"}, rows[1])
}

func TestRenderXLSX_EmptyPayloadWritesHeader(t *testing.T) {
	book, err := RenderXLSX("")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(book))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Columns, rows[0])
}

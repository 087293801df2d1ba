package report_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AstroAir/lucide-gallery/pkg/logging"
	"github.com/AstroAir/lucide-gallery/pkg/report"
)

func TestReportRecordsEntries(t *testing.T) {
	logging.DisableLoggingForTest(t)
	stamp := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	r := report.NewReporter(report.WithClock(func() time.Time { return stamp }))

	r.Report("persistence", fmt.Errorf("disk full"))
	r.Report("catalog", fmt.Errorf("bad document"))

	entries := r.History()
	require.Len(t, entries, 2)
	assert.Equal(t, "persistence", entries[0].Component)
	assert.EqualError(t, entries[0].Err, "disk full")
	assert.Equal(t, stamp, entries[0].Time)
	assert.Equal(t, "catalog", entries[1].Component)
}

func TestReportIgnoresNilError(t *testing.T) {
	r := report.NewReporter()
	r.Report("persistence", nil)
	assert.Zero(t, r.Len())
}

func TestHistoryBound(t *testing.T) {
	logging.DisableLoggingForTest(t)
	r := report.NewReporter(report.WithHistoryLimit(3))

	for i := 0; i < 5; i++ {
		r.Report("loop", fmt.Errorf("error %d", i))
	}

	entries := r.History()
	require.Len(t, entries, 3)
	assert.EqualError(t, entries[0].Err, "error 2")
	assert.EqualError(t, entries[2].Err, "error 4")
}

func TestClear(t *testing.T) {
	logging.DisableLoggingForTest(t)
	r := report.NewReporter()
	r.Report("persistence", fmt.Errorf("boom"))
	require.Equal(t, 1, r.Len())

	r.Clear()
	assert.Zero(t, r.Len())
	assert.Empty(t, r.History())
}

func TestNilReporterIsSafe(t *testing.T) {
	logging.DisableLoggingForTest(t)
	var r *report.Reporter
	r.Report("persistence", fmt.Errorf("boom"))
	assert.Zero(t, r.Len())
	assert.Nil(t, r.History())
	r.Clear()
}

func TestHistoryReturnsCopy(t *testing.T) {
	logging.DisableLoggingForTest(t)
	r := report.NewReporter()
	r.Report("persistence", fmt.Errorf("boom"))

	entries := r.History()
	entries[0].Component = "mutated"

	assert.Equal(t, "persistence", r.History()[0].Component)
}

package cli

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/recruit/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleApplications() []models.Application {
	score := 0.92
	return []models.Application{
		{ID: "a1", JobID: "j1", JobTitle: "Go Dev", CandidateName: "Ann Lee", CandidateEmail: "ann@x.io",
			Status: models.ApplicationShortlisted, Score: &score, AppliedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		{ID: "a2", JobID: "j2", JobTitle: "SRE", CandidateName: "Bo, Jr.", Status: models.ApplicationPending},
	}
}

func TestCandidates_FilterByJob(t *testing.T) {
	be := &fakeBackend{apps: sampleApplications()}
	a, out := newTestApp(t, employerStore(), be, "")

	require.NoError(t, a.execute(context.Background(), "candidates", []string{"j2"}))

	assert.Contains(t, out.String(), "SRE")
	assert.NotContains(t, out.String(), "Ann Lee")
}

func TestSetStatus(t *testing.T) {
	be := &fakeBackend{}
	a, out := newTestApp(t, employerStore(), be, "")

	require.NoError(t, a.execute(context.Background(), "set-status", []string{"a1", "hired"}))
	assert.Equal(t, "a1", be.statusID)
	assert.Equal(t, models.ApplicationHired, be.status)
	assert.Contains(t, out.String(), "Application a1 is now hired.")

	require.Error(t, a.execute(context.Background(), "set-status", []string{"a1", "promoted"}))
	err := a.execute(context.Background(), "set-status", []string{"a1"})
	assert.Equal(t, "Usage: set-status <application id> <status>", describeError(err))
}

func TestExportCandidates_File(t *testing.T) {
	be := &fakeBackend{apps: sampleApplications()}
	a, out := newTestApp(t, employerStore(), be, "")
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, a.execute(context.Background(), "export-candidates", []string{path}))
	assert.Contains(t, out.String(), "Exported 2 applications")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{"a1", "j1", "Go Dev", "Ann Lee", "ann@x.io", "shortlisted", "0.92", "2026-03-01T10:00:00Z"}, records[1])
	assert.Equal(t, []string{"a2", "j2", "SRE", "Bo, Jr.", "", "pending", "", ""}, records[2])
}

func TestExportCandidates_StdoutWithJobFilter(t *testing.T) {
	be := &fakeBackend{apps: sampleApplications()}
	a, out := newTestApp(t, employerStore(), be, "")

	require.NoError(t, a.execute(context.Background(), "export-candidates", []string{"-", "j1"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "a1,j1,"))
}

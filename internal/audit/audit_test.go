package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalsafoundry/pothi/internal/compiler"
)

func TestAuditor_SaveReport(t *testing.T) {
	auditDir := filepath.Join(t.TempDir(), "reports")
	auditor := NewAuditor(auditDir)

	report := &compiler.Report{
		RunID:     "0b1f6a52-aaaa-bbbb-cccc-000000000001",
		StartedAt: time.Now().Add(-time.Second),
		Artifacts: 12,
		Warnings: []compiler.IntegrityWarning{
			{Bani: "Japji Sahib", LineGroup: 1, Missing: []int{4}},
		},
	}

	filename, err := auditor.SaveReport(report)

	require.NoError(t, err)
	assert.Equal(t, report.RunID+".json", filename)

	data, err := os.ReadFile(filepath.Join(auditDir, filename))
	require.NoError(t, err)

	var saved compiler.Report
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, report.RunID, saved.RunID)
	assert.Equal(t, 12, saved.Artifacts)
	require.Len(t, saved.Warnings, 1)
	assert.Equal(t, "Japji Sahib", saved.Warnings[0].Bani)
}

func TestAuditor_SaveReportCreatesDirectory(t *testing.T) {
	auditDir := filepath.Join(t.TempDir(), "nested", "audit")
	auditor := NewAuditor(auditDir)

	_, err := auditor.SaveReport(&compiler.Report{RunID: "run-x"})

	require.NoError(t, err)
	info, err := os.Stat(auditDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

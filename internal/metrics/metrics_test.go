package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounts(t *testing.T) {
	r := New()
	r.Action("add_participant", "ok")
	r.Action("add_participant", "ok")
	r.Action("add_participant", "rejected")
	r.ValidationError("duplicate_name")
	r.Transition("collect_names", "collect_bills")
	r.PersistFailure("names")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.actions.WithLabelValues("add_participant", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.validationErrs.WithLabelValues("duplicate_name")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.transitions.WithLabelValues("collect_names", "collect_bills")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.persistFailures.WithLabelValues("names")))
}

func TestWriteTextfile(t *testing.T) {
	r := New()
	r.Action("restart", "ok")

	path := filepath.Join(t.TempDir(), "splitwizard.prom")
	require.NoError(t, r.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `splitwizard_actions_total{action="restart",result="ok"} 1`), string(raw))
}

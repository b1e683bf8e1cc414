package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"galaxy-classify/internal/config"
	"galaxy-classify/internal/quickcode"
	"galaxy-classify/internal/store"
)

func sample() []store.Classification {
	return []store.Classification{{
		User:     "vera",
		GalaxyID: "UDG-1",
		Flags: quickcode.Flags{
			LSB:           quickcode.Some(1),
			Morphology:    quickcode.Some(2),
			Awesome:       true,
			ValidRedshift: true,
			FailedFitting: true,
		},
		Comments:  "tidal feature",
		TimeSpent: 4200 * time.Millisecond,
		UpdatedAt: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
	}}
}

func TestRecordsRenderCodeUnderSettings(t *testing.T) {
	all := config.Settings{Mode: quickcode.Checkbox, Visibility: quickcode.AllVisible}
	recs := Records(sample(), all)
	require.Len(t, recs, 1)
	assert.Equal(t, "12raf", recs[0].Code)
	assert.Equal(t, int64(4200), recs[0].TimeSpentMS)
	assert.Equal(t, "2024-05-06T07:08:09Z", recs[0].UpdatedAt)

	legacy := config.Settings{Mode: quickcode.Legacy, Visibility: quickcode.Visibility{ShowValidRedshift: true}}
	assert.Equal(t, "12r", Records(sample(), legacy)[0].Code)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	recs := Records(sample(), config.Settings{Visibility: quickcode.AllVisible})
	recs[0].Morphology = quickcode.None
	require.NoError(t, Write(&buf, recs, "json"))

	var back []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back, 1)
	assert.Equal(t, "UDG-1", back[0]["galaxy_id"])
	assert.Equal(t, float64(1), back[0]["lsb_class"])
	assert.Nil(t, back[0]["morphology"])
	assert.Equal(t, true, back[0]["awesome_flag"])
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Records(sample(), config.Settings{Visibility: quickcode.AllVisible}), "YAML"))

	var back []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back, 1)
	assert.Equal(t, "vera", back[0]["user"])
	assert.Equal(t, 2, back[0]["morphology"])
	assert.Equal(t, "tidal feature", back[0]["comments"])
}

func TestWriteEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, "json"))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.ErrorContains(t, Write(&bytes.Buffer{}, nil, "csv"), "unknown export format")
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaterQualityHistorySplitsLatestReading(t *testing.T) {
	older := WaterQualityReading{ID: 1, RecordedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	newest := WaterQualityReading{ID: 2, RecordedAt: time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)}
	middle := WaterQualityReading{ID: 3, RecordedAt: time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)}

	resp := NewWaterQualityHistory([]WaterQualityReading{older, newest, middle})

	require.NotNil(t, resp.Latest)
	assert.Equal(t, uint(2), resp.Latest.ID)
	require.Len(t, resp.History, 2)
	assert.Equal(t, uint(1), resp.History[0].ID)
	assert.Equal(t, uint(3), resp.History[1].ID)

	assert.Equal(t, "7.2 - 7.6", resp.IdealRanges.PH)
	assert.Equal(t, "1.0 - 3.0 ppm", resp.IdealRanges.Chlorine)
	assert.Equal(t, "26.0 - 30.0°C", resp.IdealRanges.Temperature)
}

func TestWaterQualityHistoryEmpty(t *testing.T) {
	resp := NewWaterQualityHistory(nil)

	assert.Nil(t, resp.Latest)
	require.NotNil(t, resp.History)
	assert.Empty(t, resp.History)
	assert.NotEmpty(t, resp.IdealRanges.PH)
}

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStream(t *testing.T) {
	for _, s := range Streams {
		parsed, err := ParseStream(" " + s.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseStream("photos")
	assert.ErrorIs(t, err, ErrInvalidStream)
	assert.False(t, Stream(0).Valid())
	assert.Equal(t, "stream(9)", Stream(9).String())
}

func TestParsePriority(t *testing.T) {
	tests := map[string]Priority{
		"":        PriorityNone,
		"safe":    PrioritySafe,
		"WARNING": PriorityWarning,
		"danger":  PriorityDanger,
	}
	for in, want := range tests {
		got, err := ParsePriority(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePriority("critical")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestQueueStatus_JSONUsesStreamNames(t *testing.T) {
	status := NewQueueStatus()
	status[StreamAlerts] = StreamStatus{Count: 1, Items: []QueueItem{}}

	raw, err := json.Marshal(status)
	require.NoError(t, err)

	var decoded QueueStatus
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 1, decoded[StreamAlerts].Count)
	assert.Len(t, decoded, len(Streams))
	assert.Contains(t, string(raw), `"preferences"`)
}

func TestQueueStatus_Indicator(t *testing.T) {
	status := NewQueueStatus()
	assert.Equal(t, "Up to date", status.Indicator(true))
	assert.Equal(t, "Offline", status.Indicator(false))

	status[StreamTimeline] = StreamStatus{Count: 1}
	assert.Equal(t, "1 item queued", status.Indicator(true))

	status[StreamSnapshots] = StreamStatus{Count: 4}
	assert.Equal(t, "5 items queued", status.Indicator(true))
	assert.Equal(t, 4, status.Counts()[StreamSnapshots])
}

func TestSyncPreferences_AllowsAutoSync(t *testing.T) {
	tests := []struct {
		name  string
		prefs SyncPreferences
		state DeviceState
		want  bool
	}{
		{name: "online with auto sync", prefs: SyncPreferences{AutoSync: true}, state: DeviceState{Online: true}, want: true},
		{name: "offline", prefs: SyncPreferences{AutoSync: true}, state: DeviceState{}, want: false},
		{name: "auto sync disabled", prefs: SyncPreferences{}, state: DeviceState{Online: true}, want: false},
		{name: "wifi only on cellular", prefs: SyncPreferences{AutoSync: true, WiFiOnly: true}, state: DeviceState{Online: true}, want: false},
		{name: "wifi only on wifi", prefs: SyncPreferences{AutoSync: true, WiFiOnly: true}, state: DeviceState{Online: true, OnWiFi: true}, want: true},
		{name: "battery saver blocks", prefs: SyncPreferences{AutoSync: true}, state: DeviceState{Online: true, BatterySaver: true}, want: false},
		{name: "battery saver allowed", prefs: SyncPreferences{AutoSync: true, BatterySaverSync: true}, state: DeviceState{Online: true, BatterySaver: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.prefs.AllowsAutoSync(tt.state))
		})
	}
}

func TestSyncResults_AddAndMerge(t *testing.T) {
	var results SyncResults
	results.Add(StreamAlerts, StreamResult{Delivered: 2, Retried: 1})
	results.Add(StreamTimeline, StreamResult{Exhausted: 1})

	var other SyncResults
	other.Add(StreamAlerts, StreamResult{Delivered: 1})
	results.Merge(other)

	assert.Equal(t, 3, results.Successful)
	assert.Equal(t, 2, results.Failed)
	assert.Equal(t, StreamResult{Delivered: 3, Retried: 1}, results.Streams[StreamAlerts])
}

func TestQueueItem_OrderingAndIdempotencyKey(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a := QueueItem{ID: 2, Stream: StreamSnapshots, EnqueuedAt: base}
	b := QueueItem{ID: 1, Stream: StreamSnapshots, EnqueuedAt: base.Add(time.Second)}
	c := QueueItem{ID: 3, Stream: StreamSnapshots, EnqueuedAt: base}

	assert.True(t, a.Before(b))
	assert.True(t, a.Before(c))
	assert.False(t, c.Before(a))

	retried := a
	retried.RetryCount = 2
	assert.Equal(t, a.IdempotencyKey(), retried.IdempotencyKey())
	assert.NotEqual(t, a.IdempotencyKey(), c.IdempotencyKey())
}

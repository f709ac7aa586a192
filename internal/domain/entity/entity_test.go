package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProximityProfile_IsActiveHour(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		active     []int
		inactive   []int
	}{
		{name: "daytime window", start: 8, end: 22, active: []int{8, 12, 21}, inactive: []int{7, 22, 23, 0}},
		{name: "wraps through midnight", start: 22, end: 6, active: []int{22, 23, 0, 5}, inactive: []int{6, 12, 21}},
		{name: "equal bounds cover the day", start: 9, end: 9, active: []int{0, 9, 23}},
		{name: "ends at midnight", start: 18, end: 0, active: []int{18, 23}, inactive: []int{0, 17}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &ProximityProfile{ActiveStartHour: tt.start, ActiveEndHour: tt.end}
			for _, h := range tt.active {
				assert.True(t, p.IsActiveHour(h), "hour %d", h)
			}
			for _, h := range tt.inactive {
				assert.False(t, p.IsActiveHour(h), "hour %d", h)
			}
		})
	}
}

func TestProximityProfile_LocalHour(t *testing.T) {
	ts := time.Date(2026, 3, 1, 20, 30, 0, 0, time.UTC)

	withZone := &ProximityProfile{TimeZone: "Asia/Tokyo"}
	assert.Equal(t, 5, withZone.LocalHour(ts, time.UTC))

	unknownZone := &ProximityProfile{TimeZone: "Mars/Olympus"}
	assert.Equal(t, 20, unknownZone.LocalHour(ts, time.UTC))

	noZone := &ProximityProfile{}
	assert.Equal(t, 20, noZone.LocalHour(ts, nil))
}

func TestMatchKey(t *testing.T) {
	id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")
	assert.Equal(t, "0f8fad5b-d9cb-469f-a165-70867728950e|Milk", MatchKey(id, "Milk"))
}

func TestDevice_Deliverable(t *testing.T) {
	var missing *Device
	assert.False(t, missing.Deliverable())
	assert.False(t, (&Device{IsActive: false, FCMToken: "t"}).Deliverable())
	assert.False(t, (&Device{IsActive: true}).Deliverable())
	assert.True(t, (&Device{IsActive: true, FCMToken: "t"}).Deliverable())
}

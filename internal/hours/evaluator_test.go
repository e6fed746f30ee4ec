package hours

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/motoportal-api/internal/config"
	"github.com/aanand-mishra/motoportal-api/internal/types"
)

func TestEvaluatorUsesTimezone(t *testing.T) {
	// 04:00 UTC on Monday is 09:00 in Yekaterinburg (UTC+5).
	now := time.Date(2024, time.April, 15, 4, 0, 0, 0, time.UTC)

	ev, err := FromConfig(config.Hours{Timezone: "Asia/Yekaterinburg"}, func() time.Time { return now })
	require.NoError(t, err)

	school := types.Listing{Kind: types.KindSchool, Hours: text("09:00-18:00")}
	assert.True(t, ev.Status(school).Open)
	assert.Equal(t, 9, ev.Now().Hour())

	utc := NewEvaluator(nil, time.UTC, func() time.Time { return now })
	assert.False(t, utc.Status(school).Open)
}

func TestFromConfigOverrides(t *testing.T) {
	cfg := config.Hours{
		Timezone:        "UTC",
		GateMinutePairs: true,
		School:          config.KindHours{Workdays: []int{1, 2, 3, 4, 5, 6}, Default: "08:00-20:00"},
	}

	ev, err := FromConfig(cfg, nil)
	require.NoError(t, err)

	school := ev.Policy(types.KindSchool)
	assert.Equal(t, MondayToSaturday, school.Workdays)
	assert.Equal(t, Range{480, 1200}, school.Default)
	assert.True(t, school.GateMinutePairs)

	service := ev.Policy(types.KindService)
	assert.Equal(t, ServicePolicy.Workdays, service.Workdays)
	assert.Equal(t, ServicePolicy.Default, service.Default)
	assert.True(t, service.GateMinutePairs)

	assert.Equal(t, GenericPolicy, ev.Policy("unknown"))
}

func TestFromConfigRejectsBadValues(t *testing.T) {
	_, err := FromConfig(config.Hours{Timezone: "UTC", Shop: config.KindHours{Workdays: []int{7}}}, nil)
	assert.Error(t, err)

	_, err = FromConfig(config.Hours{Timezone: "UTC", Service: config.KindHours{Default: "daytime"}}, nil)
	assert.Error(t, err)

	_, err = FromConfig(config.Hours{Timezone: "Mars/Olympus"}, nil)
	assert.Error(t, err)
}

func TestEvaluatorStatusAt(t *testing.T) {
	ev := NewEvaluator(nil, time.UTC, nil)
	shop := types.Listing{
		Kind:  types.KindShop,
		Hours: types.WorkingHours{OpenTime: intp(600), CloseTime: intp(1200)},
	}

	assert.True(t, ev.StatusAt(shop, at(14, 10, 0, 0)).Open)
	assert.False(t, ev.StatusAt(shop, at(14, 21, 0, 0)).Open)
	assert.Equal(t, time.UTC, ev.Location())
}

//go:build unit

package commands_test

import (
	"testing"

	"booking-calendar-sync/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSettings(t *testing.T) {
	t.Run("success: merges the patch and rebuilds availability", func(t *testing.T) {
		h := newHarness(t)
		dailyCap := 3
		closeAt := "17:00"

		doc, err := h.settingsCmds.UpdateSettings(t.Context(), commands.SettingsPatch{DailyCap: &dailyCap, CloseAt: &closeAt})
		require.NoError(t, err)

		assert.Equal(t, 3, doc.DailyCap)
		assert.Equal(t, "17:00", doc.CloseAt)
		assert.Equal(t, "09:00", doc.OpenAt, "fields not in the patch are kept")
		assert.Equal(t, []string{writeCalendar}, doc.ReadCalendarIDs)

		loaded, err := h.settings.Load(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 3, loaded.DailyCap)
		assert.Len(t, h.uow.AvailabilityRows(), 31+30)
	})

	t.Run("error: invalid settings are not stored", func(t *testing.T) {
		h := newHarness(t)
		anchors := []string{"07:00"}

		_, err := h.settingsCmds.UpdateSettings(t.Context(), commands.SettingsPatch{AnchorTimes: anchors})
		assert.Error(t, err)

		loaded, err := h.settings.Load(t.Context())
		require.NoError(t, err)
		assert.Equal(t, defaultDocument().AnchorTimes, loaded.Document().AnchorTimes)
		assert.Empty(t, h.uow.AvailabilityRows())
	})
}

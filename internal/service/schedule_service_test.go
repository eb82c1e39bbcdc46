package service

import (
	"testing"

	"placement_prep_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResolver(t *testing.T) {
	t.Run("both windows configured", func(t *testing.T) {
		resolver := buildResolver(&model.PlannerSettings{
			CollegeStart: "09:00", CollegeEnd: "17:00",
			WorkStart: "10:00", WorkEnd: "18:00",
		})
		require.NotNil(t, resolver.College)
		require.NotNil(t, resolver.Work)
		assert.Equal(t, 9*60, resolver.College.Start)
		assert.Equal(t, 17*60, resolver.College.End)
		assert.Equal(t, 18*60, resolver.Work.End)
	})

	t.Run("unset windows stay nil", func(t *testing.T) {
		resolver := buildResolver(&model.PlannerSettings{})
		assert.Nil(t, resolver.College)
		assert.Nil(t, resolver.Work)
	})

	t.Run("malformed window skipped", func(t *testing.T) {
		resolver := buildResolver(&model.PlannerSettings{
			CollegeStart: "9am", CollegeEnd: "17:00",
		})
		assert.Nil(t, resolver.College)
	})

	t.Run("inverted window skipped", func(t *testing.T) {
		resolver := buildResolver(&model.PlannerSettings{
			WorkStart: "18:00", WorkEnd: "09:00",
		})
		assert.Nil(t, resolver.Work)
	})
}

func TestValidateWindow(t *testing.T) {
	assert.NoError(t, validateWindow("", ""))
	assert.NoError(t, validateWindow("09:00", "17:00"))
	assert.Error(t, validateWindow("09:00", ""))
	assert.Error(t, validateWindow("17:00", "09:00"))
	assert.Error(t, validateWindow("25:00", "26:00"))
}

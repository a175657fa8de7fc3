package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	t.Run("fallbacks when unset", func(t *testing.T) {
		assert.Equal(t, "def", GetString("CAFE_TEST_UNSET_STRING", "def"))
		assert.Equal(t, 7, GetInt("CAFE_TEST_UNSET_INT", 7))
		assert.True(t, GetBool("CAFE_TEST_UNSET_BOOL", true))
		assert.Equal(t, time.Second, GetDuration("CAFE_TEST_UNSET_DURATION", time.Second))
	})

	t.Run("reads values", func(t *testing.T) {
		t.Setenv("CAFE_TEST_STRING", "mongo")
		t.Setenv("CAFE_TEST_INT", "42")
		t.Setenv("CAFE_TEST_BOOL", "false")
		t.Setenv("CAFE_TEST_DURATION", "12h")

		assert.Equal(t, "mongo", GetString("CAFE_TEST_STRING", ""))
		assert.Equal(t, 42, GetInt("CAFE_TEST_INT", 0))
		assert.False(t, GetBool("CAFE_TEST_BOOL", true))
		assert.Equal(t, 12*time.Hour, GetDuration("CAFE_TEST_DURATION", 0))
	})

	t.Run("malformed values fall back", func(t *testing.T) {
		t.Setenv("CAFE_TEST_INT", "forty")
		t.Setenv("CAFE_TEST_BOOL", "maybe")
		t.Setenv("CAFE_TEST_DURATION", "soon")

		assert.Equal(t, 3, GetInt("CAFE_TEST_INT", 3))
		assert.True(t, GetBool("CAFE_TEST_BOOL", true))
		assert.Equal(t, time.Minute, GetDuration("CAFE_TEST_DURATION", time.Minute))
	})
}

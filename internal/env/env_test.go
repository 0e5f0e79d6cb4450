package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	t.Setenv("FOLIO_TEST_STR", "value")
	assert.Equal(t, "value", GetString("FOLIO_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetString("FOLIO_TEST_STR_UNSET", "fallback"))
}

func TestGetIntInvalidFallsBack(t *testing.T) {
	t.Setenv("FOLIO_TEST_INT", "12")
	assert.Equal(t, 12, GetInt("FOLIO_TEST_INT", 3))

	t.Setenv("FOLIO_TEST_INT", "twelve")
	assert.Equal(t, 3, GetInt("FOLIO_TEST_INT", 3))
}

func TestGetBool(t *testing.T) {
	t.Setenv("FOLIO_TEST_BOOL", "false")
	assert.False(t, GetBool("FOLIO_TEST_BOOL", true))

	t.Setenv("FOLIO_TEST_BOOL", "maybe")
	assert.True(t, GetBool("FOLIO_TEST_BOOL", true))
}

func TestGetDuration(t *testing.T) {
	t.Setenv("FOLIO_TEST_DUR", "2s")
	assert.Equal(t, 2*time.Second, GetDuration("FOLIO_TEST_DUR", time.Minute))

	t.Setenv("FOLIO_TEST_DUR", "soon")
	assert.Equal(t, time.Minute, GetDuration("FOLIO_TEST_DUR", time.Minute))
}

func TestGetList(t *testing.T) {
	t.Setenv("FOLIO_TEST_LIST", " https://a.dev , ,https://b.dev")
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, GetList("FOLIO_TEST_LIST", nil))

	t.Setenv("FOLIO_TEST_LIST", " , ")
	assert.Equal(t, []string{"x"}, GetList("FOLIO_TEST_LIST", []string{"x"}))
}

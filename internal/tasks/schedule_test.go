package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSchedule(t *testing.T) {
	assert.NoError(t, ValidateSchedule("*/5 * * * *"))
	assert.NoError(t, ValidateSchedule("@every 30s"))
	assert.Error(t, ValidateSchedule("every five minutes"))
	assert.Error(t, ValidateSchedule("* * *"))
}

func TestNextRun(t *testing.T) {
	from := time.Date(2024, 3, 1, 10, 2, 30, 0, time.UTC)

	next, err := NextRun("*/5 * * * *", from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 5, 0, 0, time.UTC), next)

	_, err = NextRun("nope", from)
	assert.Error(t, err)
}

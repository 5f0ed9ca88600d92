package utils

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_MinMax(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 5))
	assert.Equal(2, Min(5, 2))
	assert.Equal(5, Max(2, 5))
	assert.Equal(-1.5, Min(-1.5, 0.0))
	assert.Equal(3, Abs(-3))
	assert.Equal(0.25, Abs(-0.25))
}

func TestUtils_Clamp(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0.0, Clamp(-4.2, 0, 255))
	assert.Equal(255.0, Clamp(300.0, 0, 255))
	assert.Equal(128.0, Clamp(128.0, 0, 255))
	assert.Equal(1, Clamp(1, 1, 1))
}

func TestUtils_Contains(t *testing.T) {
	assert.True(t, Contains([]string{"crayon", "ink"}, "ink"))
	assert.False(t, Contains([]string{"crayon", "ink"}, "oil"))
	assert.False(t, Contains(nil, 0))
}

func TestUtils_DecorateText(t *testing.T) {
	msg := DecorateText("saved", SuccessMessage)
	assert.True(t, strings.HasPrefix(msg, SuccessColor))
	assert.True(t, strings.HasSuffix(msg, DefaultColor))

	NoColor = true
	defer func() { NoColor = false }()
	assert.Equal(t, "saved", DecorateText("saved", ErrorMessage))
	NoColor = false
	assert.Equal(t, "saved", DecorateText("saved", MessageType(42)))
}

func TestUtils_FormatTime(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("250ms", FormatTime(250*time.Millisecond))
	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(2*time.Minute+5*time.Second))
	assert.Equal("1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
	assert.Equal("59m 59.50s", FormatTime(time.Hour-500*time.Millisecond))
	assert.Equal("2h 0m 0.00s", FormatTime(2*time.Hour))
}

func TestUtils_SpinnerStopMessage(t *testing.T) {
	buf := &bytes.Buffer{}
	s := &Spinner{
		mu:      &sync.RWMutex{},
		delay:   time.Millisecond,
		writer:  buf,
		message: "working",
		animate: true,
	}
	s.Start()
	time.Sleep(5 * time.Millisecond)
	s.StopMsg = "done"
	s.Stop()

	assert.True(t, strings.HasSuffix(buf.String(), "done"))

	// Stopping an already stopped spinner only prints the message again.
	s.Stop()
	assert.True(t, strings.HasSuffix(buf.String(), "donedone"))
}

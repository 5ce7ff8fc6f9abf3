package percent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "50%", Percent(50).String())
	assert.Equal(t, "33.3333%", Percent(33.3333).String())
	assert.Equal(t, "12.5", Percent(12.5).Format())
	assert.Equal(t, "0.1", FromFloat(0.1).Format(), "floating point noise must not show")
	assert.Equal(t, "100", FromFloat(250).Format())
}

func TestShare(t *testing.T) {
	assert.Equal(t, Percent(25), Share(1, 4))
	assert.Equal(t, "33.3333", Share(1, 3).Format())
	assert.Equal(t, "66.6666", Share(2, 3).Format())
	assert.Equal(t, Percent(0), Share(1, 0))
}

func TestFromString(t *testing.T) {
	p, err := FromString(" 25% ")
	assert.NoError(t, err)
	assert.Equal(t, Percent(25), p)
	_, err = FromString("abc")
	assert.Error(t, err)
}

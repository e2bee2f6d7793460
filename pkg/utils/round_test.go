package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundToOneDecimal(t *testing.T) {
	assert.Equal(t, 18.2, RoundToOneDecimal(18.1818))
	assert.Equal(t, 44.4, RoundToOneDecimal(44.4444))
	assert.Equal(t, 3.0, RoundToOneDecimal(3.04))
	assert.Equal(t, 0.0, RoundToOneDecimal(0))
}

func TestRoundToTwoDecimals(t *testing.T) {
	assert.Equal(t, 0.79, RoundToTwoDecimals(0.7905694))
	assert.Equal(t, 1.0, RoundToTwoDecimals(0.999))
	assert.Equal(t, 2.5, RoundToTwoDecimals(2.5))
}

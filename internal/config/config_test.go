package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRejectsNonPositiveGrid(t *testing.T) {
	c := Default(0, 2, 512, 32, 1)
	assert.Error(t, Validate(c), "expected ConfigError for rows=0")
}

func TestValidateRejectsDegenerateOverlap(t *testing.T) {
	c := Default(1, 1, 512, 0, 1)
	assert.Error(t, Validate(c), "expected ConfigError for overlap=0")

	c2 := Default(1, 1, 512, 300, 1)
	assert.Error(t, Validate(c2), "expected ConfigError for 2*overlap >= tileSize")
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	c := Default(2, 3, 512, 32, 1337)
	c.Steps = 4
	assert.NoError(t, Validate(c))
}

func TestValidateRejectsPyramidTooShortForTileSize(t *testing.T) {
	c := Default(1, 1, 2048, 32, 1)
	c.BaseSize = 64
	c.Steps = 2 // 64 << 1 = 128, far short of 2048
	assert.Error(t, Validate(c), "expected ConfigError when pyramid never reaches tileSize")
}

func TestResolveStepsDerivesFromLog2(t *testing.T) {
	c := Default(1, 1, 512, 32, 1)
	resolved := c.ResolveSteps()
	assert.GreaterOrEqual(t, resolved.Steps, 1, "expected a positive default step count")
}

func TestInnerSubtractsOverlapTwice(t *testing.T) {
	c := Default(1, 1, 512, 32, 1)
	assert.Equal(t, 448, c.Inner())
}

package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriverName(t *testing.T) {
	assert.Equal(t, "Hunt", DriverName(0))
	assert.Equal(t, "Lauda", DriverName(1))
	assert.Equal(t, "Hunt B", DriverName(len(DriverNames)))
	assert.Equal(t, "Lauda", DriverName(-1))
}

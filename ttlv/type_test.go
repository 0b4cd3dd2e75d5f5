package ttlv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Integer", TypeInteger.String())
	assert.Equal(t, "Structure", TypeStructure.String())
	assert.Equal(t, "0xff", Type(0xff).String())
}

func TestTypeValid(t *testing.T) {
	assert.True(t, TypeInteger.Valid())
	assert.True(t, TypeInterval.Valid())
	assert.False(t, Type(0x00).Valid())
	assert.False(t, Type(0xff).Valid())
}

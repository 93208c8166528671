package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngine_Run_Idempotent(t *testing.T) {
	input := "IN;SP1;PU;PA100,100;PD;PR50,0;PR0,50;PR-50,0;PR0,-50;PU;PA0,0;"

	first, r1 := run(t, input)
	second, r2 := run(t, input)

	assert.Equal(t, first, second)
	assert.Equal(t, r1.Final, r2.Final)
	assert.Equal(t, 4, r1.Segments)
}

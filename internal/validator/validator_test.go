package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProgram(t *testing.T) {
	t.Run("Clean program", func(t *testing.T) {
		assert.Empty(t, ValidateProgram("IN;SP1;PU0,0;PD;PA10,10;PR-1,2.5;PU;"))
		assert.NoError(t, Validate("IN;PD;PA1,1;"))
	})

	t.Run("Unparseable motion", func(t *testing.T) {
		issues := ValidateProgram("PD;PA;PR5;PA1,1;")
		require.Len(t, issues, 2)

		assert.Equal(t, Issue{Index: 1, Token: "PA", Severity: SeverityError, Message: "cannot find coordinates"}, issues[0])
		assert.Equal(t, Issue{Index: 2, Token: "PR5", Severity: SeverityError, Message: "cannot find coordinate separator"}, issues[1])
		assert.Equal(t, "#2 error: cannot find coordinate separator in 'PR5'", issues[1].String())
	})

	t.Run("Filtered look-alikes", func(t *testing.T) {
		issues := ValidateProgram("pd;pa1,1; PA2,2;LB;")
		require.Len(t, issues, 3)
		for _, issue := range issues {
			assert.Equal(t, SeverityWarning, issue.Severity)
		}
		assert.Contains(t, issues[0].Message, "looks like PD")
		assert.Contains(t, issues[1].Message, "looks like PA")
		assert.Equal(t, " PA2,2", issues[2].Token)
	})

	t.Run("Chained pairs", func(t *testing.T) {
		issues := ValidateProgram("PD;PA1,1,2,2,3,3;")
		require.Len(t, issues, 1)
		assert.Equal(t, SeverityWarning, issues[0].Severity)
		assert.Equal(t, 1, issues[0].Index)
	})

	t.Run("Pen commands carry no operand checks", func(t *testing.T) {
		assert.Empty(t, ValidateProgram("PUjunk;PD1,2,3;"))
	})
}

func TestValidate(t *testing.T) {
	err := Validate("PD;PA;pa1,1;PAx;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#1 error: cannot find coordinates in 'PA'")
	assert.Contains(t, err.Error(), "#3 error: cannot find coordinates in 'PAx'")
	assert.NotContains(t, err.Error(), "pa1,1", "warnings do not fail validation")
}

func TestCount(t *testing.T) {
	errs, warnings := Count(ValidateProgram("PA;pa1,1;PA1,1,2,2;PR;"))
	assert.Equal(t, 2, errs)
	assert.Equal(t, 2, warnings)
}

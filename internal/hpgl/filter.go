package hpgl

import "github.com/aretw0/hpgl2dxf/pkg/domain"

// Classify inspects the two-character mnemonic of a token.
// Only the exact uppercase prefixes PA, PR, PD and PU are accepted; anything else
// (including lowercase forms and tokens with leading whitespace) is reported as not ok
// and should be dropped by the caller.
func Classify(token string) (domain.Command, bool) {
	if len(token) < 2 || token[0] != 'P' {
		return domain.Command{}, false
	}

	switch token[1] {
	case 'A', 'R', 'D', 'U':
	default:
		return domain.Command{}, false
	}

	return domain.Command{
		Op:      domain.OpcodeFromSuffix(token[1]),
		Token:   token,
		Operand: token[2:],
	}, true
}

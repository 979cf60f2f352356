package loan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMpesaCode(t *testing.T) {
	code, err := ValidateMpesaCode("SH12ABC34D")
	require.NoError(t, err)
	assert.Equal(t, "SH12ABC34D", code)

	code, err = ValidateMpesaCode("  SH12ABC34D  ")
	require.NoError(t, err)
	assert.Equal(t, "SH12ABC34D", code)

	_, err = ValidateMpesaCode("ABC")
	assert.ErrorIs(t, err, ErrMpesaCodeTooShort)

	_, err = ValidateMpesaCode("")
	assert.ErrorIs(t, err, ErrMpesaCodeTooShort)

	// whitespace padding alone never satisfies the minimum
	_, err = ValidateMpesaCode("ABC       ")
	assert.ErrorIs(t, err, ErrMpesaCodeTooShort)

	_, err = ValidateMpesaCode(strings.Repeat("A", 21))
	assert.ErrorIs(t, err, ErrMpesaCodeTooLong)

	code, err = ValidateMpesaCode(strings.Repeat("A", 20))
	require.NoError(t, err)
	assert.Len(t, code, 20)
}

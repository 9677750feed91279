package v1

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yola1107/kratos/v2/errors"
)

func TestErrorReasons(t *testing.T) {
	err := ErrorLineTooLong("line length %d exceeds %d", 16, 15)
	require.True(t, IsLineTooLong(err))
	require.False(t, IsEvaluationNotFound(err))
	require.Equal(t, 400, errors.Code(err))
	require.Equal(t, "line length 16 exceeds 15", err.Message)

	wrapped := fmt.Errorf("evaluate: %w", ErrorEvaluationNotFound("evaluation not found"))
	require.True(t, IsEvaluationNotFound(wrapped))
	require.False(t, IsLineTooLong(nil))
}

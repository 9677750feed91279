package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"winline/internal/winline"
)

func TestToJson(t *testing.T) {
	got := ToJson([]winline.Combination{{Symbol: 6, Positions: []int{2, 3, 4}}})
	require.JSONEq(t, `[{"symbol":6,"positions":[2,3,4]}]`, got)
}

func TestUnmarshal(t *testing.T) {
	var c winline.Combination
	require.NoError(t, Unmarshal([]byte(`{"symbol":3,"positions":[0,1,2]}`), &c))
	require.Equal(t, winline.Combination{Symbol: 3, Positions: []int{0, 1, 2}}, c)
	require.Error(t, Unmarshal([]byte(`{"symbol":`), &c))
}

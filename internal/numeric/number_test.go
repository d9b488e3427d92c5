package numeric

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_IntegerCollapse(t *testing.T) {
	assert.Equal(t, "25", Normalize(25.0).String())
	assert.Equal(t, "25", Normalize(25.004).String())
	assert.Equal(t, "0", Normalize(0).String())
	assert.Equal(t, "-3", Normalize(-3.0).String())
}

func TestNormalize_KeepsFraction(t *testing.T) {
	assert.Equal(t, "22.5", Normalize(22.5).String())
	assert.Equal(t, "10.56", Normalize(10.555).String())
	assert.Equal(t, "0.1", Normalize(0.1).String())
	assert.Equal(t, "-1.25", Normalize(-1.245).String())
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, v := range []float64{25.0, 22.5, 10.555, -7.891, 0, 1234.995} {
		once := Normalize(v)
		twice := Normalize(once.Float64())
		assert.True(t, once.Equal(twice), "normalize not idempotent for %v", v)
		assert.Equal(t, once.String(), twice.String())
	}
}

func TestNumber_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Sales Number `json:"sales"`
	}{Sales: Normalize(25.0)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"sales":25}`, string(b))

	b, err = json.Marshal(Normalize(22.5))
	require.NoError(t, err)
	assert.Equal(t, "22.5", string(b))
}

func TestFromInt(t *testing.T) {
	assert.Equal(t, "7", FromInt(7).String())
	assert.True(t, FromInt(25).Equal(Normalize(25.0)))
}

package yahaha_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yahaha-lang/yahaha"
)

func TestEmbeddingAPI_ParseNewEnvRegisterExec(t *testing.T) {
	prog, errs := yahaha.Parse(`var x := 1; var f := func() => x; x := 2; var result := f();`)
	require.Empty(t, errs)

	env := yahaha.NewEnv()
	var asserted bool
	yahaha.RegisterBuiltin(env, "assert", func(args []yahaha.Value) (yahaha.Value, error) {
		asserted = true
		return nil, nil
	})

	v, err := yahaha.Exec(env, prog)
	require.NoError(t, err)
	assert.False(t, asserted)
	assert.Equal(t, "2", v.String())
}

func TestParse_ReturnsStructuredErrorOnMalformedInput(t *testing.T) {
	_, errs := yahaha.Parse(`var x := ;`)
	require.NotEmpty(t, errs)
	assert.NotZero(t, errs[0].Pos.Line)
}

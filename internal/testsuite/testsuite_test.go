package testsuite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evmlab/shanghai-evm/core/vm"
)

// TestConformanceFixtures runs every JSON case under testdata/ end to end:
// load, build a Context, execute it, and verify the result against the
// case's expectations.
func TestConformanceFixtures(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.json")
	require.NoError(t, err)
	require.NotEmpty(t, paths, "expected at least one conformance fixture")

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			c, err := Load(path)
			require.NoError(t, err)

			ctx, err := c.BuildContext()
			require.NoError(t, err)

			result := vm.Execute(ctx)
			require.NoError(t, Verify(result, c.Expect), "case %s", c.Name)
		})
	}
}

func TestAssembleSkipsBlankAndCommentLines(t *testing.T) {
	code, err := assemble("// a comment\n\nPUSH1 0x01\nPUSH1 0x02\nADD\nSTOP")
	require.NoError(t, err)
	require.Equal(t, []byte{byte(vm.PUSH1), 1, byte(vm.PUSH1), 2, byte(vm.ADD), byte(vm.STOP)}, code)
}

func TestAssembleRejectsUnknownMnemonic(t *testing.T) {
	_, err := assemble("NOTANOPCODE")
	require.Error(t, err)
}

func TestMustAddressPadsShortHex(t *testing.T) {
	a := mustAddress("ca")
	require.Equal(t, vm.Address{19: 0xca}, a)
}

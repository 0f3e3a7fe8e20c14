package executable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// FuzzParse checks that arbitrary input never panics and that anything the
// decoder accepts encodes and decodes back to the same value.
func FuzzParse(f *testing.F) {
	_, e2e := endToEnd()
	f.Add(e2e)

	for _, exe := range []*Executable{
		New(fullUnit()),
		New(LinkingUnit{Bss: &BssSection{Size: 12}}, LinkingUnit{PdBind: &BindingsSection{Names: []string{"a"}}}),
	} {
		data, err := exe.Encode()
		require.NoError(f, err)
		f.Add(data)
	}
	f.Add(stream(0, []rawSection{padded("BIND", "foo\x00ba")}))
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		exe, err := Parse(data)
		if err != nil {
			require.Nil(t, exe)
			return
		}

		out, err := exe.Encode()
		require.NoError(t, err)

		again, err := Parse(out)
		require.NoError(t, err)
		require.True(t, exe.Equal(again))
	})
}

package executable

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/sme"
)

func TestNumSections(t *testing.T) {
	u := fullUnit()
	require.Equal(t, 7, u.NumSections())

	var empty LinkingUnit
	require.Zero(t, empty.NumSections())

	partial := LinkingUnit{Bss: &BssSection{}, Debug: &DataSection{}}
	require.Equal(t, 2, partial.NumSections())
}

func TestCloneIsDeep(t *testing.T) {
	orig := New(fullUnit(), LinkingUnit{RoData: &DataSection{Data: []byte{1}}})
	orig.ActiveLinkingUnit = 1

	c := orig.Clone()
	require.True(t, orig.Equal(c))

	c.LinkingUnits[0].Text.Instructions[0] = sme.CodeBlockFromUint64(99)
	c.LinkingUnits[0].RoData.Data[0] = 'X'
	c.LinkingUnits[0].Bss.Size++
	c.LinkingUnits[0].Bind.Names[0] = "changed"
	c.LinkingUnits[1].RoData = nil

	require.Equal(t, uint64(0x2a), orig.LinkingUnits[0].Text.Instructions[0].Uint64())
	require.Equal(t, byte('r'), orig.LinkingUnits[0].RoData.Data[0])
	require.Equal(t, uint64(4096), orig.LinkingUnits[0].Bss.Size)
	require.Equal(t, "Process_logString", orig.LinkingUnits[0].Bind.Names[0])
	require.NotNil(t, orig.LinkingUnits[1].RoData)
	require.False(t, orig.Equal(c))

	var nilExe *Executable
	require.Nil(t, nilExe.Clone())
}

func TestEqual(t *testing.T) {
	a := fullUnit()
	b := fullUnit()
	require.True(t, a.Equal(&b))

	b.PdBind = nil
	require.False(t, a.Equal(&b))

	b = fullUnit()
	b.Bind.Names = []string{"x", "Process_logString", "Process_logMicroseconds"}
	require.False(t, a.Equal(&b), "binding order is significant")

	require.True(t, (&DataSection{}).Equal(&DataSection{Data: []byte{}}))
	require.False(t, (&DataSection{}).Equal(nil))
	require.True(t, (*BssSection)(nil).Equal(nil))
	require.False(t, (&BssSection{Size: 1}).Equal(&BssSection{Size: 2}))
	require.True(t, (&TextSection{}).Equal(&TextSection{Instructions: []sme.CodeBlock{}}))

	x := New(a)
	y := New(fullUnit())
	require.True(t, x.Equal(y))
	y.FormatVersion = 1
	require.False(t, x.Equal(y))
	require.False(t, x.Equal(nil))
}

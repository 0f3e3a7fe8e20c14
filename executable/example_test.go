package executable_test

import (
	"errors"
	"fmt"

	"github.com/wippyai/sme"
	"github.com/wippyai/sme/executable"
)

func Example() {
	exe := executable.New(executable.LinkingUnit{
		Text:   &executable.TextSection{Instructions: []sme.CodeBlock{sme.CodeBlockFromUint64(1)}},
		RoData: &executable.DataSection{Data: []byte{0x01, 0x02, 0x03}},
		Bind:   &executable.BindingsSection{Names: []string{"foo", "bar"}},
	})

	data, err := exe.Encode()
	if err != nil {
		panic(err)
	}
	fmt.Println(len(data))

	got, err := executable.Parse(data)
	if err != nil {
		panic(err)
	}
	fmt.Println(got.LinkingUnits[0].NumSections(), got.LinkingUnits[0].Bind.Names)
	// Output:
	// 240
	// 3 [foo bar]
}

func ExampleParse_error() {
	_, err := executable.Parse([]byte("Sharemind"))
	fmt.Println(errors.Is(err, executable.ErrFileHeaderRead))
	fmt.Println(err)
	// Output:
	// true
	// [deserialize] header_read in file header (caused by: unexpected EOF)
}

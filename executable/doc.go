// Package executable implements the Sharemind Executable object model and
// its binary codec.
//
// An Executable is a list of LinkingUnits plus the index of the active unit.
// Each LinkingUnit holds at most one section of each kind; a nil field means
// the section is absent.
//
// Encoding checks the whole executable first and writes nothing if any
// check fails. Sections are then written in a fixed order (TEXT, RODATA,
// DATA, BSS, BIND, PDBIND, DEBUG), each followed by zero padding to an
// eight byte boundary.
//
// Decoding is a single forward pass over the stream. Every failure is an
// *errors.Error that names the header, linking unit, section and binding
// involved, and can be matched against the sentinels declared here:
//
//	exe, err := executable.Parse(data)
//	if errors.Is(err, executable.ErrDuplicateBinding) {
//	    // ...
//	}
//
// A BIND or PDBIND section whose last name has no terminator is accepted
// and the partial name dropped, unless Options.StrictBindings is set.
package executable

package header

// SectionType identifies the kind of a section.
type SectionType int

// Section types in canonical write order.
const (
	SectionInvalid SectionType = -1
	SectionText    SectionType = 0
	SectionRoData  SectionType = 1
	SectionData    SectionType = 2
	SectionBss     SectionType = 3
	SectionBind    SectionType = 4
	SectionPdBind  SectionType = 5
	SectionDebug   SectionType = 6

	// SectionCount is the number of known section types.
	SectionCount = 7
)

var (
	sectionNames = [SectionCount]string{
		"TEXT",
		"RODATA",
		"DATA",
		"BSS",
		"BIND",
		"PDBIND",
		"DEBUG",
	}
	sectionDescriptions = [SectionCount]string{
		"text",
		"read-only data",
		"read-write data",
		"BSS",
		"system call bindings",
		"protection domain bindings",
		"debug",
	}
	sectionMagic [SectionCount]string

	invalidSectionMagic = magic("<INVALID>")
)

func init() {
	for i, name := range sectionNames {
		sectionMagic[i] = magic(name)
	}
}

// Valid reports whether t is one of the known section types.
func (t SectionType) Valid() bool {
	return t >= 0 && t < SectionCount
}

// String returns the wire name of the section type.
func (t SectionType) String() string {
	if !t.Valid() {
		return "INVALID"
	}
	return sectionNames[t]
}

// Description returns a human readable name used in diagnostics.
func (t SectionType) Description() string {
	if !t.Valid() {
		return "invalid"
	}
	return sectionDescriptions[t]
}

// Magic returns the 32-byte magic that identifies t on the wire.
func (t SectionType) Magic() string {
	if !t.Valid() {
		return invalidSectionMagic
	}
	return sectionMagic[t]
}

// SectionTypeFromMagic looks m up in the magic table. Unknown values yield
// SectionInvalid.
func SectionTypeFromMagic(m string) SectionType {
	for i := range sectionMagic {
		if sectionMagic[i] == m {
			return SectionType(i)
		}
	}
	return SectionInvalid
}

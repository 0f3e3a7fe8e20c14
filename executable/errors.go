package executable

import (
	"github.com/wippyai/sme/errors"
	"github.com/wippyai/sme/header"
)

// Sentinels for use with errors.Is. The returned errors are *errors.Error
// values carrying the unit, section and binding that caused the failure.
var (
	ErrUnsupportedVersion = errors.New("", errors.KindUnsupportedVersion).Build()

	ErrNoLinkingUnits           = serializeErr(errors.KindNoLinkingUnits)
	ErrTooManyLinkingUnits      = serializeErr(errors.KindTooManyLinkingUnits)
	ErrInvalidActiveLinkingUnit = serializeErr(errors.KindInvalidActiveLinkingUnit)
	ErrNoSections               = serializeErr(errors.KindNoSections)
	ErrTooManySections          = serializeErr(errors.KindTooManySections)
	ErrWrite                    = serializeErr(errors.KindIO)

	ErrTextSectionTooBig   = tooBig(header.SectionText)
	ErrRoDataSectionTooBig = tooBig(header.SectionRoData)
	ErrDataSectionTooBig   = tooBig(header.SectionData)
	ErrBssSectionTooBig    = tooBig(header.SectionBss)
	ErrBindSectionTooBig   = tooBig(header.SectionBind)
	ErrPdBindSectionTooBig = tooBig(header.SectionPdBind)
	ErrDebugSectionTooBig  = tooBig(header.SectionDebug)

	ErrFileHeaderRead    = headerSentinel(errors.KindHeaderRead, errors.HeaderFile)
	ErrFormat0HeaderRead = headerSentinel(errors.KindHeaderRead, errors.HeaderFormat0)
	ErrUnitHeaderRead    = headerSentinel(errors.KindHeaderRead, errors.HeaderUnit)
	ErrSectionHeaderRead = headerSentinel(errors.KindHeaderRead, errors.HeaderSection)

	ErrInvalidFileHeader    = headerSentinel(errors.KindInvalidHeader, errors.HeaderFile)
	ErrInvalidFormat0Header = headerSentinel(errors.KindInvalidHeader, errors.HeaderFormat0)
	ErrInvalidUnitHeader    = headerSentinel(errors.KindInvalidHeader, errors.HeaderUnit)
	ErrInvalidSectionHeader = headerSentinel(errors.KindInvalidHeader, errors.HeaderSection)

	ErrMultipleTextSections   = multiple(header.SectionText)
	ErrMultipleRoDataSections = multiple(header.SectionRoData)
	ErrMultipleDataSections   = multiple(header.SectionData)
	ErrMultipleBssSections    = multiple(header.SectionBss)
	ErrMultipleBindSections   = multiple(header.SectionBind)
	ErrMultiplePdBindSections = multiple(header.SectionPdBind)
	ErrMultipleDebugSections  = multiple(header.SectionDebug)

	ErrTextSectionRead   = sectionRead(header.SectionText)
	ErrRoDataSectionRead = sectionRead(header.SectionRoData)
	ErrDataSectionRead   = sectionRead(header.SectionData)
	ErrBindSectionRead   = sectionRead(header.SectionBind)
	ErrPdBindSectionRead = sectionRead(header.SectionPdBind)
	ErrDebugSectionRead  = sectionRead(header.SectionDebug)

	ErrPaddingRead         = deserializeErr(errors.KindPaddingRead)
	ErrInvalidPadding      = deserializeErr(errors.KindInvalidPadding)
	ErrEmptyBinding        = errors.New("", errors.KindEmptyBinding).Build()
	ErrDuplicateBinding    = errors.New("", errors.KindDuplicateBinding).Build()
	ErrInvalidBinding      = serializeErr(errors.KindInvalidBinding)
	ErrUnterminatedBinding = deserializeErr(errors.KindUnterminatedBinding)
)

func serializeErr(kind errors.Kind) *errors.Error {
	return errors.New(errors.PhaseSerialize, kind).Build()
}

func deserializeErr(kind errors.Kind) *errors.Error {
	return errors.New(errors.PhaseDeserialize, kind).Build()
}

func tooBig(t header.SectionType) *errors.Error {
	return errors.New(errors.PhaseSerialize, errors.KindSectionTooBig).Section(t.String()).Build()
}

func headerSentinel(kind errors.Kind, name string) *errors.Error {
	return errors.New(errors.PhaseDeserialize, kind).Header(name).Build()
}

func multiple(t header.SectionType) *errors.Error {
	return errors.New(errors.PhaseDeserialize, errors.KindMultipleSections).Section(t.String()).Build()
}

func sectionRead(t header.SectionType) *errors.Error {
	return errors.New(errors.PhaseDeserialize, errors.KindSectionRead).Section(t.String()).Build()
}

// headerError classifies a failed header read: records that were read in
// full but failed validation are invalid, everything else is a read error.
func headerError(name string, unit, section int, err error) *errors.Error {
	if header.IsValidationError(err) {
		return errors.InvalidHeader(name, unit, section, err)
	}
	return errors.HeaderRead(name, unit, section, err)
}

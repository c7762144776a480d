package binary

// Section IDs, in the fixed order the binary format mandates for their
// appearance (binary format section 5.5), except SectionIDCustom which may
// recur anywhere.
const (
	SectionIDCustom    = 0
	SectionIDType      = 1
	SectionIDImport    = 2
	SectionIDFunction  = 3
	SectionIDTable     = 4
	SectionIDMemory    = 5
	SectionIDGlobal    = 6
	SectionIDExport    = 7
	SectionIDStart     = 8
	SectionIDElement   = 9
	SectionIDCode      = 10
	SectionIDData      = 11
)

// subsectionIDModuleName is the sole subsection of the custom "name"
// section this decoder collects.
const subsectionIDModuleName = 0

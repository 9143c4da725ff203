package kmetadata

// Declaration flag bits shared by functions, properties and accessors.
const (
	FlagHasAnnotations = 1 << 0

	visibilityShift = 1
	visibilityMask  = 0x7 << visibilityShift
	modalityShift   = 4
	modalityMask    = 0x3 << modalityShift
)

// Visibility values.
const (
	VisibilityInternal  = 0
	VisibilityPrivate   = 1
	VisibilityProtected = 2
	VisibilityPublic    = 3
)

// Modality values.
const (
	ModalityFinal    = 0
	ModalityOpen     = 1
	ModalityAbstract = 2
)

// Property flag bits.
const (
	FlagPropertyIsVar     = 1 << 8
	FlagPropertyHasGetter = 1 << 9
	FlagPropertyHasSetter = 1 << 10
)

// Property accessor flag bits.
const (
	FlagAccessorIsNotDefault = 1 << 6
)

// Value parameter flag bits.
const (
	FlagParamDeclaresDefaultValue = 1 << 1
)

// Common flag combinations.
const (
	// PublicFinal is a public final declaration; the default for functions.
	PublicFinal = VisibilityPublic<<visibilityShift | ModalityFinal<<modalityShift

	// PublicFinalVal is a public final val with a getter; the default for properties.
	PublicFinalVal = PublicFinal | FlagPropertyHasGetter

	// CustomGetter marks a public final getter with a body.
	CustomGetter = PublicFinal | FlagAccessorIsNotDefault
)

// Flags is a packed declaration flag set.
type Flags int

// Visibility extracts the visibility field.
func (f Flags) Visibility() int { return (int(f) & visibilityMask) >> visibilityShift }

// Modality extracts the modality field.
func (f Flags) Modality() int { return (int(f) & modalityMask) >> modalityShift }

// Has reports whether every bit of mask is set.
func (f Flags) Has(mask int) bool { return int(f)&mask == mask }

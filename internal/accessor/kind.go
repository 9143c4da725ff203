package accessor

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind enumerates the accessor shapes.
type Kind int

const (
	_ Kind = iota // zero value is invalid

	KindExtension
	KindConvention
	KindTask
	KindContainerElement
	KindConfiguration

	// KindTotal is the number of kinds, including the invalid zero value.
	KindTotal = int(iota)
)

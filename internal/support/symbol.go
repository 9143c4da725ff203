package support

//go:generate go tool stringer -type=Symbol -trimprefix=Symbol -output=symbol_string.go

// Symbol identifies a member generated code depends on.
type Symbol int

const (
	_ Symbol = iota // zero value is invalid

	// Runtime helpers.
	SymbolExtensionOf
	SymbolConventionPluginOf
	SymbolAddDependencyTo

	// Build API members.
	SymbolGetExtensions
	SymbolConfigureExtension
	SymbolActionExecute
	SymbolNamedElement
	SymbolNamedTask
	SymbolNamedConfiguration
	SymbolAddDependency
	SymbolAddConstraint
	SymbolAddConfiguredConstraint

	// SymbolTotal is the number of symbols, including the invalid zero value.
	SymbolTotal = int(iota)
)

// Package extraction defines the results produced by language extractors:
// synopses of documentable constructs and documentation coverage.
package extraction

// Kind tags a Synopsis variant.
type Kind string

const (
	KindFunction    Kind = "function"
	KindTypedef     Kind = "typedef"
	KindClass       Kind = "class"
	KindUnspecified Kind = "unspecified"
)

// Synopsis is the structured shape of one construct. Exactly one of
// FunctionSynopsis, TypedefSynopsis, ClassSynopsis or UnspecifiedSynopsis.
type Synopsis interface {
	Kind() Kind
	isSynopsis()
}

// FunctionSynopsis describes a function or method.
// A nil Params means the parameter list could not be located; an empty
// non-nil slice means the function takes no parameters. A nil Returns means
// the language does not report return presence for this construct.
type FunctionSynopsis struct {
	Params      []Param
	Returns     *bool
	ReturnsType string
}

// TypedefSynopsis describes a type alias, struct or data class.
type TypedefSynopsis struct {
	Properties []Property
}

// ClassSynopsis describes a class and the first type it extends, if any.
type ClassSynopsis struct {
	Extends string
}

// UnspecifiedSynopsis is returned when nothing documentable was recognized.
type UnspecifiedSynopsis struct{}

func (FunctionSynopsis) Kind() Kind    { return KindFunction }
func (TypedefSynopsis) Kind() Kind     { return KindTypedef }
func (ClassSynopsis) Kind() Kind       { return KindClass }
func (UnspecifiedSynopsis) Kind() Kind { return KindUnspecified }

func (FunctionSynopsis) isSynopsis()    {}
func (TypedefSynopsis) isSynopsis()     {}
func (ClassSynopsis) isSynopsis()       {}
func (UnspecifiedSynopsis) isSynopsis() {}

// Param is one function parameter in declaration order.
// Type and DefaultValue are empty when the source does not show them.
type Param struct {
	Name         string `json:"name"`
	Required     bool   `json:"required"`
	Type         string `json:"type,omitempty"`
	DefaultValue string `json:"defaultValue,omitempty"`
}

// Property is one field of a typedef or struct.
type Property struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Bool returns a pointer to v, for FunctionSynopsis.Returns.
func Bool(v bool) *bool {
	return &v
}

// FirstOf returns the first non-nil synopsis, or UnspecifiedSynopsis.
func FirstOf(candidates ...Synopsis) Synopsis {
	for _, s := range candidates {
		if s != nil {
			return s
		}
	}
	return UnspecifiedSynopsis{}
}

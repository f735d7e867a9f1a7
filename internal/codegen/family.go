// Package codegen produces the generated header files: the two macro
// families, one string implementation header per length limit, and the
// aggregator header that dispatches between them.
package codegen

import (
	"fmt"
	"strings"

	"stringgen/internal/emit"
)

// FamilyMode selects how a macro family's helper bodies grow.
type FamilyMode int

const (
	// Enumeration appends a concatenation-numbered term per step.
	Enumeration FamilyMode = iota
	// Repetition appends the bare parameter again per step.
	Repetition
)

// FamilySpec describes one enumeration/repetition macro family.
type FamilySpec struct {
	Name         string // public dispatcher macro name, e.g. ENUM_PARAMS
	InternalName string // helper-name stem, e.g. EP
	MaxCount     int
	Mode         FamilyMode
}

// GenerateFamily returns the text of a macro-family header. When
// undefine is set every macro is emitted as an #undef instead, producing
// the paired cleanup header: the families are meant to be defined, used
// and undefined within one translation unit.
//
// The dispatcher selects helper_count by token concatenation at
// macro-expansion time. helper_0 is empty and every later helper is
// defined in terms of its predecessor, so generated text grows by a
// constant amount per count.
func GenerateFamily(spec FamilySpec, undefine bool) string {
	var out strings.Builder
	emit.WriteNoIncludeGuardInfo(&out)
	emit.WriteAutogenInfo(&out)

	cat := emit.MacroName("CAT")

	// Redefinition check on the public name only; helper names are
	// internal and unique by construction.
	emit.DefineMacro(&out, emit.Macro{
		Name: spec.Name,
		Args: []string{"count", "param"},
		Body: fmt.Sprintf("%s(%s, count)(param)", cat, emit.MacroName(spec.InternalName)),
	}, undefine, true)

	emit.DefineMacro(&out, emit.Macro{
		Name: spec.InternalName + "0",
		Args: []string{"param"},
		Body: "",
	}, undefine, false)

	base := "param"
	if spec.Mode == Enumeration {
		base = fmt.Sprintf("%s(param, 0)", cat)
	}
	emit.DefineMacro(&out, emit.Macro{
		Name: spec.InternalName + "1",
		Args: []string{"param"},
		Body: base,
	}, undefine, false)

	for count := 2; count <= spec.MaxCount; count++ {
		prev := fmt.Sprintf("%s%d(param)", emit.MacroName(spec.InternalName), count-1)
		var body string
		if spec.Mode == Enumeration {
			body = fmt.Sprintf("%s, %s(param, %d)", prev, cat, count-1)
		} else {
			body = fmt.Sprintf("%s, param", prev)
		}
		emit.DefineMacro(&out, emit.Macro{
			Name: fmt.Sprintf("%s%d", spec.InternalName, count),
			Args: []string{"param"},
			Body: body,
		}, undefine, false)
	}

	return out.String()
}

// Package emit provides the low-level text helpers for writing the
// generated C-preprocessor headers: namespaces, include guards, macro
// definitions and the standard file comments. Emission is pure string
// building; callers own the file I/O.
package emit

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Version is the library version number embedded in every generated
// macro name and namespace. Bumping it changes the naming contract of
// every generated file.
const Version = 1

// MacroName returns the full versioned macro name for name.
func MacroName(name string) string {
	return fmt.Sprintf("BOOST_METAPARSE_V%d_%s", Version, name)
}

// WriteAutogenInfo writes the comment marking the file as generated.
func WriteAutogenInfo(out *strings.Builder) {
	out.WriteString(
		"\n" +
			"// This is an automatically generated header file.\n" +
			"// Generated with the stringgen utility. Do not edit.\n",
	)
}

// WriteNoIncludeGuardInfo writes the comment explaining why the file
// has no include guard.
func WriteNoIncludeGuardInfo(out *strings.Builder) {
	out.WriteString(
		"// no include guard: the header might be included multiple times\n",
	)
}

// Namespace writes a nested namespace block. Begin and End must be
// paired; callers typically defer End immediately after Begin.
type Namespace struct {
	out   *strings.Builder
	names []string
}

// NewNamespace creates a namespace emitter for the ordered name list.
func NewNamespace(out *strings.Builder, names []string) *Namespace {
	return &Namespace{out: out, names: names}
}

// Begin writes the opening braces, one nesting level per name.
func (n *Namespace) Begin() {
	n.out.WriteString("\n")
	for depth, name := range n.names {
		fmt.Fprintf(n.out, "%snamespace %s\n%s{\n", n.Prefix(depth), name, n.Prefix(depth))
	}
}

// End writes the closing braces in reverse order.
func (n *Namespace) End() {
	for depth := len(n.names) - 1; depth >= 0; depth-- {
		fmt.Fprintf(n.out, "%s}\n", n.Prefix(depth))
	}
}

// Prefix returns the indentation for a given nesting depth. A negative
// depth returns the indentation content inside the namespace should use.
func (n *Namespace) Prefix(depth int) string {
	if depth < 0 {
		depth = len(n.names)
	}
	return strings.Repeat("  ", depth)
}

// Path returns the fully qualified path of the namespace.
func (n *Namespace) Path() string {
	return "::" + strings.Join(n.names, "::")
}

// IncludeGuard writes an include-guard pair. The undefine variant uses
// a distinct guard token so that a header undoing macro definitions can
// be included independently of the header that made them.
type IncludeGuard struct {
	out  *strings.Builder
	name string
}

// NewIncludeGuard creates an include-guard emitter for the given
// logical file name.
func NewIncludeGuard(out *strings.Builder, name string, undefine bool) *IncludeGuard {
	if undefine {
		name = "UNDEF_" + strings.ToUpper(name)
	} else {
		name = strings.ToUpper(name)
	}
	return &IncludeGuard{out: out, name: name}
}

// Begin writes the #ifndef/#define pair and the autogenerated-file comment.
func (g *IncludeGuard) Begin() {
	token := fmt.Sprintf("BOOST_METAPARSE_V%d_IMPL_%s_HPP", Version, g.name)
	fmt.Fprintf(g.out, "#ifndef %s\n#define %s\n", token, token)
	WriteAutogenInfo(g.out)
}

// End writes the matching #endif.
func (g *IncludeGuard) End() {
	g.out.WriteString("\n#endif\n")
}

// Macro describes one macro to define or undefine. Name is given
// without the versioned prefix; MacroName is applied on emission.
type Macro struct {
	Name string
	Args []string
	Body string
}

// DefineMacro writes a macro definition, or an #undef of its name when
// undefine is set. When check is set (and the macro is being defined) a
// redefinition check is emitted first, turning a silent redefinition
// into a preprocessing error.
func DefineMacro(out *strings.Builder, m Macro, undefine, check bool) {
	name := MacroName(m.Name)
	if undefine {
		fmt.Fprintf(out, "#undef %s\n", name)
		return
	}

	argList := ""
	if len(m.Args) > 0 {
		argList = fmt.Sprintf("(%s)", strings.Join(m.Args, ", "))
	}

	if check {
		fmt.Fprintf(out, "#ifdef %s\n#  error %s already defined.\n#endif\n", name, name)
	}

	fmt.Fprintf(out, "#define %s%s %s\n", name, argList, m.Body)
}

// Filename returns the output path for a generated header. Undefine
// variants are prefixed; names are lower-cased.
func Filename(outDir, name string, undefine bool) string {
	prefix := ""
	if undefine {
		prefix = "undef_"
	}
	return filepath.Join(outDir, prefix+strings.ToLower(name)+".hpp")
}

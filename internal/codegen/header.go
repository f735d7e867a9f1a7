package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"stringgen/internal/emit"
	"stringgen/internal/plan"
)

// limitMacro is the unversioned size-limit macro a consuming build
// defines before including the aggregator.
const limitMacro = "BOOST_METAPARSE_LIMIT_STRING_SIZE"

// familyHeaders are the implementation headers the aggregator includes
// before the dispatch chain and undefines after it.
var familyHeaders = []string{
	"enum_params",
	"cat",
	"enum_constant",
	"define_string",
	"specialise_string",
}

// StringHeader returns the contents of the string implementation
// header for one length limit: the definition macro invocation, one
// specialization per length below the limit, and the public STRING<L>
// macro built from the indexing decomposition.
func StringHeader(limit plan.Limit) string {
	var out strings.Builder
	name := "string" + limit.Name

	guard := emit.NewIncludeGuard(&out, name, false)
	guard.Begin()

	emit.DefineMacro(&out, emit.Macro{
		Name: "TMP_LENGTH_LIMIT",
		Body: strconv.Itoa(limit.Value),
	}, false, true)

	ns := emit.NewNamespace(&out, []string{
		"boost", "metaparse", fmt.Sprintf("v%d", emit.Version), "impl",
	})
	ns.Begin()
	prefix := ns.Prefix(-1)
	fmt.Fprintf(&out, "%s%s\n", prefix, emit.MacroName("DEFINE_STRING"))
	out.WriteString("\n")
	for length := 1; length < limit.Value; length++ {
		fmt.Fprintf(&out, "%s%s(%d, %d)\n",
			prefix, emit.MacroName(""), length, limit.Value-length)
	}
	fmt.Fprintf(&out, "%s%s\n", prefix, emit.MacroName("SPECIALISE_STRING0"))
	ns.End()

	emit.DefineMacro(&out, emit.Macro{Name: "TMP_LENGTH_LIMIT"}, true, true)

	emit.DefineMacro(&out, emit.Macro{
		Name: fmt.Sprintf("STRING%d", limit.Value),
		Args: []string{"s"},
		Body: fmt.Sprintf("%s::string%d<%s>::type",
			ns.Path(), limit.Value, plan.StringIndexing(limit.Value)),
	}, false, true)

	guard.End()
	return out.String()
}

// Aggregator returns the contents of the top-level string.hpp: it
// includes the family headers, selects the right stringN header for the
// caller's requested size limit via an #if/#elif chain, and cleans the
// family macros up again. A request beyond every generated maximum
// fails the consuming build's preprocessing with an actionable #error.
func Aggregator(limits []plan.Limit) string {
	var out strings.Builder
	emit.WriteNoIncludeGuardInfo(&out)
	emit.WriteAutogenInfo(&out)

	fmt.Fprintf(&out,
		"\n#ifndef %s\n#  error %s not defined\n#endif\n",
		limitMacro, limitMacro,
	)

	stringMacro := emit.MacroName("STRING")
	fmt.Fprintf(&out,
		"\n#ifdef %s\n#  undef %s\n#endif\n\n",
		stringMacro, stringMacro,
	)

	for _, header := range familyHeaders {
		fmt.Fprintf(&out, "#include <boost/metaparse/v%d/impl/%s.hpp>\n",
			emit.Version, header)
	}
	out.WriteString("\n")

	for nth, limit := range limits {
		ifName := "#elif"
		if nth == 0 {
			ifName = "#if"
		}
		fmt.Fprintf(&out,
			"%s %s <= %d\n"+
				"#  include <boost/metaparse/v%d/impl/string%s.hpp>\n"+
				"#  define %s %s%d\n",
			ifName, limitMacro, limit.Value,
			emit.Version, limit.Name,
			stringMacro, stringMacro, limit.Value,
		)
	}

	fmt.Fprintf(&out,
		"#else\n"+
			"#  error %s is greater than %d."+
			" To increase the limit re-run the stringgen utility"+
			" with a larger maximum length limit.\n"+
			"#endif\n\n",
		limitMacro, plan.MaxValue(limits),
	)

	for _, header := range familyHeaders {
		fmt.Fprintf(&out, "#include <boost/metaparse/v%d/impl/undef_%s.hpp>\n",
			emit.Version, header)
	}

	return out.String()
}

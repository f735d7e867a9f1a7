package codegen

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"stringgen/internal/emit"
	"stringgen/internal/plan"
)

// stringHeaderPattern matches the per-limit implementation headers.
var stringHeaderPattern = regexp.MustCompile(`^string[0-9]+\.hpp$`)

// Driver runs one full generation pass: stale-file cleanup, then the
// aggregator, the macro families and one header per length limit.
// Ordering matters only in that cleanup precedes generation; the
// generated files never reference each other's content, only names
// that are deterministic functions of the length limit.
type Driver struct {
	OutDir string
	Log    io.Writer // progress output; nil silences it
}

// Generate regenerates every header for the given limits. Failure at
// any step aborts the run; reruns are safe because output is a
// deterministic function of the inputs.
func (d *Driver) Generate(limits []plan.Limit) error {
	if err := d.RemoveOldHeaders(); err != nil {
		return err
	}

	if err := d.writeFile("string", false, Aggregator(limits)); err != nil {
		return err
	}

	maxCount := plan.MaxValue(limits)
	families := []FamilySpec{
		{Name: "ENUM_PARAMS", InternalName: "EP", MaxCount: maxCount, Mode: Enumeration},
		{Name: "ENUM_CONSTANT", InternalName: "EC", MaxCount: maxCount, Mode: Repetition},
	}
	for _, undefine := range []bool{true, false} {
		for _, family := range families {
			content := GenerateFamily(family, undefine)
			if err := d.writeFile(family.Name, undefine, content); err != nil {
				return err
			}
		}
	}

	for _, limit := range limits {
		if err := d.writeFile("string"+limit.Name, false, StringHeader(limit)); err != nil {
			return err
		}
	}

	return nil
}

// RemoveOldHeaders deletes previously generated headers: the fixed-name
// aggregator and family files (define and undefine variants) and every
// per-limit string header. A previous run with a larger maximum may
// have left string headers this run will not regenerate.
func (d *Driver) RemoveOldHeaders() error {
	for _, undefine := range []bool{false, true} {
		for _, name := range []string{"enum_params", "enum_constant", "string"} {
			if err := d.removeFile(emit.Filename(d.OutDir, name, undefine)); err != nil {
				return err
			}
		}
	}

	entries, err := os.ReadDir(d.OutDir)
	if err != nil {
		return fmt.Errorf("list output directory: %w", err)
	}
	for _, entry := range entries {
		if stringHeaderPattern.MatchString(entry.Name()) {
			if err := d.removeFile(filepath.Join(d.OutDir, entry.Name())); err != nil {
				return err
			}
		}
	}

	return nil
}

// removeFile deletes path if it exists. A missing file is not an
// error; this is cleanup.
func (d *Driver) removeFile(path string) error {
	err := os.Remove(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove %s: %w", path, err)
	}
	d.logf("removed %s", path)
	return nil
}

func (d *Driver) writeFile(name string, undefine bool, content string) error {
	path := emit.Filename(d.OutDir, name, undefine)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	d.logf("wrote %s", path)
	return nil
}

func (d *Driver) logf(format string, args ...any) {
	if d.Log == nil {
		return
	}
	fmt.Fprintf(d.Log, format+"\n", args...)
}

package codegen

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"stringgen/internal/plan"
)

func listHeaders(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

func TestDriverRoundTrip(t *testing.T) {
	dir := t.TempDir()
	driver := &Driver{OutDir: dir}

	if err := driver.Generate(plan.LengthLimits(256, 128)); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	want := []string{
		"enum_constant.hpp",
		"enum_params.hpp",
		"string.hpp",
		"string128.hpp",
		"string256.hpp",
		"undef_enum_constant.hpp",
		"undef_enum_params.hpp",
	}
	got := listHeaders(t, dir)
	if len(got) != len(want) {
		t.Fatalf("Generated files = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Generated files = %v, want %v", got, want)
		}
	}

	// Families sized to the largest limit.
	families, err := os.ReadFile(filepath.Join(dir, "enum_params.hpp"))
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(families), "#define BOOST_METAPARSE_V1_EP256(param)") {
		t.Error("Family chain must reach the largest limit")
	}
	if strings.Contains(string(families), "#define BOOST_METAPARSE_V1_EP257(param)") {
		t.Error("Family chain must stop at the largest limit")
	}

	aggregator, err := os.ReadFile(filepath.Join(dir, "string.hpp"))
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(aggregator), "#elif BOOST_METAPARSE_LIMIT_STRING_SIZE <= 256") {
		t.Error("Aggregator missing dispatch branch for 256")
	}
}

func TestDriverRemovesStaleHeaders(t *testing.T) {
	dir := t.TempDir()

	// A previous run with a larger maximum left files behind.
	for _, name := range []string{"string9999.hpp", "undef_enum_params.hpp"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("stale"), 0o644); err != nil {
			t.Fatalf("WriteFile() error: %v", err)
		}
	}

	driver := &Driver{OutDir: dir}
	if err := driver.Generate(plan.LengthLimits(256, 128)); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "string9999.hpp")); !os.IsNotExist(err) {
		t.Error("Stale string9999.hpp must be deleted")
	}

	// The family file was regenerated, not left stale.
	content, err := os.ReadFile(filepath.Join(dir, "undef_enum_params.hpp"))
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(content) == "stale" {
		t.Error("undef_enum_params.hpp must be regenerated")
	}
}

func TestDriverLeavesForeignFilesAlone(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"cat.hpp", "string_at.hpp", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("keep"), 0o644); err != nil {
			t.Fatalf("WriteFile() error: %v", err)
		}
	}

	driver := &Driver{OutDir: dir}
	if err := driver.Generate(plan.LengthLimits(128, 128)); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for _, name := range []string{"cat.hpp", "string_at.hpp", "notes.txt"} {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil || string(content) != "keep" {
			t.Errorf("%s must survive cleanup untouched", name)
		}
	}
}

func TestDriverIdempotent(t *testing.T) {
	dir := t.TempDir()
	driver := &Driver{OutDir: dir}
	limits := plan.LengthLimits(256, 128)

	if err := driver.Generate(limits); err != nil {
		t.Fatalf("first Generate() error: %v", err)
	}
	first := map[string][]byte{}
	for _, name := range listHeaders(t, dir) {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("ReadFile() error: %v", err)
		}
		first[name] = content
	}

	if err := driver.Generate(limits); err != nil {
		t.Fatalf("second Generate() error: %v", err)
	}
	second := listHeaders(t, dir)
	if len(second) != len(first) {
		t.Fatalf("second run produced %d files, want %d", len(second), len(first))
	}
	for _, name := range second {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("ReadFile() error: %v", err)
		}
		if string(content) != string(first[name]) {
			t.Errorf("%s differs between runs, output must be deterministic", name)
		}
	}
}

func TestDriverProgressLog(t *testing.T) {
	dir := t.TempDir()
	var log strings.Builder
	driver := &Driver{OutDir: dir, Log: &log}

	if err := driver.Generate(plan.LengthLimits(128, 128)); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !strings.Contains(log.String(), "wrote "+filepath.Join(dir, "string128.hpp")) {
		t.Errorf("Missing progress line for string128.hpp, got:\n%s", log.String())
	}
}

func TestDriverMissingOutputDir(t *testing.T) {
	driver := &Driver{OutDir: filepath.Join(t.TempDir(), "missing")}
	if err := driver.Generate(plan.LengthLimits(128, 128)); err == nil {
		t.Error("Generate() must fail when the output directory does not exist")
	}
}

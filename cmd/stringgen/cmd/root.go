package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"stringgen/internal/codegen"
	"stringgen/internal/config"
	"stringgen/internal/plan"
)

var (
	cfgFile         string
	outDir          string
	maxLengthLimit  int
	lengthLimitStep int
	quiet           bool
)

var rootCmd = &cobra.Command{
	Use:   "stringgen",
	Short: "Generates the metaprogramming string header files",
	Long: `stringgen regenerates the family of C-preprocessor headers
implementing bounded-size compile-time string literals: the enumeration
and repetition macro families, one string implementation header per
length limit, and the aggregator header dispatching between them.

Every run deletes the previously generated files and regenerates the
full set from scratch; output is deterministic in the inputs.`,
	SilenceUsage: true,
	RunE:         runGenerate,
}

// Execute runs the root command. Cobra reports the error itself.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "Optional TOML config file")
	rootCmd.Flags().StringVar(&outDir, "out-dir", "", "Directory the headers are written to (must exist)")
	rootCmd.Flags().IntVar(&maxLengthLimit, "max-length-limit", config.DefaultMaxLengthLimit, "The maximum supported length limit")
	rootCmd.Flags().IntVar(&lengthLimitStep, "length-limit-step", config.DefaultLengthLimitStep, "The longest step at which headers are generated")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-file progress output")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts := config.Default()

	if cfgFile != "" {
		file, err := config.LoadFile(cfgFile)
		if err != nil {
			return err
		}
		opts.ApplyFile(file)
	}

	// Explicit flags win over config-file values.
	if outDir != "" {
		opts.OutDir = outDir
	}
	if cmd.Flags().Changed("max-length-limit") {
		opts.MaxLengthLimit = maxLengthLimit
	}
	if cmd.Flags().Changed("length-limit-step") {
		opts.LengthLimitStep = lengthLimitStep
	}
	opts.Quiet = quiet

	if err := opts.Validate(); err != nil {
		return err
	}

	var log io.Writer
	if !opts.Quiet {
		log = os.Stdout
	}

	driver := &codegen.Driver{OutDir: opts.OutDir, Log: log}
	return driver.Generate(plan.LengthLimits(opts.MaxLengthLimit, opts.LengthLimitStep))
}

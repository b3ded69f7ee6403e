package main

import (
	"fmt"
	"io"
	"log/slog"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/born-ml/ndarray/internal/literal"
	"github.com/born-ml/ndarray/nd"
)

// options holds the persistent flags shared by every command.
type options struct {
	dtype     string
	precision int
	verbose   bool
	logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "ndarray",
		Short:         "Inspect N-dimensional array literals",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(opts.verbose)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.dtype, "dtype", "float64", "element type (float32, float64, int, int32, int64)")
	flags.IntVar(&opts.precision, "precision", nd.DefaultPrintOptions().Precision, "digits after the decimal point")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Show version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "ndarray %s\n", version)
			},
		},
		&cobra.Command{
			Use:   "dump <file>",
			Short: "Print the array stored in a YAML or JSON file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withArray(opts, args[0], cmd.OutOrStdout(), dumpArray)
			},
		},
		&cobra.Command{
			Use:   "info <file>",
			Short: "Print shape, strides, size and hash of the array stored in a file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withArray(opts, args[0], cmd.OutOrStdout(), describeArray)
			},
		},
		&cobra.Command{
			Use:   "demo",
			Short: "Walk through views, write-through and reshaping",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDemo(cmd.OutOrStdout(), nd.PrintOptions{Precision: opts.precision})
			},
		},
	)

	return rootCmd
}

// Command bodies, one per supported element type.
type (
	float32Func = func(io.Writer, *nd.Array[float32], nd.PrintOptions) error
	float64Func = func(io.Writer, *nd.Array[float64], nd.PrintOptions) error
	intFunc     = func(io.Writer, *nd.Array[int], nd.PrintOptions) error
	int32Func   = func(io.Writer, *nd.Array[int32], nd.PrintOptions) error
	int64Func   = func(io.Writer, *nd.Array[int64], nd.PrintOptions) error
)

// withArray loads path, builds an array of the requested dtype and hands it to
// the generic command body.
func withArray(opts *options, path string, w io.Writer, run func(io.Writer, *loaded, nd.PrintOptions) error) error {
	doc, err := literal.ReadFile(path)
	if err != nil {
		return err
	}

	dtype := opts.dtype
	if doc.DType != "" {
		dtype = doc.DType
	}
	opts.logger.Debug("loaded literal", "path", path, "dtype", dtype, "shape", doc.Shape)

	l := &loaded{}
	switch dtype {
	case "float32":
		l.f32, err = literal.Build[float32](doc)
	case "float64":
		l.f64, err = literal.Build[float64](doc)
	case "int":
		l.i, err = literal.Build[int](doc)
	case "int32":
		l.i32, err = literal.Build[int32](doc)
	case "int64":
		l.i64, err = literal.Build[int64](doc)
	default:
		return fmt.Errorf("unsupported dtype %q", dtype)
	}
	if err != nil {
		return err
	}

	return run(w, l, nd.PrintOptions{Precision: opts.precision})
}

// loaded holds exactly one array, selected by dtype.
type loaded struct {
	f32 *nd.Array[float32]
	f64 *nd.Array[float64]
	i   *nd.Array[int]
	i32 *nd.Array[int32]
	i64 *nd.Array[int64]
}

func dispatch(w io.Writer, l *loaded, p nd.PrintOptions,
	f32 float32Func, f64 float64Func, i intFunc, i32 int32Func, i64 int64Func) error {
	switch {
	case l.f32 != nil:
		return f32(w, l.f32, p)
	case l.f64 != nil:
		return f64(w, l.f64, p)
	case l.i != nil:
		return i(w, l.i, p)
	case l.i32 != nil:
		return i32(w, l.i32, p)
	default:
		return i64(w, l.i64, p)
	}
}

func dumpArray(w io.Writer, l *loaded, p nd.PrintOptions) error {
	return dispatch(w, l, p, dump[float32], dump[float64], dump[int], dump[int32], dump[int64])
}

func describeArray(w io.Writer, l *loaded, p nd.PrintOptions) error {
	return dispatch(w, l, p, describe[float32], describe[float64], describe[int], describe[int32], describe[int64])
}

func dump[T nd.Element](w io.Writer, a *nd.Array[T], p nd.PrintOptions) error {
	_, err := fmt.Fprintln(w, a.DumpWith(p))
	return err
}

func describe[T nd.Element](w io.Writer, a *nd.Array[T], _ nd.PrintOptions) error {
	var zero T
	bytes := uint64(a.Size()) * uint64(unsafe.Sizeof(zero))

	_, err := fmt.Fprintf(w, "kind:    %s\nndim:    %d\nshape:   %v\nstrides: %v\nsize:    %d (%s)\nhash:    %016x\n",
		a.Kind(), a.NDim(), a.Shape(), a.Strides(), a.Size(), humanize.IBytes(bytes), a.Hash())
	return err
}

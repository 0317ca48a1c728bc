package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mahdiidarabi/numberid/pkg/numberid"
)

type options struct {
	inputs     map[numberid.Format]*string
	outputs    map[numberid.OutputFormat]*bool
	filter     string
	sshModuli  bool
	jsonOutput bool
	verbose    bool
	configFile string
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	opts := &options{
		inputs:  make(map[numberid.Format]*string),
		outputs: make(map[numberid.OutputFormat]*bool),
	}

	cmd := &cobra.Command{
		Use:   "numberid",
		Short: "Identify what cryptographic artifact a number might be",
		Long: `numberid decodes one number and reports its size, primality, digest size
class, elliptic curve parameter or point matches, and matches in reference
files of known numbers.`,
		Example: `  numberid -x 0xFFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFF
  numberid -d 7919 --filter prime
  numberid -b AQAB -X -D --json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindConfig(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, v, opts)
		},
	}

	flags := cmd.Flags()
	opts.inputs[numberid.FormatHex] = flags.StringP("hex", "x", "", "input number in hex, optionally 0x-prefixed")
	opts.inputs[numberid.FormatDecimal] = flags.StringP("dec", "d", "", "input number in decimal")
	opts.inputs[numberid.FormatBase64] = flags.StringP("base64", "b", "", "input number as base64 big-endian bytes")
	opts.inputs[numberid.FormatMPI] = flags.StringP("mpi", "m", "", "input number as base64 MPI")

	opts.outputs[numberid.OutputHex] = flags.BoolP("out-hex", "X", false, "print the number in hex")
	opts.outputs[numberid.OutputDecimal] = flags.BoolP("out-dec", "D", false, "print the number in decimal")
	opts.outputs[numberid.OutputBase64] = flags.BoolP("out-base64", "B", false, "print the number as base64")
	opts.outputs[numberid.OutputMPI] = flags.BoolP("out-mpi", "M", false, "print the number as base64 MPI")
	opts.outputs[numberid.OutputLittleEndian] = flags.BoolP("out-le", "L", false, "print the number as little-endian hex")

	flags.StringVarP(&opts.filter, "filter", "f", "", "run only the named classifier")
	flags.BoolVar(&opts.sshModuli, "ssh-moduli", false, "also look the number up in the SSH moduli file")
	flags.BoolVar(&opts.jsonOutput, "json", false, "print results as JSON")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&opts.configFile, "config", "", "config file (yaml, toml or json)")

	defaults := numberid.DefaultConfig()
	flags.String("moduli", defaults.ModuliPath, "SSH moduli file")
	flags.String("database", defaults.DatabasePath, "number database (hex_key,label per line)")
	flags.Int("max-line-bytes", defaults.MaxLineBytes, "skip reference file lines longer than this")

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, opts *options) error {
	format, input, err := opts.input()
	if err != nil {
		return err
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(v, opts.configFile, logger)
	if err != nil {
		return err
	}

	client := numberid.NewClient().
		WithConfig(cfg).
		WithSSHModuli(opts.sshModuli || opts.filter == numberid.NameSSHModuli).
		WithOutputs(opts.requestedOutputs()...)

	results, err := client.Classify(input, format, opts.filter)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), results)
	}
	writeText(cmd.OutOrStdout(), cmd.ErrOrStderr(), results)
	return nil
}

// input returns the single input flag that was set.
func (o *options) input() (numberid.Format, string, error) {
	var (
		format numberid.Format
		value  string
		count  int
	)
	for _, f := range []numberid.Format{
		numberid.FormatHex, numberid.FormatDecimal, numberid.FormatBase64, numberid.FormatMPI,
	} {
		if s := *o.inputs[f]; s != "" {
			format, value = f, s
			count++
		}
	}
	switch count {
	case 0:
		return 0, "", errors.New("one of --hex, --dec, --base64 or --mpi is required")
	case 1:
		return format, value, nil
	default:
		return 0, "", errors.New("only one of --hex, --dec, --base64 or --mpi may be given")
	}
}

// requestedOutputs lists output formats in a stable order.
func (o *options) requestedOutputs() []numberid.OutputFormat {
	var formats []numberid.OutputFormat
	for _, f := range []numberid.OutputFormat{
		numberid.OutputHex, numberid.OutputDecimal, numberid.OutputBase64,
		numberid.OutputMPI, numberid.OutputLittleEndian,
	} {
		if *o.outputs[f] {
			formats = append(formats, f)
		}
	}
	return formats
}

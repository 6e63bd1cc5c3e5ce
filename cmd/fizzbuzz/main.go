package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"

	"github.com/fizzkit/fizz.go/configuration"
	"github.com/fizzkit/fizz.go/fizzbuzz"
	"github.com/fizzkit/fizz.go/logger"
)

const (
	// CfgConfigFilePath is the key of the optional JSON, YAML or TOML config file.
	CfgConfigFilePath = "config"
	// CfgFizzBuzzLow is the key of the inclusive lower bound of the printed range.
	CfgFizzBuzzLow = "fizzbuzz.low"
	// CfgFizzBuzzHigh is the key of the inclusive upper bound of the printed range.
	CfgFizzBuzzHigh = "fizzbuzz.high"

	// envVarPrefix is the prefix of env vars that override config file values.
	envVarPrefix = "FIZZBUZZ"
)

func main() {
	flagSet := configuration.NewUnsortedFlagSet("fizzbuzz", flag.ContinueOnError)
	configFilePath := flagSet.String(CfgConfigFilePath, "", "path to a JSON, YAML or TOML config file")
	flagSet.Int(CfgFizzBuzzLow, 1, "inclusive lower bound of the printed range")
	flagSet.Int(CfgFizzBuzzHigh, 100, "inclusive upper bound of the printed range")
	flagSet.String(logger.ConfigurationKeyLevel, logger.DefaultCfg.Level, "the minimum enabled logging level")
	flagSet.String(logger.ConfigurationKeyEncoding, logger.DefaultCfg.Encoding, "the logger's encoding (options: \"json\", \"console\")")
	// diagnostics go to stderr so that stdout only carries the printed labels
	flagSet.StringSlice(logger.ConfigurationKeyOutputPaths, []string{"stderr"}, "a list of URLs, file paths or stdout/stderr to write logging output to")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	config := configuration.New()
	if *configFilePath != "" {
		if err := config.LoadFile(*configFilePath); err != nil {
			fmt.Fprintf(os.Stderr, "unable to load config file: %s\n", err)
			os.Exit(1)
		}
	}
	if err := config.LoadEnvironmentVars(envVarPrefix); err != nil {
		fmt.Fprintf(os.Stderr, "unable to load env vars: %s\n", err)
		os.Exit(1)
	}
	if err := config.LoadFlagSet(flagSet); err != nil {
		fmt.Fprintf(os.Stderr, "unable to load flags: %s\n", err)
		os.Exit(1)
	}

	if err := logger.InitGlobalLogger(config); err != nil {
		fmt.Fprintf(os.Stderr, "unable to initialize logger: %s\n", err)
		os.Exit(1)
	}
	log := logger.NewLogger("fizzbuzz")

	bounds := fizzbuzz.NewBounds(config.Int(CfgFizzBuzzLow), config.Int(CfgFizzBuzzHigh))
	log.Debugf("printing labels for [%d, %d] (%d lines)", bounds.Low, bounds.High, bounds.Len())

	if err := fizzbuzz.NewPrinter(os.Stdout).Print(bounds); err != nil {
		log.Fatalf("unable to print labels: %s", err)
	}
}

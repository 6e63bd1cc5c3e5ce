package configuration

import (
	flag "github.com/spf13/pflag"
)

// NewUnsortedFlagSet creates a new FlagSet that does not sort its flags when printing the usage.
func NewUnsortedFlagSet(name string, errorHandling flag.ErrorHandling) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, errorHandling)
	flagset.SortFlags = false

	return flagset
}

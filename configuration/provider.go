package configuration

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
)

// lowerPosflag implements a pflag command line provider with lower cased keys.
type lowerPosflag struct {
	delim   string
	flagset *pflag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a commandline flags provider that returns a nested map[string]interface{} where the
// nesting hierarchy of keys is defined by delim.
//
// It takes an optional (but recommended) Koanf instance to see if the flags defined have been set from other
// providers, for instance, a config file. If they are not, then the default values of the flags are merged. If they
// do exist, the flag values are not merged but only the values that have been explicitly set in the command line
// are merged.
func lowerPosflagProvider(f *pflag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagset: f,
		delim:   delim,
		ko:      ko,
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]interface{}, error) {
	mp := make(map[string]interface{})
	p.flagset.VisitAll(func(f *pflag.Flag) {
		// If no value was explicitly set in the command line,
		// check if the default value should be used.
		if !f.Changed {
			if p.ko != nil {
				if p.ko.Exists(strings.ToLower(f.Name)) {
					return
				}
			} else {
				return
			}
		}

		var v interface{}
		switch f.Value.Type() {
		case "int", "int8", "int16", "int32", "int64":
			v = cast.ToInt64(f.Value.String())
		case "uint", "uint8", "uint16", "uint32", "uint64":
			v = cast.ToUint64(f.Value.String())
		case "float", "float32", "float64":
			v = cast.ToFloat64(f.Value.String())
		case "bool":
			v, _ = p.flagset.GetBool(f.Name)
		case "duration":
			v, _ = p.flagset.GetDuration(f.Name)
		case "stringSlice":
			v, _ = p.flagset.GetStringSlice(f.Name)
		case "intSlice":
			v, _ = p.flagset.GetIntSlice(f.Name)
		default:
			v = f.Value.String()
		}

		mp[strings.ToLower(f.Name)] = v
	})

	return maps.Unflatten(mp, p.delim), nil
}

// ReadBytes is not supported by the pflag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, errors.New("pflag provider does not support this method")
}

// Watch is not supported by the pflag provider.
func (p *lowerPosflag) Watch(cb func(event interface{}, err error)) error {
	return errors.New("pflag provider does not support this method")
}

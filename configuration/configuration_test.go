package configuration_test

import (
	"encoding/json"
	"os"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/fizzkit/fizz.go/configuration"
)

func tempFile(t *testing.T, pattern string) (string, *os.File) {
	tmpfile, err := os.CreateTemp("", pattern)
	require.NoError(t, err)

	t.Cleanup(func() {
		err := os.Remove(tmpfile.Name())
		require.NoError(t, err)
	})

	return tmpfile.Name(), tmpfile
}

func TestFetchFlagset(t *testing.T) {
	testFlagSet := configuration.NewUnsortedFlagSet("", flag.ContinueOnError)
	testFlagSet.String("A", "321", "test")
	testFlagSet.Set("A", "321")

	config := configuration.New()

	err := config.LoadFlagSet(testFlagSet)
	require.NoError(t, err)

	val := config.String("A")
	require.EqualValues(t, "321", val)
}

func TestFetchFlagsetDefaults(t *testing.T) {
	testFlagSet := configuration.NewUnsortedFlagSet("", flag.ContinueOnError)
	testFlagSet.Int("fizzbuzz.low", 1, "test")
	testFlagSet.Int("fizzbuzz.high", 100, "test")
	testFlagSet.Set("fizzbuzz.high", "15")

	config := configuration.New()

	err := config.LoadFlagSet(testFlagSet)
	require.NoError(t, err)

	require.EqualValues(t, 1, config.Int("fizzbuzz.low"))
	require.EqualValues(t, 15, config.Int("fizzbuzz.high"))
}

func TestFetchEnvVars(t *testing.T) {
	testFlagSet := configuration.NewUnsortedFlagSet("", flag.ContinueOnError)
	testFlagSet.String("B", "322", "test")
	testFlagSet.Set("B", "322")

	os.Setenv("TEST_B", "321")
	os.Setenv("TEST_C", "321")

	config := configuration.New()

	err := config.LoadFlagSet(testFlagSet)
	require.NoError(t, err)

	err = config.LoadEnvironmentVars("TEST")
	require.NoError(t, err)

	val := config.String("B")
	require.EqualValues(t, "321", val)

	_, exists := config.All()["c"]
	require.False(t, exists, "expected read config value to not exist")
}

func TestFetchJSONFile(t *testing.T) {
	conf := make(map[string]int)
	conf["C"] = 321

	jsonConfFileName, jsonConfFile := tempFile(t, "config*.json")

	content, err := json.MarshalIndent(conf, "", "    ")
	require.NoError(t, err)

	_, err = jsonConfFile.Write(content)
	require.NoError(t, err)

	err = jsonConfFile.Close()
	require.NoError(t, err)

	config := configuration.New()

	err = config.LoadFile(jsonConfFileName)
	require.NoError(t, err)

	val := config.Int("C")
	require.EqualValues(t, 321, val)
}

func TestFetchYAMLFile(t *testing.T) {
	conf := make(map[string]int)
	conf["D"] = 321

	yamlConfFileName, yamlConfFile := tempFile(t, "config*.yaml")

	content, err := yaml.Marshal(conf)
	require.NoError(t, err)

	_, err = yamlConfFile.Write(content)
	require.NoError(t, err)

	err = yamlConfFile.Close()
	require.NoError(t, err)

	config := configuration.New()

	err = config.LoadFile(yamlConfFileName)
	require.NoError(t, err)

	val := config.Int("D")
	require.EqualValues(t, 321, val)
}

func TestFetchTOMLFile(t *testing.T) {
	tomlConfFileName, tomlConfFile := tempFile(t, "config*.toml")

	_, err := tomlConfFile.WriteString("E = 321\n")
	require.NoError(t, err)

	err = tomlConfFile.Close()
	require.NoError(t, err)

	config := configuration.New()

	err = config.LoadFile(tomlConfFileName)
	require.NoError(t, err)

	val := config.Int("E")
	require.EqualValues(t, 321, val)
}

func TestLoadFileUnknownFormat(t *testing.T) {
	confFileName, confFile := tempFile(t, "config*.conf")

	err := confFile.Close()
	require.NoError(t, err)

	config := configuration.New()

	err = config.LoadFile(confFileName)
	require.ErrorIs(t, err, configuration.ErrUnknownConfigFormat)
}

func TestMergePrecedence(t *testing.T) {
	// defaults < file < env var < explicitly set flag
	conf := map[string]int{"F": 1}

	jsonConfFileName, jsonConfFile := tempFile(t, "config*.json")

	content, err := json.MarshalIndent(conf, "", "    ")
	require.NoError(t, err)

	_, err = jsonConfFile.Write(content)
	require.NoError(t, err)

	err = jsonConfFile.Close()
	require.NoError(t, err)

	testFlagSet := configuration.NewUnsortedFlagSet("", flag.ContinueOnError)
	testFlagSet.Int("F", 0, "test")
	testFlagSet.Int("G", 9, "test")

	os.Setenv("TEST_F", "2")

	config := configuration.New()

	err = config.LoadFile(jsonConfFileName)
	require.NoError(t, err)

	err = config.LoadEnvironmentVars("TEST")
	require.NoError(t, err)

	err = config.LoadFlagSet(testFlagSet)
	require.NoError(t, err)

	// the env var overrides the file value, the unset flag keeps its default
	require.EqualValues(t, 2, config.Int("F"))
	require.EqualValues(t, 9, config.Int("G"))

	testFlagSet.Set("F", "3")

	err = config.LoadFlagSet(testFlagSet)
	require.NoError(t, err)

	require.EqualValues(t, 3, config.Int("F"))
}

func TestSetDefault(t *testing.T) {
	config := configuration.New()

	require.NoError(t, config.SetDefault("H", 1))
	require.EqualValues(t, 1, config.Int("H"))

	require.NoError(t, config.Set("H", 2))
	require.EqualValues(t, 2, config.Int("H"))

	require.NoError(t, config.SetDefault("H", 3))
	require.EqualValues(t, 2, config.Int("H"), "SetDefault should not overwrite an existing value")
}

func TestStoreFile(t *testing.T) {
	config := configuration.New()

	require.NoError(t, config.Set("I", 321))
	require.NoError(t, config.Set("secret", "hidden"))

	jsonConfFileName, jsonConfFile := tempFile(t, "config*.json")
	require.NoError(t, jsonConfFile.Close())

	err := config.StoreFile(jsonConfFileName, []string{"secret"})
	require.NoError(t, err)

	restored := configuration.New()
	require.NoError(t, restored.LoadFile(jsonConfFileName))

	require.EqualValues(t, 321, restored.Int("I"))
	require.False(t, restored.Exists("secret"), "ignored settings should not be stored")
}

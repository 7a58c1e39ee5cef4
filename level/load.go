package level

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/spf13/viper"
)

//go:embed levels.yaml
var defaultPack []byte

// Load reads a level pack from a YAML or JSON file, chosen by extension,
// and validates it.
func Load(path string) (*Pack, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrInvalidPack, path, err)
	}
	return decode(v)
}

// Parse reads a level pack from r in the given format ("yaml" or "json")
// and validates it.
func Parse(r io.Reader, format string) (*Pack, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidPack, format, err)
	}
	return decode(v)
}

// Default returns the pack embedded in the module.
func Default() (*Pack, error) {
	return Parse(bytes.NewReader(defaultPack), "yaml")
}

func decode(v *viper.Viper) (*Pack, error) {
	var p Pack
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal: %v", ErrInvalidPack, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

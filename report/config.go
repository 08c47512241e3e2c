package report

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
	"github.com/pkg/errors"
)

// Config is the external configuration of the projection layer: the
// color palette and the folding rules for small pie slices.
type Config struct {
	Palette        []string `default:"#2980b9,#27ae60,#8e44ad,#f39c12,#c0392b,#16a085,#d35400,#2c3e50" env:"PALETTE" usage:"slice colors, assigned most frequent first"`
	OtherThreshold float64  `default:"2" env:"OTHER_THRESHOLD" usage:"percent share a slice must exceed to stay out of the other bucket"`
	OtherLabel     string   `default:"Other" env:"OTHER_LABEL" usage:"label of the folded slice"`
	OtherColor     string   `default:"#95a5a6" env:"OTHER_COLOR" usage:"color of the folded slice"`
}

// LoadConfig resolves the config from defaults, the given files (JSON
// or HCL) and SETFLOW_-prefixed environment variables, in that order.
func LoadConfig(files ...string) (Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipFlags: true,
		EnvPrefix: "SETFLOW",
		Files:     files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".hcl": aconfighcl.New(),
		},
	})

	if err := loader.Load(); err != nil {
		return Config{}, errors.Wrap(err, "loading report config")
	}
	return cfg, nil
}

package archive

import (
	"github.com/vecsql/vecidx/format"
	"github.com/vecsql/vecidx/internal/options"
)

type config struct {
	compression format.CompressionType
}

// Option configures Export's compression choice.
type Option = options.Option[*config]

// WithCompression selects the codec Export compresses the manifest
// with. Defaults to format.CompressionZstd.
func WithCompression(c format.CompressionType) Option {
	return options.NoError(func(cfg *config) { cfg.compression = c })
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{compression: format.CompressionZstd}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Package slpconfig loads batch-pipeline configuration for callers
// embedding this library, using gopkg.in/yaml.v3 the way
// ernie-trinity-tools loads its own runtime config.
package slpconfig

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SinkKind selects where computed detector output is written.
type SinkKind string

const (
	SinkNone   SinkKind = "none"
	SinkSQLite SinkKind = "sqlite"
)

// BatchConfig holds the tunables for a batch replay-processing run: worker
// pool width, strict-mode parsing (mirroring the parser's
// ParseOptions.Strict), output sink selection, and playback-queue serving
// options.
type BatchConfig struct {
	Workers int    `yaml:"workers"`
	Strict  bool   `yaml:"strict"`
	Sink    SinkKind `yaml:"sink"`
	SQLitePath string `yaml:"sqlite_path"`

	PlaybackQueue PlaybackQueueConfig `yaml:"playback_queue"`
}

// PlaybackQueueConfig configures the websocket playback-queue server.
type PlaybackQueueConfig struct {
	Enabled       bool   `yaml:"enabled"`
	BindAddress   string `yaml:"bind_address"`
	JWTSigningKeyPath string `yaml:"jwt_signing_key_path"`
}

// DefaultBatchConfig returns the config used when no file is supplied.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		Workers: 4,
		Strict:  false,
		Sink:    SinkNone,
		PlaybackQueue: PlaybackQueueConfig{
			Enabled:     false,
			BindAddress: "127.0.0.1:9875",
		},
	}
}

// Load reads and parses a BatchConfig from path.
func Load(path string) (BatchConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return BatchConfig{}, errors.Wrapf(err, "open config %s", path)
	}
	defer f.Close()
	return LoadFrom(f)
}

// LoadFrom parses a BatchConfig from r, filling in defaults for any field
// the document omits.
func LoadFrom(r io.Reader) (BatchConfig, error) {
	cfg := DefaultBatchConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return BatchConfig{}, errors.Wrap(err, "decode batch config")
	}
	return cfg, nil
}

package numberid

import (
	"go.uber.org/zap"

	"github.com/mahdiidarabi/numberid/internal/refdb"
)

// Default reference file locations.
const (
	DefaultModuliPath   = "/etc/ssh/moduli"
	DefaultDatabasePath = "/etc/numberid/numbers.csv"
)

// Config holds settings shared by the classifiers.
type Config struct {
	ModuliPath   string      // OpenSSH moduli file
	DatabasePath string      // hex_key,label number database
	MaxLineBytes int         // longer reference lines are skipped
	Logger       *zap.Logger // nil disables logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ModuliPath:   DefaultModuliPath,
		DatabasePath: DefaultDatabasePath,
		MaxLineBytes: refdb.DefaultMaxLineBytes,
	}
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

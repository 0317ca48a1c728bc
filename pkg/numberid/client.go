package numberid

import (
	"fmt"

	"go.uber.org/zap"
)

// Client provides a high-level API for importing and classifying numbers.
type Client struct {
	config    Config
	outputs   []OutputFormat
	sshModuli bool
}

// NewClient creates a new client with default settings.
func NewClient() *Client {
	return &Client{config: DefaultConfig()}
}

// WithConfig replaces the client configuration.
func (c *Client) WithConfig(cfg Config) *Client {
	c.config = cfg
	return c
}

// WithLogger sets the logger passed to sessions and classifiers.
func (c *Client) WithLogger(logger *zap.Logger) *Client {
	c.config.Logger = logger
	return c
}

// WithOutputs adds output-formatting classifiers to every registry the client
// builds.
func (c *Client) WithOutputs(formats ...OutputFormat) *Client {
	c.outputs = append(c.outputs, formats...)
	return c
}

// WithSSHModuli enables the SSH moduli lookup.
func (c *Client) WithSSHModuli(enabled bool) *Client {
	c.sshModuli = enabled
	return c
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// Registry builds the registry used by Classify: the default set, plus the
// SSH moduli lookup and any requested output formats.
func (c *Client) Registry() (*Registry, error) {
	reg := DefaultRegistry(c.config)
	if c.sshModuli {
		reg.Register(NameSSHModuli, SSHModuli(c.config))
	}
	outputs, err := OutputClassifiers(c.outputs...)
	if err != nil {
		return nil, err
	}
	for name, classifier := range outputs {
		reg.Register(name, classifier)
	}
	return reg, nil
}

// Classify imports input in the given format and runs filter, or every
// registered classifier when filter is empty.
//
// Args:
//   - input: Encoded number.
//   - format: Encoding of input.
//   - filter: Classifier name, or "" for all.
//
// Returns:
//   - One Result per classifier run. Classifier failures are reported in
//     Result.Err; import errors and unknown filters are returned directly.
func (c *Client) Classify(input string, format Format, filter string) ([]Result, error) {
	logger := c.config.logger()

	n, err := Import(input, format)
	if err != nil {
		return nil, err
	}
	logger.Debug("number imported",
		zap.Stringer("format", format),
		zap.Int("bits", n.BitLen()))

	reg, err := c.Registry()
	if err != nil {
		return nil, fmt.Errorf("failed to build registry: %w", err)
	}
	session, err := NewSession(n, reg)
	if err != nil {
		return nil, err
	}
	return session.WithLogger(logger).Dispatch(filter)
}

package numberid

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Session classifies one number against one registry.
type Session struct {
	number   *Number
	registry *Registry
	logger   *zap.Logger
}

// NewSession binds a number to a registry. A session cannot exist without a
// number, so classifiers never see a nil input through it.
func NewSession(n *Number, reg *Registry) (*Session, error) {
	if n == nil {
		return nil, ErrNullInput
	}
	if reg == nil {
		return nil, errors.New("registry is required")
	}
	return &Session{number: n, registry: reg, logger: zap.NewNop()}, nil
}

// WithLogger sets the logger used for dispatch events.
func (s *Session) WithLogger(logger *zap.Logger) *Session {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Number returns the number being classified.
func (s *Session) Number() *Number {
	return s.number
}

// Dispatch runs the classifier registered under name, or every registered
// classifier in name order when name is empty. A classifier failure is
// recorded in its Result and does not stop the others. Only an unknown name
// is returned as an error.
func (s *Session) Dispatch(name string) ([]Result, error) {
	if name != "" {
		c, ok := s.registry.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
		}
		return []Result{s.run(name, c)}, nil
	}

	names := s.registry.Names()
	results := make([]Result, 0, len(names))
	for _, n := range names {
		c, _ := s.registry.Lookup(n)
		results = append(results, s.run(n, c))
	}
	return results, nil
}

func (s *Session) run(name string, c Classifier) Result {
	s.logger.Debug("dispatching classifier", zap.String("name", name))
	report, err := c.Classify(s.number)
	if err != nil {
		s.logger.Warn("classifier failed", zap.String("name", name), zap.Error(err))
		return Result{Name: name, Err: err}
	}
	return Result{Name: name, Report: report}
}

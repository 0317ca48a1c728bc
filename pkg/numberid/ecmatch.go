package numberid

import (
	"go.uber.org/zap"

	"github.com/mahdiidarabi/numberid/internal/ec"
)

// ECMatch reports every curve in the built-in catalog for which the number is
// the field prime, a coefficient, or a valid encoded point. Matches are
// listed in catalog order. Small curves produce coincidental hits, and about
// half of all 32-byte numbers are canonical ed25519 encodings, so an
// "ed25519 point" hit alone says little.
func ECMatch(logger *zap.Logger) Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	catalog := ec.Default()
	logger.Debug("curve catalog ready",
		zap.Int("curves", len(catalog.Curves)),
		zap.Int("skipped", len(catalog.Skipped)))
	for name, err := range catalog.Skipped {
		logger.Debug("curve unavailable", zap.String("curve", name), zap.Error(err))
	}

	return ClassifierFunc(func(n *Number) (Report, error) {
		return Report{Label: "ec", Value: joinOrNo(catalog.Match(n.v))}, nil
	})
}

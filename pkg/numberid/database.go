package numberid

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mahdiidarabi/numberid/internal/refdb"
)

// referenceClassifier looks the number up in a flat reference file. When
// withLabel is set the matching record's label is reported, otherwise Yes.
type referenceClassifier struct {
	label     string
	path      string
	parser    refdb.LineParser
	maxLine   int
	withLabel bool
	logger    *zap.Logger
}

func (c *referenceClassifier) Classify(n *Number) (Report, error) {
	if n == nil {
		return Report{}, ErrNullInput
	}

	rec, found, stats, err := refdb.Lookup(c.path, n.v, c.parser, c.maxLine)
	c.logger.Debug("reference scan finished",
		zap.String("path", c.path),
		zap.String("parser", c.parser.Name()),
		zap.Bool("found", found),
		zap.Int("lines", stats.Lines),
		zap.Int("skipped", stats.Skipped))
	if err != nil {
		return Report{}, fmt.Errorf("%s lookup failed: %w", c.label, err)
	}

	switch {
	case !found:
		return Report{Label: c.label, Value: Negative}, nil
	case c.withLabel:
		return Report{Label: c.label, Value: rec.Label}, nil
	default:
		return Report{Label: c.label, Value: "Yes"}, nil
	}
}

// DatabaseMatch looks the number up in cfg.DatabasePath, a file of
// hex_key,label,... lines, and reports the label of the first match.
func DatabaseMatch(cfg Config) Classifier {
	return &referenceClassifier{
		label:     "match",
		path:      cfg.DatabasePath,
		parser:    refdb.CSVParser{},
		maxLine:   cfg.MaxLineBytes,
		withLabel: true,
		logger:    cfg.logger(),
	}
}

// SSHModuli reports whether the number appears in cfg.ModuliPath, an OpenSSH
// moduli file.
func SSHModuli(cfg Config) Classifier {
	return &referenceClassifier{
		label:   "SSH moduli",
		path:    cfg.ModuliPath,
		parser:  refdb.ModuliParser{},
		maxLine: cfg.MaxLineBytes,
		logger:  cfg.logger(),
	}
}

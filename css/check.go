package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	minify "github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Checker runs produced stylesheets through CSS grammar before they are
// handed out.
type Checker struct {
	log *zap.Logger
}

// NewChecker creates a new CSS checker.
func NewChecker(log *zap.Logger) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{log: log.Named("css-check")}
}

// Check returns number of rulesets in data or the first grammar error.
// The optional source parameter identifies what's being checked (for debug logging).
func (c *Checker) Check(data []byte, source ...string) (int, error) {
	if len(source) > 0 && source[0] != "" {
		c.log.Debug("Checking CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)

	var rulesets, declarations int
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return rulesets, fmt.Errorf("malformed css: %w", err)
			}
			c.log.Debug("CSS checked", zap.Int("rulesets", rulesets), zap.Int("declarations", declarations))
			return rulesets, nil
		case css.BeginRulesetGrammar:
			rulesets++
		case css.DeclarationGrammar:
			declarations++
		case css.BeginAtRuleGrammar, css.AtRuleGrammar:
			c.log.Debug("Unexpected @-rule in generated css", zap.ByteString("rule", data))
		}
	}
}

// Minify returns compacted version of CSS text. Comments are dropped.
func Minify(data []byte) ([]byte, error) {
	m := minify.New()
	m.AddFunc("text/css", mincss.Minify)

	out, err := m.Bytes("text/css", data)
	if err != nil {
		return nil, fmt.Errorf("unable to minify css: %w", err)
	}
	return out, nil
}

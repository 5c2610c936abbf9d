package parser

import (
	"github.com/charj-lang/charj/internal/token"
)

type delimitedConfig struct {
	Closing   token.Kind
	Separator token.Kind

	AllowEmpty    bool
	AllowTrailing bool

	// ElementStart lists the kinds an element may start with; it feeds the
	// expected set of the error raised for a missing element.
	ElementStart []token.Kind
}

type delimitedResult[T any] struct {
	Items    []T
	Trailing bool
}

// parseDelimited parses `item (sep item)* sep?` up to cfg.Closing. curTok is
// the first element (or the closing token) on entry and the closing token on
// exit. parseItem must leave curTok on the last token of its element.
func parseDelimited[T any](p *Parser, cfg delimitedConfig, parseItem func(idx int) (T, bool)) (delimitedResult[T], bool) {
	var result delimitedResult[T]

	if cfg.Separator == "" {
		cfg.Separator = token.COMMA
	}

	if cfg.Closing == "" {
		panic("parseDelimited requires a closing token")
	}

	if p.curTok.Kind == cfg.Closing {
		if cfg.AllowEmpty {
			return result, true
		}
		p.fail(p.curTok, cfg.ElementStart...)
		return result, false
	}

	for {
		item, ok := parseItem(len(result.Items))
		if !ok {
			return result, false
		}
		result.Items = append(result.Items, item)

		switch p.peekTok.Kind {
		case cfg.Separator:
			p.nextToken() // move to separator
			p.nextToken() // move to next potential element

			if p.curTok.Kind == cfg.Closing {
				if cfg.AllowTrailing {
					result.Trailing = true
					return result, true
				}
				p.fail(p.curTok, cfg.ElementStart...)
				return result, false
			}
			continue
		case cfg.Closing:
			p.nextToken()
			return result, true
		default:
			p.fail(p.peekTok, cfg.Separator, cfg.Closing)
			return result, false
		}
	}
}

package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/livegit/pkg/domain/interfaces"
)

// Highlighter renders text as HTML with CSS classes for token kinds. Unknown
// languages are rendered as escaped plain text.
type Highlighter struct {
	formatter *html.Formatter
	style     *chroma.Style
}

var _ interfaces.Highlighter = (*Highlighter)(nil)

func New() *Highlighter {
	return &Highlighter{
		formatter: html.New(html.WithClasses(true), html.PreventSurroundingPre(true)),
		style:     styles.Get("github"),
	}
}

func (x *Highlighter) Highlight(language, text string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iter, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", goerr.Wrap(err, "failed to tokenise text", goerr.V("language", language))
	}

	var buf strings.Builder
	if err := x.formatter.Format(&buf, x.style, iter); err != nil {
		return "", goerr.Wrap(err, "failed to format text", goerr.V("language", language))
	}

	return buf.String(), nil
}

// Package agent produces the weather analysis and travel recommendation
// texts with a chain of language-model stages.
package agent

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Result is the output of a Generator: either PlainText or StructuredResult.
type Result interface {
	isResult()
}

// PlainText is a bare text result.
type PlainText string

func (PlainText) isResult() {}

// StructuredResult is a result carrying a formatted payload.
type StructuredResult struct {
	Payload string
	Format  string // "markdown", "html" or "text"
	Model   string
}

func (StructuredResult) isResult() {}

// Text coerces any generator output into text. It never fails.
func Text(v interface{}) string {
	switch r := v.(type) {
	case nil:
		return ""
	case PlainText:
		return string(r)
	case string:
		return r
	case StructuredResult:
		return payloadText(r)
	case *StructuredResult:
		if r == nil {
			return ""
		}
		return payloadText(*r)
	case fmt.Stringer:
		return r.String()
	default:
		return fmt.Sprint(v)
	}
}

func payloadText(r StructuredResult) string {
	if strings.EqualFold(r.Format, "html") {
		return flattenHTML(r.Payload)
	}
	return r.Payload
}

// flattenHTML returns the text nodes of an html document, one block per line.
func flattenHTML(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))

	var b strings.Builder
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style":
				skip++
			case "p", "div", "br", "li", "h1", "h2", "h3", "h4", "tr":
				newline(&b)
			}
		case html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" {
				newline(&b)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if (string(name) == "script" || string(name) == "style") && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			text := strings.Join(strings.Fields(string(z.Text())), " ")
			if text == "" {
				continue
			}
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
				b.WriteByte(' ')
			}
			b.WriteString(text)
		}
	}
}

func newline(b *strings.Builder) {
	if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
		b.WriteByte('\n')
	}
}

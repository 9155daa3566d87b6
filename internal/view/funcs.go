package view

import (
	"html/template"
	"strings"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"upper":      strings.ToUpper,
		"title":      titleCase,
		"initial":    initial,
		"letters":    letters,
		"paragraphs": paragraphs,
	}
}

// titleCase upper-cases the first ASCII letter ("islamic" → "Islamic").
func titleCase(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// initial returns the first letter of a canonical slug, used for the
// "more names" link.
func initial(slug string) string {
	if slug == "" {
		return "a"
	}
	return strings.ToLower(slug[:1])
}

func letters() []string {
	out := make([]string, 0, 26)
	for c := 'a'; c <= 'z'; c++ {
		out = append(out, string(c))
	}
	return out
}

// paragraphs escapes body text and wraps blank-line separated blocks in <p>.
func paragraphs(body string) template.HTML {
	var b strings.Builder
	for _, block := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(template.HTMLEscapeString(block))
		b.WriteString("</p>")
	}
	return template.HTML(b.String())
}

package rag

import (
	"regexp"
	"strings"
)

var (
	bulletRe      = regexp.MustCompile(`^[\*\-\+] `)
	numberedRe    = regexp.MustCompile(`^\d+\. `)
	boldStarRe    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	boldUnderRe   = regexp.MustCompile(`__(.*?)__`)
	italicStarRe  = regexp.MustCompile(`\*([^*]+)\*`)
	italicUnderRe = regexp.MustCompile(`_([^_]+)_`)
	inlineCodeRe  = regexp.MustCompile("`([^`]+)`")
	fencedCodeRe  = regexp.MustCompile("(?s)```(.*?)```")
)

// FormatHTML converts a lightweight markdown subset (headings, bullet and
// numbered lists, bold/italic, inline code, fenced code) into HTML. It is a
// pure text transform; generated answers are formatted this way before being
// returned to clients.
func FormatHTML(text string) string {
	if text == "" {
		return text
	}

	lines := strings.Split(text, "\n")
	formatted := make([]string, 0, len(lines))
	openList := "" // "ul", "ol" or ""

	closeList := func() {
		if openList != "" {
			formatted = append(formatted, "</"+openList+">")
			openList = ""
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			if openList != "" {
				formatted = append(formatted, "")
			} else {
				formatted = append(formatted, "<br>")
			}
			continue
		}

		switch {
		case strings.HasPrefix(line, "### "):
			closeList()
			line = "<h3>" + line[4:] + "</h3>"
		case strings.HasPrefix(line, "## "):
			closeList()
			line = "<h2>" + line[3:] + "</h2>"
		case strings.HasPrefix(line, "# "):
			closeList()
			line = "<h1>" + line[2:] + "</h1>"
		case bulletRe.MatchString(line):
			if openList != "ul" {
				closeList()
				formatted = append(formatted, "<ul>")
				openList = "ul"
			}
			line = "<li>" + line[2:] + "</li>"
		case numberedRe.MatchString(line):
			if openList != "ol" {
				closeList()
				formatted = append(formatted, "<ol>")
				openList = "ol"
			}
			line = "<li>" + numberedRe.ReplaceAllString(line, "") + "</li>"
		default:
			closeList()
		}

		// Bold must be rewritten before italic so single markers left behind
		// cannot pair across what used to be a double marker.
		line = boldStarRe.ReplaceAllString(line, "<strong>$1</strong>")
		line = boldUnderRe.ReplaceAllString(line, "<strong>$1</strong>")
		line = italicStarRe.ReplaceAllString(line, "<em>$1</em>")
		line = italicUnderRe.ReplaceAllString(line, "<em>$1</em>")
		line = inlineCodeRe.ReplaceAllString(line, "<code>$1</code>")

		formatted = append(formatted, line)
	}
	closeList()

	result := strings.Join(formatted, "\n")
	result = fencedCodeRe.ReplaceAllString(result, "<pre><code>$1</code></pre>")
	return result
}

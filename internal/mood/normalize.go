package mood

import "regexp"

// #region patterns

var (
	fencedCodeRE = regexp.MustCompile("```[\\s\\S]*?```")
	inlineCodeRE = regexp.MustCompile("`[^`]+`")
	urlRE        = regexp.MustCompile(`https?://\S+`)
	markupTagRE  = regexp.MustCompile(`<[^>]+>`)
)

// #endregion

// #region normalize

// Normalize strips fenced code blocks, inline code spans, URLs, and
// tag-like markup from raw input. Pasted code and links are full of
// tokens that look like mood signals ("broken", "???" in a stack trace)
// but carry none. Total over any string, including empty; idempotent.
func Normalize(text string) string {
	text = fencedCodeRE.ReplaceAllString(text, "")
	text = inlineCodeRE.ReplaceAllString(text, "")
	text = urlRE.ReplaceAllString(text, "")
	text = markupTagRE.ReplaceAllString(text, "")
	return text
}

// #endregion

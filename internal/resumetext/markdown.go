package resumetext

import "strings"

// MarkdownTitle is the top-level heading of exported documents
const MarkdownTitle = "# 我的简历"

// ToMarkdown converts delimited résumé text to Markdown: headers become level two
// headings and - bullets become * items. Other lines pass through trimmed.
func ToMarkdown(text string) string {
	var b strings.Builder
	b.WriteString(MarkdownTitle + "\n\n")

	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if title, ok := headerTitle(line); ok {
			b.WriteString("\n## " + title + "\n")
			continue
		}
		if strings.HasPrefix(line, "-") && !isDivider(line) {
			b.WriteString("* " + bulletText(line) + "\n")
			continue
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

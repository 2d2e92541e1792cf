package security

import (
	"regexp"
	"strings"
)

// Чистка пользовательского ввода перед сохранением. Экранирование для
// вывода — забота фронта, здесь убираем только явно исполняемое.

var (
	scriptRe  = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	iframeRe  = regexp.MustCompile(`(?is)<iframe\b.*?</iframe>`)
	jsProtoRe = regexp.MustCompile(`(?i)javascript:`)
	onAttrRe  = regexp.MustCompile(`(?i)on\w+\s*=`)
)

// SanitizeInput обрезает пробелы и вырезает скриптовые конструкции.
func SanitizeInput(input string) string {
	out := strings.TrimSpace(input)
	out = scriptRe.ReplaceAllString(out, "")
	out = iframeRe.ReplaceAllString(out, "")
	out = jsProtoRe.ReplaceAllString(out, "")
	out = onAttrRe.ReplaceAllString(out, "")
	return out
}

// SanitizeHTML экранирует спецсимволы для случаев, когда текст попадёт
// в разметку как есть.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

func SanitizeHTML(dirty string) string {
	return htmlReplacer.Replace(dirty)
}

// ValidRating — оценка отзыва в допустимом диапазоне.
func ValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

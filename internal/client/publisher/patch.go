package publisher

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/iudanet/pagekeeper/internal/models"
)

// fieldPattern находит элемент с атрибутом data-field: открывающий тег,
// содержимое до ближайшего закрывающего тега, закрывающий тег.
// Вложенные теги того же элемента обрывают совпадение на первом закрывающем теге.
func fieldPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)(<[^>]*data-field="` + regexp.QuoteMeta(key) + `"[^>]*>)(.*?)(</[^>]+>)`)
}

// ApplyPatch replaces the inner content of every element marked with a changed
// field key. Значение вставляется как есть. Ключи, которых нет в файле,
// возвращаются в skipped.
func ApplyPatch(content string, changes models.Snapshot) (string, []string) {
	var skipped []string

	for _, key := range changes.Keys() {
		re := fieldPattern(key)
		matches := re.FindAllStringSubmatchIndex(content, -1)
		if len(matches) == 0 {
			skipped = append(skipped, key)
			continue
		}

		value := changes[key]
		var b strings.Builder
		last := 0
		for _, m := range matches {
			// m[2]:m[3] открывающий тег, m[6]:m[7] закрывающий
			b.WriteString(content[last:m[3]])
			b.WriteString(value)
			b.WriteString(content[m[6]:m[7]])
			last = m[1]
		}
		b.WriteString(content[last:])
		content = b.String()
	}

	return content, skipped
}

// CommitMessage перечисляет страницу, измененные поля, автора и время
func CommitMessage(page string, keys []string, author string, at time.Time) string {
	if author == "" {
		author = "unknown"
	}
	return fmt.Sprintf("Update %s page content\n\nModified fields: %s\nUpdated by: %s\nTimestamp: %s\n\nChanges made through pagekeeper",
		page,
		strings.Join(keys, ", "),
		author,
		at.UTC().Format(time.RFC3339),
	)
}

package page

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// EmbedHosts хосты, с которых разрешено встраивать iframe
var EmbedHosts = regexp.MustCompile(`^https://(www\.)?(youtube\.com|youtube-nocookie\.com|player\.vimeo\.com|google\.com/maps|maps\.google\.com|yandex\.ru/map-widget)/`)

// siteElements элементы, которые верстка сайта использует внутри слотов
var siteElements = []string{
	"a", "abbr", "article", "aside", "audio", "b", "blockquote", "br", "button",
	"caption", "cite", "code", "dd", "del", "div", "dl", "dt", "em", "figcaption",
	"figure", "footer", "h1", "h2", "h3", "h4", "h5", "h6", "header", "hr", "i",
	"iframe", "img", "ins", "label", "li", "mark", "nav", "ol", "p", "picture",
	"pre", "q", "s", "section", "small", "source", "span", "strong", "sub", "sup",
	"table", "tbody", "td", "tfoot", "th", "thead", "time", "tr", "u", "ul", "video",
}

// bareElements элементы, которые остаются даже без атрибутов.
// iframe и медиа без разрешенного src удаляются целиком.
func bareElements() []string {
	out := make([]string, 0, len(siteElements))
	for _, el := range siteElements {
		switch el {
		case "iframe", "img", "source", "video", "audio":
			continue
		}
		out = append(out, el)
	}
	return out
}

// Sanitizer cleans field HTML before it reaches the page, the cache or a commit.
// Safe values pass through byte for byte.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer создает узкую политику: вырезаются script, style, обработчики
// событий и ссылки со схемами кроме http, https, mailto и tel.
func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements(siteElements...)
	p.AllowNoAttrs().OnElements(bareElements()...)

	p.AllowStyling()
	p.AllowDataAttributes()
	p.AllowAttrs("style", "title", "lang", "dir", "role", "aria-label", "aria-hidden").Globally()

	p.AllowURLSchemes("http", "https", "mailto", "tel")
	p.AllowRelativeURLs(true)
	p.RequireNoFollowOnLinks(false)
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowAttrs("src", "alt", "width", "height", "loading", "srcset", "sizes").OnElements("img")
	p.AllowAttrs("src", "srcset", "type", "media").OnElements("source")
	p.AllowAttrs("src", "controls", "autoplay", "muted", "loop", "poster", "playsinline").OnElements("video", "audio")
	p.AllowAttrs("type", "name", "value", "disabled").OnElements("button")
	p.AllowAttrs("for").OnElements("label")
	p.AllowAttrs("datetime").OnElements("time", "del", "ins")
	p.AllowAttrs("colspan", "rowspan", "scope").OnElements("td", "th")
	p.AllowAttrs("src").Matching(EmbedHosts).OnElements("iframe")
	p.AllowAttrs("width", "height", "title", "allow", "allowfullscreen", "frameborder", "loading").OnElements("iframe")

	return &Sanitizer{policy: p}
}

// Sanitize returns the value unchanged when the policy removes nothing,
// otherwise the cleaned value.
func (s *Sanitizer) Sanitize(value string) string {
	cleaned := s.policy.Sanitize(value)
	if cleaned == tokenize(value) {
		return value
	}
	return cleaned
}

// tokenize сериализует value тем же токенизатором, что и политика,
// без удаления чего-либо
func tokenize(value string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(value))
	for {
		if z.Next() == html.ErrorToken {
			return b.String()
		}
		b.WriteString(z.Token().String())
	}
}

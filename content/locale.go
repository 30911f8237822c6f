package content

import "golang.org/x/text/language"

// Supported site locales. Dutch is the default, matching the company's home
// market.
const (
	LocaleDutch  = "nl"
	LocaleFrench = "fr"
)

var supported = []language.Tag{language.Dutch, language.French}

var matcher = language.NewMatcher(supported)

// ResolveLocale picks the locale for a request. An explicit query value wins;
// otherwise the Accept-Language header is matched against the supported
// locales, falling back to Dutch.
func ResolveLocale(query, acceptLanguage string) string {
	if query == LocaleDutch || query == LocaleFrench {
		return query
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return LocaleDutch
	}

	_, index, _ := matcher.Match(tags...)
	if index == 1 {
		return LocaleFrench
	}
	return LocaleDutch
}

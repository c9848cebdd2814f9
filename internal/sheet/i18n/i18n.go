// Package i18n exposes translated strings to sheet workers.
//
// The platform translates static markup through data-i18n attributes, but
// workers cannot read those directly. Each registered key gets a hidden
// backing attribute plus a sheet-opened worker that copies the translation
// into it, so roll strings and computed labels stay localized.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/hermetic-games/sheetforge/internal/platform/errors"
)

// KeySet is the ordered collection of translation keys a sheet build
// exposes to its workers. Duplicate keys collapse to the first entry.
type KeySet struct {
	keys []string
	seen map[string]bool
}

// NewKeySet returns a key set seeded with the given keys.
func NewKeySet(keys ...string) *KeySet {
	s := &KeySet{seen: map[string]bool{}}
	s.Add(keys...)
	return s
}

// Add registers more translation keys, keeping first-seen order.
func (s *KeySet) Add(keys ...string) {
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" || s.seen[key] {
			continue
		}
		s.seen[key] = true
		s.keys = append(s.keys, key)
	}
}

// Keys returns the registered keys in first-seen order.
func (s *KeySet) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Attrs builds the hidden inputs backing each translation key.
func (s *KeySet) Attrs() string {
	var b strings.Builder
	for i, key := range s.keys {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "<input type=\"hidden\" name=\"attr_translation-%s\" value=\"%s\" />", key, key)
	}
	return b.String()
}

// AttrsSetup builds the sheet-opened worker that copies each translation
// into its backing attribute.
func (s *KeySet) AttrsSetup() string {
	var b strings.Builder
	b.WriteString("on(\"sheet:opened\", function() {\n")
	b.WriteString("    setAttrs({\n")
	for _, key := range s.keys {
		fmt.Fprintf(&b, "        \"translation-%s\": getTranslationByKey(%q),\n", key, key)
	}
	b.WriteString("    });\n")
	b.WriteString("});")
	return b.String()
}

// ValidateTag parses a BCP 47 locale tag such as "en" or "pt-BR".
func ValidateTag(locale string) (language.Tag, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, errors.Wrap(errors.CodeLocaleInvalidTag,
			fmt.Sprintf("invalid locale tag %q", locale), err)
	}
	return tag, nil
}

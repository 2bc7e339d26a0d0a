package listview

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale pins title ordering so results do not depend on the host's
// ambient locale.
var DefaultLocale = language.English

// Collation fixes the locale used for title ordering. The zero value uses
// DefaultLocale.
type Collation struct {
	Locale language.Tag
}

func (c Collation) tag() language.Tag {
	if c.Locale == language.Und {
		return DefaultLocale
	}
	return c.Locale
}

// ParseLocale accepts a BCP 47 tag such as "en", "de-DE" or "sv".
func ParseLocale(s string) (Collation, error) {
	if strings.TrimSpace(s) == "" {
		return Collation{Locale: DefaultLocale}, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Collation{}, err
	}
	return Collation{Locale: tag}, nil
}

// comparer holds per-call collation state; collate.Collator and cases.Caser
// are not safe for concurrent use, so every derivation gets its own.
type comparer struct {
	coll *collate.Collator
	fold cases.Caser
}

func (c Collation) newComparer() *comparer {
	return &comparer{
		coll: collate.New(c.tag()),
		fold: cases.Fold(),
	}
}

func (c *comparer) compareTitles(a, b string) int {
	return c.coll.CompareString(a, b)
}

func (c *comparer) folded(s string) string {
	return c.fold.String(s)
}

// CompareTitles orders two titles under the collation's locale.
func (c Collation) CompareTitles(a, b string) int {
	return c.newComparer().compareTitles(a, b)
}

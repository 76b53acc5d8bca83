package usecase

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/gestion-patrimonial/internal/application/dto"
)

// foldText minúsculas sin diacríticos: "Electrónica" → "electronica".
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// applyListOptions filtra y ordena una lista ya leída. name devuelve el texto visible
// sobre el que se busca y se ordena.
func applyListOptions[T any](items []T, opts dto.ListOptions, name func(T) string) []T {
	if q := strings.TrimSpace(opts.Search); q != "" {
		needle := foldText(q)
		filtered := items[:0:0]
		for _, it := range items {
			if strings.Contains(foldText(name(it)), needle) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}
	if opts.SortByName {
		col := collate.New(language.Spanish, collate.IgnoreCase)
		sort.SliceStable(items, func(i, j int) bool {
			return col.CompareString(name(items[i]), name(items[j])) < 0
		})
	}
	return items
}

// Package glossary expands English and Swedish legal queries with their
// Finnish equivalents, improving recall against mostly-Finnish case-law
// content.
package glossary

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// termEntry is one glossary row in the JSON file.
type termEntry struct {
	FI string `json:"fi"`
	EN string `json:"en"`
	SV string `json:"sv"`
}

type glossaryFile struct {
	Terms []termEntry `json:"terms"`
}

// Glossary holds the en/sv -> fi lookup index.
type Glossary struct {
	index map[string]map[string]string // lang -> lowercase term -> Finnish term
}

var reNonWord = regexp.MustCompile(`[^\wäöåÄÖÅ]`)

// Load reads the glossary JSON file. A missing or unreadable file yields an
// empty glossary, not an error: expansion is best-effort.
func Load(path string) *Glossary {
	g := &Glossary{index: map[string]map[string]string{"en": {}, "sv": {}}}

	data, err := os.ReadFile(path)
	if err != nil {
		return g
	}
	var file glossaryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return g
	}
	g.add(file.Terms)
	return g
}

// New builds a glossary from entries already in memory. Used by tests and
// embedded term sets.
func New(terms []map[string]string) *Glossary {
	g := &Glossary{index: map[string]map[string]string{"en": {}, "sv": {}}}
	entries := make([]termEntry, 0, len(terms))
	for _, t := range terms {
		entries = append(entries, termEntry{FI: t["fi"], EN: t["en"], SV: t["sv"]})
	}
	g.add(entries)
	return g
}

func (g *Glossary) add(terms []termEntry) {
	for _, entry := range terms {
		fi := strings.TrimSpace(entry.FI)
		if fi == "" {
			continue
		}
		if en := strings.TrimSpace(entry.EN); en != "" {
			g.index["en"][strings.ToLower(en)] = fi
		}
		if sv := strings.TrimSpace(entry.SV); sv != "" {
			g.index["sv"][strings.ToLower(sv)] = fi
		}
	}
}

// Expand appends Finnish equivalents of matched query words when the source
// language is "en" or "sv". Other languages, unknown words, and terms already
// present in the query leave it unchanged.
func (g *Glossary) Expand(query, sourceLang string) string {
	if query == "" || sourceLang == "" {
		return query
	}
	lang := strings.ToLower(sourceLang)
	lookup, ok := g.index[lang]
	if !ok || len(lookup) == 0 {
		return query
	}

	var words []string
	for _, w := range strings.Fields(query) {
		if len(w) >= 3 {
			words = append(words, normalizeWord(w))
		}
	}
	wordSet := make(map[string]struct{}, len(words))
	for _, w := range words {
		wordSet[w] = struct{}{}
	}

	added := make(map[string]struct{})
	for _, word := range words {
		fi, ok := lookup[word]
		if !ok {
			continue
		}
		if _, present := wordSet[normalizeWord(fi)]; !present {
			added[fi] = struct{}{}
		}
	}
	if len(added) == 0 {
		return query
	}

	terms := make([]string, 0, len(added))
	for t := range added {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return fmt.Sprintf("%s %s", query, strings.Join(terms, " "))
}

// Stats returns the entry count per source language.
func (g *Glossary) Stats() map[string]int {
	return map[string]int{
		"en": len(g.index["en"]),
		"sv": len(g.index["sv"]),
	}
}

func normalizeWord(w string) string {
	return reNonWord.ReplaceAllString(strings.ToLower(strings.TrimSpace(w)), "")
}

package commands

import (
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// Filter returns the commands whose label or description contains query,
// ignoring case. Order is preserved and an empty query keeps everything.
func Filter(query string, cmds []Command) []Command {
	if query == "" {
		return append([]Command(nil), cmds...)
	}
	q := strings.ToLower(query)
	result := []Command{}
	for _, cmd := range cmds {
		if strings.Contains(strings.ToLower(cmd.Label), q) ||
			(cmd.Description != "" && strings.Contains(strings.ToLower(cmd.Description), q)) {
			result = append(result, cmd)
		}
	}
	return result
}

// FilterFuzzyMatch keeps the commands whose label and description fuzzy
// match query, still in declared order
func FilterFuzzyMatch(query string, cmds []Command) []Command {
	if query == "" {
		return append([]Command(nil), cmds...)
	}
	matches := fuzzy.FindNoSort(query, searchTexts(cmds))
	result := make([]Command, len(matches))
	for i, match := range matches {
		result[i] = cmds[match.Index]
	}
	return result
}

func searchTexts(cmds []Command) []string {
	texts := make([]string, len(cmds))
	for i, cmd := range cmds {
		texts[i] = strings.TrimSpace(cmd.Label + " " + cmd.Description)
	}
	return texts
}

// MatchedRunes returns the rune indexes of label that match query under
// mode, for highlighting. Nil means nothing to highlight.
func MatchedRunes(query, label string, mode FilterMode) []int {
	if query == "" {
		return nil
	}
	if mode == FilterFuzzy {
		matches := fuzzy.Find(query, []string{label})
		if len(matches) == 0 {
			return nil
		}
		return byteToRuneIndexes(label, matches[0].MatchedIndexes)
	}

	lower := strings.ToLower(label)
	at := strings.Index(lower, strings.ToLower(query))
	if at < 0 || len(lower) != len(label) {
		return nil
	}
	start := utf8.RuneCountInString(label[:at])
	n := utf8.RuneCountInString(query)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = start + i
	}
	return idx
}

func byteToRuneIndexes(s string, offsets []int) []int {
	runeAt := make(map[int]int, len(s))
	i := 0
	for b := range s {
		runeAt[b] = i
		i++
	}
	out := make([]int, 0, len(offsets))
	for _, off := range offsets {
		if r, ok := runeAt[off]; ok {
			out = append(out, r)
		}
	}
	return out
}

package services

import (
	"cmp"
	"math"
	"regexp"
	"slices"
	"strconv"
)

// DefaultOrder is the position given to folders without a numeric prefix.
const DefaultOrder = 999

var (
	orderPrefixRe = regexp.MustCompile(`^(\d+)-`)
	firstNumberRe = regexp.MustCompile(`\d+`)
)

// ExtractOrder reads the "NN-" prefix of a timeline folder name.
func ExtractOrder(name string) int {
	m := orderPrefixRe.FindStringSubmatch(name)
	if m == nil {
		return DefaultOrder
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultOrder
	}
	return n
}

// StripOrderPrefix turns "2-Kickoff" into "Kickoff".
func StripOrderPrefix(name string) string {
	return orderPrefixRe.ReplaceAllString(name, "")
}

// ExtractNumber returns the first run of digits in a filename, or +Inf when
// there is none so that unnumbered files sort last.
func ExtractNumber(name string) float64 {
	m := firstNumberRe.FindString(name)
	if m == "" {
		return math.Inf(1)
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.Inf(1)
	}
	return n
}

// SortByOrder stably sorts folder names by their numeric prefix.
func SortByOrder(names []string) {
	slices.SortStableFunc(names, func(a, b string) int {
		return cmp.Compare(ExtractOrder(a), ExtractOrder(b))
	})
}

// SortByNumber stably sorts file names by their first embedded number.
func SortByNumber(names []string) {
	slices.SortStableFunc(names, func(a, b string) int {
		return cmp.Compare(ExtractNumber(a), ExtractNumber(b))
	})
}

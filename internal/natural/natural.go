// Package natural orders strings the way people read them: runs of digits
// compare by numeric value, so "form2" sorts before "form10".
package natural

import "sort"

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Compare returns -1, 0 or +1. Digit runs compare by value; on equal value
// the run with fewer leading zeros sorts first. Everything else compares
// bytewise.
func Compare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			runStartA := i
			for i < len(a) && a[i] == '0' {
				i++
			}
			valStartA := i
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			valA := a[valStartA:i]
			runLenA := i - runStartA

			runStartB := j
			for j < len(b) && b[j] == '0' {
				j++
			}
			valStartB := j
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			valB := b[valStartB:j]
			runLenB := j - runStartB

			if len(valA) != len(valB) {
				return sign(len(valA) - len(valB))
			}
			if valA != valB {
				if valA < valB {
					return -1
				}
				return 1
			}
			if runLenA != runLenB {
				return sign(runLenA - runLenB)
			}
			continue
		}

		if a[i] != b[j] {
			if a[i] < b[j] {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	return sign((len(a) - i) - (len(b) - j))
}

// Less reports whether a sorts before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Sort orders s in place. The sort is stable.
func Sort(s []string) {
	sort.SliceStable(s, func(i, j int) bool {
		return Less(s[i], s[j])
	})
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

package note

import "strings"

// fenceState tracks whether the ref scanner is inside a fenced code block.
type fenceState struct {
	inFence  bool
	fenceCh  byte
	fenceLen int
}

// normalizeFenceLine strips leading whitespace and blockquote prefixes so
// fences inside common markdown contexts are still detected.
func normalizeFenceLine(line string) string {
	s := strings.TrimLeft(line, " \t")
	for strings.HasPrefix(s, ">") {
		s = strings.TrimPrefix(s, ">")
		s = strings.TrimLeft(s, " \t")
	}
	return s
}

// parseFenceMarker checks whether a normalized line opens or closes a fence.
func parseFenceMarker(line string) (ch byte, n int, ok bool) {
	if len(line) < 3 {
		return 0, 0, false
	}
	ch = line[0]
	if ch != '`' && ch != '~' {
		return 0, 0, false
	}
	i := 0
	for i < len(line) && line[i] == ch {
		i++
	}
	if i < 3 {
		return 0, 0, false
	}
	return ch, i, true
}

// update advances the fence state for one line.
// Returns true if the line itself is a fence marker.
func (fs *fenceState) update(line string) bool {
	ch, n, ok := parseFenceMarker(normalizeFenceLine(line))
	if !ok {
		return false
	}

	if !fs.inFence {
		fs.inFence = true
		fs.fenceCh = ch
		fs.fenceLen = n
		return true
	}

	// A closing fence must use the same character and at least the opening length.
	if fs.fenceCh == ch && n >= fs.fenceLen {
		fs.inFence = false
		fs.fenceCh = 0
		fs.fenceLen = 0
		return true
	}

	return false
}

// removeInlineCode blanks out inline code spans, preserving character
// positions so wikilink offsets stay valid. Handles single and double
// backtick spans.
func removeInlineCode(line string) string {
	result := []byte(line)
	i := 0

	for i < len(result) {
		if result[i] != '`' {
			i++
			continue
		}

		start := i
		openLen := 0
		for i < len(result) && result[i] == '`' {
			openLen++
			i++
		}

		for j := i; j < len(result); j++ {
			if result[j] != '`' {
				continue
			}
			closeLen := 0
			end := j
			for end < len(result) && result[end] == '`' {
				closeLen++
				end++
			}
			if closeLen == openLen {
				for k := start; k < end; k++ {
					result[k] = ' '
				}
				i = end
				break
			}
			j = end - 1
		}
	}

	return string(result)
}

package partition

import (
	"strings"
	"unicode"
)

// ChunkText splits text into chunks of between minWords and maxWords,
// preferring sentence boundaries. A sentence longer than maxWords is
// force-split by words.
func ChunkText(text string, minWords, maxWords int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	sentences := splitSentences(text)

	var chunks []string
	var cur []string
	curWords := 0

	for _, s := range sentences {
		wcount := len(strings.Fields(s))
		if curWords+wcount <= maxWords {
			cur = append(cur, s)
			curWords += wcount
			continue
		}

		if len(cur) > 0 && curWords >= minWords {
			// Flush the current chunk and start a new one
			chunks = append(chunks, strings.Join(cur, " "))
			cur = []string{s}
			curWords = wcount
		} else {
			// Forced split: emit current and sentence together even if
			// over the maximum
			cur = append(cur, s)
			chunks = append(chunks, strings.Join(cur, " "))
			cur = nil
			curWords = 0
		}
	}
	if len(cur) > 0 {
		chunks = append(chunks, strings.Join(cur, " "))
	}

	// Final pass: split extremely large chunks by words
	var fixed []string
	for _, c := range chunks {
		words := strings.Fields(c)
		if len(words) <= maxWords {
			fixed = append(fixed, c)
			continue
		}
		for i := 0; i < len(words); i += maxWords {
			end := i + maxWords
			if end > len(words) {
				end = len(words)
			}
			fixed = append(fixed, strings.Join(words[i:end], " "))
		}
	}

	return fixed
}

// splitSentences splits text after sentence-ending punctuation followed by
// whitespace.
func splitSentences(text string) []string {
	var sentences []string
	var cur strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		cur.WriteRune(r)

		if (r == '.' || r == '?' || r == '!') &&
			i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			if s := strings.TrimSpace(cur.String()); s != "" {
				sentences = append(sentences, s)
			}
			cur.Reset()
			// Skip the whitespace run
			for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				i++
			}
		}
	}

	if s := strings.TrimSpace(cur.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

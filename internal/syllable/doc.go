// Package syllable estimates English syllable counts for words and lyric lines.
//
// The counter is a deliberate heuristic: it counts vowel groups, corrects for
// silent trailing e and consonant+le endings, and short-circuits through a
// fixed table of common words the heuristic gets wrong. It trades dictionary
// accuracy for stability and zero runtime dependencies, which is what haiku
// detection needs: the same line always counts the same way.
//
// Counting never fails. Garbage input degrades to zero, never to an error.
package syllable

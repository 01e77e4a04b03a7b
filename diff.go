package jsondoc

import (
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// MergePatch computes the RFC 7386 merge patch that turns before into
// after. Both documents are canonicalized first, so formatting-only
// differences produce the empty patch "{}".
func MergePatch(before, after string) (string, error) {
	b, err := Minify(before)
	if err != nil {
		return "", err
	}
	a, err := Minify(after)
	if err != nil {
		return "", err
	}
	patch, err := jsonpatch.CreateMergePatch([]byte(b), []byte(a))
	if err != nil {
		return "", err
	}
	return string(patch), nil
}

// TextDiff renders a line-oriented diff of the canonical pretty-printed
// forms of two documents, with "-"/"+"/" " prefixes. It returns the empty
// string when the documents are structurally equal, and falls back to
// diffing the raw inputs when either fails to parse.
func TextDiff(before, after string) string {
	b, errB := PrettyPrint(before)
	a, errA := PrettyPrint(after)
	if errB != nil || errA != nil {
		b, a = before, after
	}
	if b == a {
		return ""
	}
	dmp := diffmatchpatch.New()
	c1, c2, lines := dmp.DiffLinesToChars(b+"\n", a+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(c1, c2, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

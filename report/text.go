package report

import "strings"

// Banner returns the separator printed above the output of name.
func Banner(name string) string {
	return strings.Repeat("== ", 10) + name + strings.Repeat(" ==", 10)
}

// WriteText renders every result below its banner.
func WriteText(r *Report) string {
	var b strings.Builder
	for _, res := range r.Results {
		b.WriteString(Banner(res.Program))
		b.WriteByte('\n')
		b.WriteString(res.Output)
		if res.Output != "" && !strings.HasSuffix(res.Output, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

package utils

import "strings"

var backtickEscaper = strings.NewReplacer(`\`, `\\`, "`", "\\`")

// BacktickIdentifier renders the given parts as a dot-separated, backticked
// identifier. Empty parts are skipped so callers can pass an optional schema
// without checking it first. Backslashes and backticks inside a part are
// escaped with a backslash, which both Spanner and ClickHouse accept.
//
// Examples:
//   - ("table") -> "`table`"
//   - ("app", "users") -> "`app`.`users`"
//   - ("", "users") -> "`users`"
//   - ("we`ird") -> "`we\`ird`"
//   - () -> ""
func BacktickIdentifier(parts ...string) string {
	quoted := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}

		quoted = append(quoted, "`"+backtickEscaper.Replace(part)+"`")
	}

	return strings.Join(quoted, ".")
}

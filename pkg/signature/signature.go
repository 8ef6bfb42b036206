package signature

import (
	"strings"
)

// ParamNames returns the parameter names declared in the first parameter list of sig.
// The parameter list is the text between the first `(` and its matching `)`.
// Each top-level fragment is cut at the first `=` or `:`, trimmed,
// and the first word is taken as the name, so both
// `param1: string = "default"` and `city string` produce the name.
func ParamNames(sig string) []string {
	list, ok := paramList(sig)
	if !ok || strings.TrimSpace(list) == "" {
		return nil
	}

	fragments := splitTopLevel(list)
	names := make([]string, 0, len(fragments))
	for _, p := range fragments {
		names = append(names, paramName(p))
	}
	return names
}

// ParamName returns the name of the parameter at index,
// false if index is out of range or the name is empty.
func ParamName(sig string, index int) (string, bool) {
	names := ParamNames(sig)
	if index < 0 || index >= len(names) {
		return "", false
	}
	name := names[index]
	return name, name != ""
}

func paramList(sig string) (string, bool) {
	start := strings.IndexByte(sig, '(')
	if start == -1 {
		return "", false
	}
	depth := 0
	for i := start; i < len(sig); i++ {
		switch sig[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				return sig[start+1 : i], true
			}
		}
	}
	return "", false
}

func splitTopLevel(list string) []string {
	var (
		res   []string
		depth int
		last  int
	)
	for i := 0; i < len(list); i++ {
		switch list[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				res = append(res, list[last:i])
				last = i + 1
			}
		}
	}
	return append(res, list[last:])
}

func paramName(fragment string) string {
	if idx := strings.IndexAny(fragment, "=:"); idx >= 0 {
		fragment = fragment[:idx]
	}
	fields := strings.Fields(fragment)
	if len(fields) == 0 {
		return ""
	}
	name := strings.TrimPrefix(fields[0], "...")
	return strings.TrimSuffix(name, "?")
}

package document

import "strings"

// declaration is one property/value pair of an inline style attribute.
type declaration struct {
	property string
	value    string
}

// parseStyle splits an inline style attribute into its declarations,
// keeping their order. Malformed entries are dropped.
func parseStyle(s string) []declaration {
	var decls []declaration
	for _, part := range splitDeclarations(s) {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		if prop == "" {
			continue
		}
		decls = append(decls, declaration{property: prop, value: value})
	}
	return decls
}

// splitDeclarations splits s on semicolons that are outside quoted strings
// and parentheses, so values such as url("data:a;b") stay whole.
func splitDeclarations(s string) []string {
	var (
		parts []string
		quote rune
		depth int
		start int
	)
	for i, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case r == ';' && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// setDeclaration updates property in place or appends it. An empty value
// removes the property.
func setDeclaration(decls []declaration, property, value string) []declaration {
	property = strings.ToLower(strings.TrimSpace(property))
	for i, d := range decls {
		if d.property != property {
			continue
		}
		if value == "" {
			return append(decls[:i], decls[i+1:]...)
		}
		decls[i].value = value
		return decls
	}
	if value == "" {
		return decls
	}
	return append(decls, declaration{property: property, value: value})
}

func lookupDeclaration(decls []declaration, property string) string {
	property = strings.ToLower(strings.TrimSpace(property))
	for _, d := range decls {
		if d.property == property {
			return d.value
		}
	}
	return ""
}

func formatStyle(decls []declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.property + ": " + d.value + ";"
	}
	return strings.Join(parts, " ")
}

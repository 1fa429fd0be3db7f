package dom

import "unicode"

// https://www.w3.org/TR/xml/#NT-Name
func isValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !isNameStartChar(r) {
				return false
			}
			continue
		}
		if !isNameChar(r) {
			return false
		}
	}
	return true
}

func isNameStartChar(r rune) bool {
	return r == ':' || r == '_' || unicode.IsLetter(r)
}

func isNameChar(r rune) bool {
	switch {
	case isNameStartChar(r), unicode.IsDigit(r):
		return true
	case r == '-', r == '.', r == 0xB7:
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Mc)
}

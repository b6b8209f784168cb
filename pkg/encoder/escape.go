package encoder

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// namedEntities covers the ASCII specials and the Latin-1 letters that have
// a named HTML entity.
var namedEntities = map[rune]string{
	'<': "&lt;",
	'>': "&gt;",
	'"': "&quot;",
	'&': "&amp;",

	162: "&cent;",
	192: "&Agrave;",
	193: "&Aacute;",
	194: "&Acirc;",
	195: "&Atilde;",
	196: "&Auml;",
	197: "&Aring;",
	198: "&AElig;",
	199: "&Ccedil;",
	200: "&Egrave;",
	201: "&Eacute;",
	202: "&Ecirc;",
	203: "&Euml;",
	204: "&Igrave;",
	205: "&Iacute;",
	206: "&Icirc;",
	207: "&Iuml;",
	208: "&ETH;",
	209: "&Ntilde;",
	210: "&Ograve;",
	211: "&Oacute;",
	212: "&Ocirc;",
	213: "&Otilde;",
	214: "&Ouml;",
	216: "&Oslash;",
	217: "&Ugrave;",
	218: "&Uacute;",
	219: "&Ucirc;",
	220: "&Uuml;",
	221: "&Yacute;",
	222: "&THORN;",
	223: "&szlig;",
	224: "&agrave;",
	225: "&aacute;",
	226: "&acirc;",
	227: "&atilde;",
	228: "&auml;",
	229: "&aring;",
	230: "&aelig;",
	231: "&ccedil;",
	232: "&egrave;",
	233: "&eacute;",
	234: "&ecirc;",
	235: "&euml;",
	236: "&igrave;",
	237: "&iacute;",
	238: "&icirc;",
	239: "&iuml;",
	240: "&eth;",
	241: "&ntilde;",
	242: "&ograve;",
	243: "&oacute;",
	244: "&ocirc;",
	245: "&otilde;",
	246: "&ouml;",
	248: "&oslash;",
	249: "&ugrave;",
	250: "&uacute;",
	251: "&ucirc;",
	252: "&uuml;",
	253: "&yacute;",
	254: "&thorn;",
	255: "&yuml;",
}

// Escape makes s safe for an HTML paragraph. Newlines become <br/>, carriage
// returns are dropped, and every code point above 127 without a named entity
// becomes a numeric reference. Bytes that are not valid UTF-8 are referenced
// by their byte value.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			fmt.Fprintf(&b, "&#x%04x;", s[i])
		case r == '\n':
			b.WriteString("<br/>")
		case r == '\r':
		default:
			if entity, ok := namedEntities[r]; ok {
				b.WriteString(entity)
			} else if r > 127 {
				fmt.Fprintf(&b, "&#x%04x;", r)
			} else {
				b.WriteRune(r)
			}
		}
		i += size
	}

	return b.String()
}

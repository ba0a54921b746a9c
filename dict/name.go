package dict

import (
	"net/textproto"
	"strings"

	"github.com/ghettovoice/che/internal/util"
)

var hdrNames = map[string]string{
	"c":                "Content-Type",
	"e":                "Content-Encoding",
	"f":                "From",
	"i":                "Call-ID",
	"k":                "Supported",
	"l":                "Content-Length",
	"m":                "Contact",
	"s":                "Subject",
	"t":                "To",
	"v":                "Via",
	"Call-Id":          "Call-ID",
	"Cseq":             "CSeq",
	"Mime-Version":     "MIME-Version",
	"Www-Authenticate": "WWW-Authenticate",
	"Etag":             "ETag",
	"Te":               "TE",
	"Dnt":              "DNT",
	"Content-Md5":      "Content-MD5",
	"X-Xss-Protection": "X-XSS-Protection",
}

// CanonicName converts name to the canonical form used for lookups.
// The first letter and any letter following a hyphen are upper-cased,
// the rest are lower-cased, so "accept-encoding" becomes "Accept-Encoding".
// SIP compact forms are expanded in either case ("c" and "C" become
// "Content-Type") and a few names keep their conventional spelling
// ("Call-ID", "CSeq", "ETag").
func CanonicName[T ~string](name T) string {
	s := util.TrimSP(string(name))
	if len(s) == 1 {
		s = strings.ToLower(s)
	}
	if n, ok := hdrNames[s]; ok {
		return n
	}

	s = textproto.CanonicalMIMEHeaderKey(s)
	if n, ok := hdrNames[s]; ok {
		return n
	}
	return s
}

package dict

import (
	"sync"

	"github.com/ghettovoice/che"
	"github.com/ghettovoice/che/internal/util"
)

// StandardNames lists the names of the [Standard] dictionary, index is the ID.
// New names are only ever appended.
var StandardNames = []string{
	// HTTP
	"Host",
	"User-Agent",
	"Accept",
	"Accept-Encoding",
	"Accept-Language",
	"Accept-Charset",
	"Accept-Ranges",
	"Age",
	"Allow",
	"Authorization",
	"Cache-Control",
	"Connection",
	"Content-Disposition",
	"Content-Encoding",
	"Content-Language",
	"Content-Length",
	"Content-Location",
	"Content-Range",
	"Content-Security-Policy",
	"Content-Type",
	"Cookie",
	"Date",
	"DNT",
	"ETag",
	"Expect",
	"Expires",
	"Forwarded",
	"If-Match",
	"If-Modified-Since",
	"If-None-Match",
	"If-Range",
	"If-Unmodified-Since",
	"Keep-Alive",
	"Last-Modified",
	"Link",
	"Location",
	"Origin",
	"Pragma",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Range",
	"Referer",
	"Retry-After",
	"Server",
	"Set-Cookie",
	"Strict-Transport-Security",
	"TE",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
	"Upgrade-Insecure-Requests",
	"Vary",
	"Via",
	"Warning",
	"WWW-Authenticate",
	"X-Content-Type-Options",
	"X-Forwarded-For",
	"X-Forwarded-Host",
	"X-Forwarded-Proto",
	"X-Frame-Options",
	"X-Requested-With",
	"X-XSS-Protection",
	// SIP
	"Alert-Info",
	"Authentication-Info",
	"Call-ID",
	"Call-Info",
	"Contact",
	"CSeq",
	"Error-Info",
	"From",
	"In-Reply-To",
	"Max-Forwards",
	"MIME-Version",
	"Min-Expires",
	"Organization",
	"Priority",
	"Proxy-Require",
	"Record-Route",
	"Reply-To",
	"Require",
	"Route",
	"Subject",
	"Supported",
	"Timestamp",
	"To",
	"Unsupported",
}

var standard = sync.OnceValue(func() *Table {
	entries := make([]Entry, len(StandardNames))
	for i, n := range StandardNames {
		entries[i] = Entry{Name: n, ID: che.ID(i)}
	}
	return util.Must2(NewTable(entries...))
})

// Standard returns the built-in dictionary of common HTTP and SIP headers.
// The returned table is shared, callers must not modify it.
func Standard() *Table { return standard() }

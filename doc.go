// Package che implements Compact Header Encoding (CHE), a self-describing,
// length-prefixed text encoding for ordered lists of header name/value pairs.
//
// # Overview
//
// An encoded string starts with the ';' marker followed by one record per
// header. A record is a name field, a value length field and the raw value
// bytes. Lengths are self-describing, so no delimiters are needed and payload
// bytes are never escaped. Every byte the codec writes itself (name lengths,
// header IDs, value lengths) lies within the printable range 0x20..0x7E.
//
// Header names are either literal strings ([Literal]) or numeric identifiers
// ([ID]) agreed on out of band, for example through a [dict.Dictionary]:
//
//	data, err := che.Encode(che.List{
//		{Name: che.Literal("foo"), Value: "bar"},
//		{Name: che.ID(42), Value: "69"},
//	})
//	list, err := che.Decode(data)
//
// # Formats
//
// Two incompatible wire formats exist, each is a separate [Format]:
//
//   - [V2] ("CHE-v2") is the default. Names take two structural bytes, value
//     lengths take one to three bytes with a continuation flag in bit 1 of
//     the first two. Up to 95 byte names, IDs up to 8929, values up to
//     212110 bytes.
//   - [V1] ("CHE-v1") is the legacy format. Names take one byte, value
//     lengths always take two. Up to 48 byte names, IDs up to 46,
//     values up to 9024 bytes.
//
// Use [Format.Limits] to get the exact boundaries.
//
// # Errors
//
// Encoding fails on the first entry that can't be represented and never
// returns partial output. Decoding is all-or-nothing as well. All errors
// match one of the exported sentinels with [errors.Is], see [IsEncodeError]
// and [IsDecodeError].
//
// # Concurrency
//
// Encoding and decoding keep no state between calls and are safe for
// concurrent use.
//
// [dict.Dictionary]: https://pkg.go.dev/github.com/ghettovoice/che/dict#Dictionary
package che

//go:generate go tool errtrace -w .

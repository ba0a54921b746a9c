// Package dict provides header dictionaries mapping header names to CHE IDs.
//
// Peers that share a dictionary can send common headers as two byte IDs
// instead of literal names. [Compact] replaces known literal names with IDs
// before encoding and [Expand] restores them after decoding:
//
//	d := dict.Standard()
//	data, err := che.Encode(dict.Compact(list, d))
//	...
//	list, err := che.Decode(data)
//	list, err = dict.Expand(list, d)
//
// Names are matched by their canonical form, see [CanonicName].
// Dictionaries can be loaded from YAML with [Load] and [LoadFile]:
//
//	headers:
//	  - name: Host
//	    id: 0
//	  - name: Content-Type
//	    id: 1
//
// Use [Table.Fingerprint] to check that both sides agree on the table.
package dict

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination=mock_dictionary_test.go -package=dict_test . Dictionary

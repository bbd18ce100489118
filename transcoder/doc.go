// Package transcoder converts variants to and from MessagePack, TOML and YAML.
//
// Every codec is driven by the same event stream as the JSON codec in the
// root package: encoders are variant.Visitor implementations fed by
// variant.Walk, decoders feed a variant.Builder or assemble the tree from a
// parsed document.
//
// # Kind Mapping
//
//	Kind       MessagePack        TOML              YAML
//	─────────────────────────────────────────────────────────────
//	null       nil                rejected          !!null
//	bool       true/false         boolean           !!bool
//	char       int 8              integer           !!int
//	int8..64   int 8/16/32/64     integer           !!int
//	uint8..64  uint 8/16/32/64    integer           !!int
//	double     float 64           float             !!float
//	string     str                string            !!str
//	sequence   array              array             sequence
//	mapping    map (str keys)     table             mapping
//
// MessagePack keeps the exact integer kind because fixed-width codes are
// always written; char comes back as int8 since the format has no
// character type. Positive and negative fixnums produced by other encoders
// decode as int32.
//
// TOML and YAML integers decode to the narrowest of int32, uint32 and int64,
// the rule DecodeJSON applies.
//
// # Limits
//
// Decoders reject nesting deeper than variant.MaxDepth. YAML aliases are
// expanded and count toward the depth.
package transcoder

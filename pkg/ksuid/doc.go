// Package ksuid provides a 20-byte K-Sortable Unique IDentifier.
//
// # Format
//
// The identifier is 20 bytes big-endian: [4 bytes timestamp][16 bytes payload].
// The timestamp is an unsigned 32-bit count of seconds since a custom epoch,
// 1.4e9 seconds after the UNIX epoch, which pushes the usable range of the
// field into the future. The payload is opaque and normally random, much like
// a UUIDv4. Because the timestamp occupies the most significant bytes,
// byte-wise comparison sorts identifiers chronologically, then by payload.
//
// # Encodings
//
// Three representations round-trip exactly:
//   - raw: 20 bytes
//   - Base62: exactly 27 characters over [0-9A-Za-z]; this is the canonical
//     string form and preserves byte order under string comparison
//   - hex: exactly 40 characters, uppercase on output
//
// Not every 27-character Base62 string names a 20-byte value; FromBase62
// rejects strings beyond the encoding of the all-0xFF identifier.
//
// Usage
//
//	id, _ := ksuid.Generate()
//	s := id.String()              // 27-char Base62
//	parsed, _ := ksuid.FromBase62(s)
//	created := parsed.Time()
package ksuid

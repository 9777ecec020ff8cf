// Package headers implements the case-insensitive, insertion-ordered header
// store that backs every outbound response.
//
// Lookups normalize the name to lower case. The display casing of an entry is
// fixed by its first write; later writes to any case variant only replace the
// value. Serialization walks entries in insertion order.
package headers

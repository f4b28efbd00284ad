// Package egrw implements the Expander Graph Random Walk scheme over
// the Cayley graph of SL(2, Z_p): a keypair is a start/end vertex pair
// connected by a secret walk word, per spec.md §4.3.
package egrw

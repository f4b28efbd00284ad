// Package entanglement implements the layer that ties the three
// independent problem schemes into one composite identity: 3-of-3 XOR
// secret sharing, domain-separated hash binding, a hash commitment
// scheme, and a Fiat-Shamir NIZK proof that three ciphertext components
// encapsulate the same message, per spec.md §4.4.
package entanglement

// Package common holds the error taxonomy and domain-separation constants
// shared by every kMOSAIC package.
//
// This is an internal package: it supports the public kmosaic, slss, tdd,
// egrw, and entanglement packages but is not meant for direct import by
// applications.
package common

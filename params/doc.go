// Package params defines the kMOSAIC security levels and their concrete
// parameter sets (spec.md §3's table of MOS_128 / MOS_256 values), plus a
// protocol version tag checked by Params.Validate.
package params

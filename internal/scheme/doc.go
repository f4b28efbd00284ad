// Package scheme declares the uniform trait shared by the three sibling
// problem schemes (SLSS, TDD, EGRW), per spec.md §9's note that "dynamic
// module loading in the source is a performance artifact" and the three
// schemes are better expressed as statically linked siblings behind a
// common interface.
package scheme

// Package typechecker implements the Quill expression typing pass. It walks
// a parsed, scope-resolved tree one node at a time, computing a semantic type
// for every expression and enforcing the language typing rules: the subtyping
// lattice, reference-capability checks, union construction, may-error
// tracking, and declaration ordering. The pass is invoked once per node in
// post-order by the driver, children first; the first failing node aborts
// checking of the enclosing unit.
package typechecker

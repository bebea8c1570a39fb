// Package decorate contains function wrappers: typed and dynamic currying,
// a bounded memoizing cache, and keyword arguments with evaluated and
// isolated defaults.
//
// Typed currying (Curry2..Curry4, Uncurry2..Uncurry4) is checked at compile
// time. Explicit builds a Curried value over a variadic func(...any) any of
// a given arity and checks argument counts at run time instead.
package decorate

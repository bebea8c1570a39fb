// Package drills is a collection of small, self-contained Go exercises:
// data structures, concurrency helpers, linear algebra, lazy pipelines,
// function decorators and two casino simulations.
//
// Each exercise lives in its own subpackage:
//
//	treap/      - randomized balanced binary search tree (ordered map)
//	hashtable/  - separate-chaining hash table with automatic resize
//	workerpool/ - fixed-size goroutine pool with prometheus metrics
//	cartesian/  - sum over the Cartesian product of integer sets
//	vector/     - dot product, norm and angle of float vectors
//	matrix/     - dense matrices: add, multiply, transpose, determinant
//	pipeline/   - lazy iter.Seq sources, stages and sinks
//	generators/ - unbounded prime generator and RGBA color enumeration
//	decorate/   - currying, memoizing cache and isolated-argument wrappers
//	blackjack/  - multi-player blackjack against a dealer
//	roulette/   - European roulette with pluggable betting strategies
//
// The drills command (cmd/drills) runs a demo of most packages.
//
// Quick start:
//
//	go get github.com/katalvlaran/drills
//	go run github.com/katalvlaran/drills/cmd/drills primes 10
package drills

// Package hashtable implements a generic hash map with separate chaining.
//
// Keys are hashed (xxhash by default) into a bucket array; each
// bucket is a slice of entries. When the load factor reaches 3/4 the bucket
// array doubles and every entry is rehashed, so Set, Get and Delete stay
// O(1) amortized.
//
// A Table is not safe for concurrent use.
package hashtable

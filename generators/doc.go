// Package generators provides infinite and bounded number sequences as
// iter.Seq values: prime numbers and an enumeration of RGBA colors.
package generators

// Package pipeline builds lazy data pipelines on top of iter.Seq.
//
// Sources (Range, FromSlice, Random, RandomStrings) produce sequences;
// stages (Map, Filter, Take, Skip) transform them; sinks (Collect, Count,
// Reduce, Fold, ToSet, ToMap) consume them. Run chains stages in order.
//
// Nothing is evaluated until a sink or a range loop pulls values, and every
// stage pulls from upstream only as many elements as downstream asks for.
package pipeline

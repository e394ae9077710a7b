// Package parse reads trees from SNBT, YAML and JSON text.
//
// SNBT is the stringified tree form:
//
//	{Count:3b,display:{Name:"Sword",Lore:["a","b"]},Damage:1.5f}
//
// Numbers carry an optional width suffix: b (byte), s (short), L
// (long), f (float) or d (double). Unsuffixed integers are ints and
// unsuffixed decimals are doubles. true and false read as the bytes 1
// and 0. Typed arrays [B;1b,2b], [I;1,2] and [L;1L] read as lists of
// that width. Any other bare word is a string.
//
// YAML and JSON keep the key order of the input. Booleans become bytes,
// integers ints (or longs when they do not fit 32 bits) and floats
// doubles. Null mapping values are dropped; null list elements are
// errors.
package parse

// Package ir provides the value tree shared by the decoder, the encoder and
// the object graph.
//
// A [Node] is a tagged union over four types:
//
//   - StringType: bare or quoted scalars
//   - NumberType: bare scalars which are base-10 integers
//   - ArrayType: ordered lists, `( a, b, )`
//   - ObjectType: dictionaries, `{ k = v; }`, keeping insertion order
//
// There is no boolean type; project files spell booleans as YES/NO or digits,
// see [Truth].
//
// Nodes keep parent links so that a value can report where it lives, see
// [Node.Path].
package ir

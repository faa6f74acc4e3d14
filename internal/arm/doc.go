// Package arm builds the type switch clause for one case of a sum type.
//
// A case falls into exactly one Shape:
//   - ZeroSlot: the case carries no payload
//   - StaticMessage: payload present, message has no placeholders
//   - Substituted: bound slots are spliced into the message
//
// Shapes are processed by a Visitor, one method per shape.
package arm

// Package core provides the foundational types shared by the cave-sdk
// action model: the error taxonomy raised by schema validation, XML
// serialization, and deserialization.
//
// Four failure classes exist:
//
//   - InvalidArgumentError: a value rejected by a schema validator, or an
//     attribute name absent from a feature's schema. Raised synchronously at
//     the point of assignment.
//   - BadXMLError: malformed Cave XML, such as a required attribute or child
//     node missing or an unrecognized node tag. Raised during deserialize.
//   - ConsistencyError: serialize was invoked while a required attribute was
//     never set. A programmer-error class, distinct from malformed input.
//   - ErrAttributeNotSet: reading an attribute that is unset and has no
//     schema default.
package core

// Package actions provides the action variants of the Cave data model. An
// action is a discrete authoring-time state change: showing or moving an
// object, starting a timeline or sound, enabling a trigger, moving the Cave
// itself, or resetting everything.
//
// The package implements the seven variants of the Cave XML schema:
//
//   - ObjectAction (ObjectChange): change one object's visibility, placement,
//     color, scale, sound, or link state over a transition
//   - GroupAction (GroupRef): the same change applied to a group, optionally
//     to one randomly chosen member
//   - TimelineAction (TimerChange): start, stop, or continue a timeline
//   - SoundAction (SoundRef): start or stop a sound
//   - EventTriggerAction (Event): enable or disable an event trigger
//   - MoveCaveAction (MoveCave): move the entire Cave in virtual space
//   - CaveResetAction (Restart): reset the Cave to its initial state
//
// Every variant is a schema-validated record (see package features): illegal
// attribute names and values are rejected at assignment time, before any XML
// exists. Serialization appends a node into a caller-supplied parent element;
// FromXML dispatches an XML node to the matching variant by tag.
//
// # Basic Usage
//
//	act, err := actions.NewObjectAction(
//		features.Pair{Key: "object_name", Value: "Table"},
//		features.Pair{Key: "duration", Value: 2},
//		features.Pair{Key: "visible", Value: true},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	node, err := act.ToXML(parent)
//
// All operations are synchronous; records are plain in-memory values owned
// by their caller and are not safe for concurrent mutation.
package actions

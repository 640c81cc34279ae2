package actions

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/cavewriter/go-sdk/pkg/core"
	"github.com/cavewriter/go-sdk/pkg/core/features"
)

// ActionType identifies an action variant. The value is the XML tag the
// variant serializes under.
type ActionType string

// Action type constants - matching the Cave XML schema
const (
	ActionTypeObjectChange ActionType = "ObjectChange"
	ActionTypeGroupRef     ActionType = "GroupRef"
	ActionTypeTimerChange  ActionType = "TimerChange"
	ActionTypeSoundRef     ActionType = "SoundRef"
	ActionTypeEvent        ActionType = "Event"
	ActionTypeMoveCave     ActionType = "MoveCave"
	ActionTypeRestart      ActionType = "Restart"
)

// Action defines the common interface for all Cave actions.
type Action interface {
	// Type returns the action type
	Type() ActionType

	// ToXML appends the action to parent as a node of its own tag and
	// returns the created node
	ToXML(parent *etree.Element) (*etree.Element, error)

	// Apply hands the fully constructed action to a downstream target, e.g.
	// a code-generation stage. Implementations at this layer return
	// core.ErrNotImplemented.
	Apply(target any) error
}

// FromXML creates the Action variant matching the tag of node. Unknown tags
// fail with a BadXMLError naming the tag.
func FromXML(node *etree.Element) (Action, error) {
	switch ActionType(node.Tag) {
	case ActionTypeObjectChange:
		return ObjectActionFromXML(node)
	case ActionTypeGroupRef:
		return GroupActionFromXML(node)
	case ActionTypeTimerChange:
		return TimelineActionFromXML(node)
	case ActionTypeSoundRef:
		return SoundActionFromXML(node)
	case ActionTypeEvent:
		return EventTriggerActionFromXML(node)
	case ActionTypeMoveCave:
		return MoveCaveActionFromXML(node)
	case ActionTypeRestart:
		return CaveResetActionFromXML(node)
	default:
		return nil, &core.BadXMLError{
			Tag:     node.Tag,
			Message: fmt.Sprintf("indicated action %s is not a valid action type", node.Tag),
		}
	}
}

// required returns the explicitly set value for key, or a ConsistencyError
// naming the feature. Used by serializers for attributes without defaults.
func required(f *features.Feature, feature, key string) (any, error) {
	if value, ok := f.Lookup(key); ok {
		return value, nil
	}
	return nil, &core.ConsistencyError{Feature: feature, Key: key}
}

// requiredAttr returns the value of a mandatory XML attribute, or a
// BadXMLError naming the missing piece.
func requiredAttr(node *etree.Element, name string) (string, error) {
	attr := node.SelectAttr(name)
	if attr == nil {
		return "", &core.BadXMLError{
			Tag:     node.Tag,
			Message: fmt.Sprintf("must have %s attribute set", name),
		}
	}
	return attr.Value, nil
}

// attrText renders an attribute value in its XML text form.
func attrText(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

package actions

import (
	"github.com/beevik/etree"

	"github.com/cavewriter/go-sdk/pkg/core"
	"github.com/cavewriter/go-sdk/pkg/core/features"
	"github.com/cavewriter/go-sdk/pkg/core/validators"
	"github.com/cavewriter/go-sdk/pkg/core/xmltext"
)

var eventTriggerActionSchema = features.Schema{
	Validators: map[string]validators.Validator{
		"trigger_name": validators.Always("Name of a trigger"),
		"enable":       validators.TypeOf(false),
	},
}

// EventTriggerAction enables or disables an event trigger.
type EventTriggerAction struct {
	*features.Feature
}

// NewEventTriggerAction creates an EventTriggerAction and applies the given
// attribute pairs through validated assignment.
func NewEventTriggerAction(pairs ...features.Pair) (*EventTriggerAction, error) {
	f, err := features.New(eventTriggerActionSchema, pairs...)
	if err != nil {
		return nil, err
	}
	return &EventTriggerAction{Feature: f}, nil
}

// Type returns the action type
func (a *EventTriggerAction) Type() ActionType { return ActionTypeEvent }

// Apply hands the action to a downstream code-generation target.
func (a *EventTriggerAction) Apply(any) error { return core.ErrNotImplemented }

// ToXML appends the action to parent as an Event node.
func (a *EventTriggerAction) ToXML(parent *etree.Element) (*etree.Element, error) {
	name, err := required(a.Feature, "EventTriggerAction", "trigger_name")
	if err != nil {
		return nil, err
	}
	enable, err := required(a.Feature, "EventTriggerAction", "enable")
	if err != nil {
		return nil, err
	}
	root := parent.CreateElement("Event")
	root.CreateAttr("name", attrText(name))
	root.CreateAttr("enable", xmltext.FormatBool(enable.(bool)))
	return root, nil
}

// EventTriggerActionFromXML creates an EventTriggerAction from an Event node.
func EventTriggerActionFromXML(node *etree.Element) (*EventTriggerAction, error) {
	a, err := NewEventTriggerAction()
	if err != nil {
		return nil, err
	}
	name, err := requiredAttr(node, "name")
	if err != nil {
		return nil, err
	}
	if err := a.Set("trigger_name", name); err != nil {
		return nil, err
	}
	enableText, err := requiredAttr(node, "enable")
	if err != nil {
		return nil, err
	}
	enable, err := xmltext.ParseBool(enableText)
	if err != nil {
		return nil, &core.BadXMLError{Tag: node.Tag, Message: err.Error()}
	}
	if err := a.Set("enable", enable); err != nil {
		return nil, err
	}
	return a, nil
}

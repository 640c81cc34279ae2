package actions

import (
	"github.com/beevik/etree"

	"github.com/cavewriter/go-sdk/pkg/core"
	"github.com/cavewriter/go-sdk/pkg/core/features"
	"github.com/cavewriter/go-sdk/pkg/core/validators"
)

var objectActionSchema = features.Schema{
	Validators: withTransitionValidators(map[string]validators.Validator{
		"object_name": validators.Always("Name of an object"),
	}),
	Defaults: map[string]any{
		"duration":      1,
		"move_relative": false,
	},
}

// ObjectAction changes one Cave object: its visibility, placement, color,
// scale, associated sound, or link state, over a transition of the given
// duration.
type ObjectAction struct {
	*features.Feature
}

// NewObjectAction creates an ObjectAction and applies the given attribute
// pairs through validated assignment.
func NewObjectAction(pairs ...features.Pair) (*ObjectAction, error) {
	f, err := features.New(objectActionSchema, pairs...)
	if err != nil {
		return nil, err
	}
	return &ObjectAction{Feature: f}, nil
}

// Type returns the action type
func (a *ObjectAction) Type() ActionType { return ActionTypeObjectChange }

// Apply hands the action to a downstream code-generation target.
func (a *ObjectAction) Apply(any) error { return core.ErrNotImplemented }

// ToXML appends the action to parent as an ObjectChange node.
func (a *ObjectAction) ToXML(parent *etree.Element) (*etree.Element, error) {
	name, err := required(a.Feature, "ObjectAction", "object_name")
	if err != nil {
		return nil, err
	}
	change := parent.CreateElement("ObjectChange")
	change.CreateAttr("name", attrText(name))
	if _, err := encodeTransition(a.Feature, change); err != nil {
		return nil, err
	}
	return change, nil
}

// ObjectActionFromXML creates an ObjectAction from an ObjectChange node.
func ObjectActionFromXML(node *etree.Element) (*ObjectAction, error) {
	a, err := NewObjectAction()
	if err != nil {
		return nil, err
	}
	name, err := requiredAttr(node, "name")
	if err != nil {
		return nil, err
	}
	if err := a.Set("object_name", name); err != nil {
		return nil, err
	}
	if err := decodeTransition(a.Feature, node); err != nil {
		return nil, err
	}
	return a, nil
}

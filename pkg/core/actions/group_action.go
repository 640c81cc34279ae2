package actions

import (
	"github.com/beevik/etree"

	"github.com/cavewriter/go-sdk/pkg/core"
	"github.com/cavewriter/go-sdk/pkg/core/features"
	"github.com/cavewriter/go-sdk/pkg/core/validators"
	"github.com/cavewriter/go-sdk/pkg/core/xmltext"
)

var groupActionSchema = features.Schema{
	Validators: withTransitionValidators(map[string]validators.Validator{
		"group_name":    validators.Always("Name of a group"),
		"choose_random": validators.TypeOf(false),
	}),
	Defaults: map[string]any{
		"duration":      1,
		"choose_random": false,
	},
}

// GroupAction applies an object change to every member of a group, or to one
// randomly chosen member when choose_random is set.
type GroupAction struct {
	*features.Feature
}

// NewGroupAction creates a GroupAction and applies the given attribute pairs
// through validated assignment.
func NewGroupAction(pairs ...features.Pair) (*GroupAction, error) {
	f, err := features.New(groupActionSchema, pairs...)
	if err != nil {
		return nil, err
	}
	return &GroupAction{Feature: f}, nil
}

// Type returns the action type
func (a *GroupAction) Type() ActionType { return ActionTypeGroupRef }

// Apply hands the action to a downstream code-generation target.
func (a *GroupAction) Apply(any) error { return core.ErrNotImplemented }

// ToXML appends the action to parent as a GroupRef node. The random
// attribute is written only when choose_random was explicitly set.
func (a *GroupAction) ToXML(parent *etree.Element) (*etree.Element, error) {
	name, err := required(a.Feature, "GroupAction", "group_name")
	if err != nil {
		return nil, err
	}
	change := parent.CreateElement("GroupRef")
	change.CreateAttr("name", attrText(name))
	if !a.IsDefault("choose_random") {
		random, _ := a.Get("choose_random")
		change.CreateAttr("random", xmltext.FormatBool(random.(bool)))
	}
	if _, err := encodeTransition(a.Feature, change); err != nil {
		return nil, err
	}
	return change, nil
}

// GroupActionFromXML creates a GroupAction from a GroupRef node.
func GroupActionFromXML(node *etree.Element) (*GroupAction, error) {
	a, err := NewGroupAction()
	if err != nil {
		return nil, err
	}
	name, err := requiredAttr(node, "name")
	if err != nil {
		return nil, err
	}
	if err := a.Set("group_name", name); err != nil {
		return nil, err
	}
	if attr := node.SelectAttr("random"); attr != nil {
		random, err := xmltext.ParseBool(attr.Value)
		if err != nil {
			return nil, &core.BadXMLError{Tag: node.Tag, Message: err.Error()}
		}
		if err := a.Set("choose_random", random); err != nil {
			return nil, err
		}
	}
	if err := decodeTransition(a.Feature, node); err != nil {
		return nil, err
	}
	return a, nil
}

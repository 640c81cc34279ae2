package actions

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/cavewriter/go-sdk/pkg/core"
	"github.com/cavewriter/go-sdk/pkg/core/features"
	"github.com/cavewriter/go-sdk/pkg/core/validators"
	"github.com/cavewriter/go-sdk/pkg/core/xmltext"
	"github.com/cavewriter/go-sdk/pkg/placement"
)

var moveCaveActionSchema = features.Schema{
	Validators: map[string]validators.Validator{
		"relative":  validators.TypeOf(false),
		"duration":  validators.NumericMin(0),
		"placement": validators.TypeOf((*placement.Placement)(nil)),
	},
	Defaults: map[string]any{
		"duration": 0,
	},
}

// MoveCaveAction moves the entire Cave within virtual space, absolutely or
// relative to its current position.
type MoveCaveAction struct {
	*features.Feature
}

// NewMoveCaveAction creates a MoveCaveAction and applies the given attribute
// pairs through validated assignment.
func NewMoveCaveAction(pairs ...features.Pair) (*MoveCaveAction, error) {
	f, err := features.New(moveCaveActionSchema, pairs...)
	if err != nil {
		return nil, err
	}
	return &MoveCaveAction{Feature: f}, nil
}

// Type returns the action type
func (a *MoveCaveAction) Type() ActionType { return ActionTypeMoveCave }

// Apply hands the action to a downstream code-generation target.
func (a *MoveCaveAction) Apply(any) error { return core.ErrNotImplemented }

// ToXML appends the action to parent as a MoveCave node. The duration
// attribute is omitted while still the default 0; the relative flag and
// placement are required.
func (a *MoveCaveAction) ToXML(parent *etree.Element) (*etree.Element, error) {
	root := parent.CreateElement("MoveCave")
	if !a.IsDefault("duration") {
		duration, _ := a.Get("duration")
		root.CreateAttr("duration", xmltext.FormatNumber(duration))
	}
	relative, err := required(a.Feature, "MoveCaveAction", "relative")
	if err != nil {
		return nil, err
	}
	if relative.(bool) {
		root.CreateElement("Relative")
	} else {
		root.CreateElement("Absolute")
	}
	place, err := required(a.Feature, "MoveCaveAction", "placement")
	if err != nil {
		return nil, err
	}
	if _, err := place.(*placement.Placement).ToXML(root); err != nil {
		return nil, err
	}
	return root, nil
}

// MoveCaveActionFromXML creates a MoveCaveAction from a MoveCave node.
func MoveCaveActionFromXML(node *etree.Element) (*MoveCaveAction, error) {
	a, err := NewMoveCaveAction()
	if err != nil {
		return nil, err
	}
	if attr := node.SelectAttr("duration"); attr != nil {
		duration, err := strconv.ParseFloat(strings.TrimSpace(attr.Value), 64)
		if err != nil {
			return nil, &core.BadXMLError{Tag: node.Tag, Message: "duration attribute must be numeric"}
		}
		if err := a.Set("duration", duration); err != nil {
			return nil, err
		}
	}
	switch {
	case node.SelectElement("Relative") != nil:
		err = a.Set("relative", true)
	case node.SelectElement("Absolute") != nil:
		err = a.Set("relative", false)
	default:
		return nil, &core.BadXMLError{
			Tag:     node.Tag,
			Message: "must contain either Absolute or Relative child",
		}
	}
	if err != nil {
		return nil, err
	}
	placeNode := node.SelectElement("Placement")
	if placeNode == nil {
		return nil, &core.BadXMLError{Tag: node.Tag, Message: "must contain Placement child node"}
	}
	place, err := placement.FromXML(placeNode)
	if err != nil {
		return nil, err
	}
	if err := a.Set("placement", place); err != nil {
		return nil, err
	}
	return a, nil
}

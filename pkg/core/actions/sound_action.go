package actions

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/cavewriter/go-sdk/pkg/core"
	"github.com/cavewriter/go-sdk/pkg/core/features"
	"github.com/cavewriter/go-sdk/pkg/core/validators"
)

var soundActionSchema = features.Schema{
	Validators: map[string]validators.Validator{
		"sound_name": validators.Always("Name of a sound"),
		"change":     validators.Options("Start", "Stop"),
	},
	Defaults: map[string]any{
		"change": "Start",
	},
}

// SoundAction starts or stops a sound.
type SoundAction struct {
	*features.Feature
}

// NewSoundAction creates a SoundAction and applies the given attribute pairs
// through validated assignment.
func NewSoundAction(pairs ...features.Pair) (*SoundAction, error) {
	f, err := features.New(soundActionSchema, pairs...)
	if err != nil {
		return nil, err
	}
	return &SoundAction{Feature: f}, nil
}

// Type returns the action type
func (a *SoundAction) Type() ActionType { return ActionTypeSoundRef }

// Apply hands the action to a downstream code-generation target.
func (a *SoundAction) Apply(any) error { return core.ErrNotImplemented }

// ToXML appends the action to parent as a SoundRef node. The action
// attribute is omitted while the change is still the default Start.
func (a *SoundAction) ToXML(parent *etree.Element) (*etree.Element, error) {
	name, err := required(a.Feature, "SoundAction", "sound_name")
	if err != nil {
		return nil, err
	}
	root := parent.CreateElement("SoundRef")
	root.CreateAttr("name", attrText(name))
	if !a.IsDefault("change") {
		change, _ := a.Get("change")
		root.CreateAttr("action", change.(string))
	}
	return root, nil
}

// SoundActionFromXML creates a SoundAction from a SoundRef node.
func SoundActionFromXML(node *etree.Element) (*SoundAction, error) {
	a, err := NewSoundAction()
	if err != nil {
		return nil, err
	}
	name, err := requiredAttr(node, "name")
	if err != nil {
		return nil, err
	}
	if err := a.Set("sound_name", name); err != nil {
		return nil, err
	}
	if attr := node.SelectAttr("action"); attr != nil {
		if err := a.Set("change", strings.TrimSpace(attr.Value)); err != nil {
			return nil, err
		}
	}
	return a, nil
}

package actions

import (
	"github.com/beevik/etree"

	"github.com/cavewriter/go-sdk/pkg/core"
	"github.com/cavewriter/go-sdk/pkg/core/features"
	"github.com/cavewriter/go-sdk/pkg/core/validators"
)

var timelineActionSchema = features.Schema{
	Validators: map[string]validators.Validator{
		"timeline_name": validators.Always("Name of a timeline"),
		"change": validators.Options(
			"Start", "Stop", "Continue", "Start if not started"),
	},
}

// changeXMLTags maps timeline change literals to their TimerChange child
// tags. Ordered so deserialization is deterministic.
var changeXMLTags = []struct {
	option string
	tag    string
}{
	{option: "Start", tag: "start"},
	{option: "Stop", tag: "stop"},
	{option: "Continue", tag: "continue"},
	{option: "Start if not started", tag: "start_if_not_started"},
}

// TimelineAction starts, stops, or continues a timeline.
type TimelineAction struct {
	*features.Feature
}

// NewTimelineAction creates a TimelineAction and applies the given attribute
// pairs through validated assignment.
func NewTimelineAction(pairs ...features.Pair) (*TimelineAction, error) {
	f, err := features.New(timelineActionSchema, pairs...)
	if err != nil {
		return nil, err
	}
	return &TimelineAction{Feature: f}, nil
}

// Type returns the action type
func (a *TimelineAction) Type() ActionType { return ActionTypeTimerChange }

// Apply hands the action to a downstream code-generation target.
func (a *TimelineAction) Apply(any) error { return core.ErrNotImplemented }

// ToXML appends the action to parent as a TimerChange node with a single
// child naming the change.
func (a *TimelineAction) ToXML(parent *etree.Element) (*etree.Element, error) {
	name, err := required(a.Feature, "TimelineAction", "timeline_name")
	if err != nil {
		return nil, err
	}
	change, err := required(a.Feature, "TimelineAction", "change")
	if err != nil {
		return nil, err
	}
	root := parent.CreateElement("TimerChange")
	root.CreateAttr("name", attrText(name))
	for _, ct := range changeXMLTags {
		if ct.option == change {
			root.CreateElement(ct.tag)
			break
		}
	}
	return root, nil
}

// TimelineActionFromXML creates a TimelineAction from a TimerChange node.
func TimelineActionFromXML(node *etree.Element) (*TimelineAction, error) {
	a, err := NewTimelineAction()
	if err != nil {
		return nil, err
	}
	name, err := requiredAttr(node, "name")
	if err != nil {
		return nil, err
	}
	if err := a.Set("timeline_name", name); err != nil {
		return nil, err
	}
	for _, ct := range changeXMLTags {
		if node.SelectElement(ct.tag) != nil {
			if err := a.Set("change", ct.option); err != nil {
				return nil, err
			}
			break
		}
	}
	if !a.Has("change") {
		return nil, &core.BadXMLError{
			Tag:     node.Tag,
			Message: "must have child specifying timeline change",
		}
	}
	return a, nil
}

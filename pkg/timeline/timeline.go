// Package timeline provides the Timeline record: a named, time-ordered
// choreography of actions. Each entry pairs a start time in seconds with an
// action; entries stay sorted by start time regardless of insertion order.
package timeline

import (
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/cavewriter/go-sdk/pkg/core"
	"github.com/cavewriter/go-sdk/pkg/core/actions"
	"github.com/cavewriter/go-sdk/pkg/core/features"
	"github.com/cavewriter/go-sdk/pkg/core/validators"
	"github.com/cavewriter/go-sdk/pkg/core/xmltext"
)

// TimedAction pairs an action with its start time in seconds.
type TimedAction struct {
	Seconds float64
	Action  actions.Action
}

var timelineSchema = features.Schema{
	Validators: map[string]validators.Validator{
		"name":              validators.Always("Name of a timeline"),
		"start_immediately": validators.TypeOf(false),
	},
	Defaults: map[string]any{
		"start_immediately": true,
	},
}

// Timeline is a named sequence of timed actions.
type Timeline struct {
	*features.Feature
	entries []TimedAction
}

// New creates a Timeline and applies the given attribute pairs.
func New(pairs ...features.Pair) (*Timeline, error) {
	f, err := features.New(timelineSchema, pairs...)
	if err != nil {
		return nil, err
	}
	return &Timeline{Feature: f}, nil
}

// Add inserts an action at the given start time, keeping entries sorted.
// Insertion order is preserved among entries with equal times.
func (tl *Timeline) Add(seconds float64, act actions.Action) {
	tl.entries = append(tl.entries, TimedAction{Seconds: seconds, Action: act})
	sort.SliceStable(tl.entries, func(i, j int) bool {
		return tl.entries[i].Seconds < tl.entries[j].Seconds
	})
}

// Entries returns the timed actions in start-time order.
func (tl *Timeline) Entries() []TimedAction {
	return tl.entries
}

// ToXML appends the timeline to parent as a Timeline node, one TimedActions
// child per entry.
func (tl *Timeline) ToXML(parent *etree.Element) (*etree.Element, error) {
	name, ok := tl.Lookup("name")
	if !ok {
		return nil, &core.ConsistencyError{Feature: "Timeline", Key: "name"}
	}
	root := parent.CreateElement("Timeline")
	root.CreateAttr("name", name.(string))
	if tl.Has("start_immediately") {
		start, _ := tl.Get("start_immediately")
		root.CreateAttr("start-immediately", xmltext.FormatBool(start.(bool)))
	}
	for _, entry := range tl.entries {
		timed := root.CreateElement("TimedActions")
		timed.CreateAttr("seconds-time", xmltext.FormatNumber(entry.Seconds))
		if _, err := entry.Action.ToXML(timed); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// FromXML creates a Timeline from a Timeline node, dispatching every child
// of every TimedActions node through the action factory.
func FromXML(node *etree.Element) (*Timeline, error) {
	tl, err := New()
	if err != nil {
		return nil, err
	}
	attr := node.SelectAttr("name")
	if attr == nil {
		return nil, &core.BadXMLError{Tag: node.Tag, Message: "must specify name attribute"}
	}
	if err := tl.Set("name", attr.Value); err != nil {
		return nil, err
	}
	if attr := node.SelectAttr("start-immediately"); attr != nil {
		start, err := xmltext.ParseBool(attr.Value)
		if err != nil {
			return nil, &core.BadXMLError{Tag: node.Tag, Message: err.Error()}
		}
		if err := tl.Set("start_immediately", start); err != nil {
			return nil, err
		}
	}
	for _, timed := range node.SelectElements("TimedActions") {
		timeAttr := timed.SelectAttr("seconds-time")
		if timeAttr == nil {
			return nil, &core.BadXMLError{
				Tag:     timed.Tag,
				Message: "must specify numeric seconds-time attribute",
			}
		}
		seconds, err := strconv.ParseFloat(strings.TrimSpace(timeAttr.Value), 64)
		if err != nil {
			return nil, &core.BadXMLError{
				Tag:     timed.Tag,
				Message: "must specify numeric seconds-time attribute",
			}
		}
		for _, child := range timed.ChildElements() {
			act, err := actions.FromXML(child)
			if err != nil {
				return nil, err
			}
			tl.Add(seconds, act)
		}
	}
	return tl, nil
}

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

// transitionValidators returns the validators for the transition attributes
// shared by object and group changes.
func transitionValidators() map[string]validators.Validator {
	return map[string]validators.Validator{
		"duration":      validators.NumericMin(0),
		"visible":       validators.TypeOf(false),
		"placement":     validators.TypeOf((*placement.Placement)(nil)),
		"move_relative": validators.TypeOf(false),
		"color":         validators.NumericTuple(3),
		"scale":         validators.NumericMin(0),
		"sound_change":  validators.Options("Play Sound", "Stop Sound"),
		"link_change": validators.Options(
			"Enable", "Disable", "Activate", "Activate if enabled"),
	}
}

// withTransitionValidators merges variant-specific validators over the shared
// transition set.
func withTransitionValidators(extra map[string]validators.Validator) map[string]validators.Validator {
	m := transitionValidators()
	for key, v := range extra {
		m[key] = v
	}
	return m
}

// linkXMLTags maps link_change literals to their LinkChange child tags.
// Ordered so deserialization is deterministic.
var linkXMLTags = []struct {
	option string
	tag    string
}{
	{option: "Enable", tag: "link_on"},
	{option: "Disable", tag: "link_off"},
	{option: "Activate", tag: "activate"},
	{option: "Activate if enabled", tag: "activate_if_on"},
}

// encodeTransition appends a Transition node carrying the shared optional
// attributes of f. Attributes never set (and defaulted) are omitted; the
// duration attribute is always written since its default is well known.
func encodeTransition(f *features.Feature, parent *etree.Element) (*etree.Element, error) {
	trans := parent.CreateElement("Transition")
	duration, err := f.Get("duration")
	if err != nil {
		return nil, err
	}
	trans.CreateAttr("duration", xmltext.FormatNumber(duration))

	if v, ok := f.Lookup("visible"); ok {
		trans.CreateElement("Visible").SetText(xmltext.FormatBool(v.(bool)))
	}
	if v, ok := f.Lookup("placement"); ok {
		moveRel := false
		if mr, err := f.Get("move_relative"); err == nil {
			moveRel = mr.(bool)
		}
		wrapper := "Movement"
		if moveRel {
			wrapper = "MoveRel"
		}
		node := trans.CreateElement(wrapper)
		if _, err := v.(*placement.Placement).ToXML(node); err != nil {
			return nil, err
		}
	}
	if v, ok := f.Lookup("color"); ok {
		trans.CreateElement("Color").SetText(xmltext.JoinNumbers(v, ","))
	}
	if v, ok := f.Lookup("scale"); ok {
		trans.CreateElement("Scale").SetText(xmltext.FormatNumber(v))
	}
	if v, ok := f.Lookup("sound_change"); ok {
		trans.CreateElement("Sound").CreateAttr("action", v.(string))
	}
	if v, ok := f.Lookup("link_change"); ok {
		node := trans.CreateElement("LinkChange")
		for _, lt := range linkXMLTags {
			if lt.option == v {
				node.CreateElement(lt.tag)
				break
			}
		}
	}
	return trans, nil
}

// decodeTransition reads the Transition child of an ObjectChange or GroupRef
// node into f. Missing structure fails with BadXMLError; unparsable color and
// scale text recover to documented fallbacks instead of failing.
func decodeTransition(f *features.Feature, node *etree.Element) error {
	trans := node.SelectElement("Transition")
	if trans == nil {
		return &core.BadXMLError{Tag: node.Tag, Message: "requires Transition child node"}
	}
	if attr := trans.SelectAttr("duration"); attr != nil {
		duration, err := strconv.ParseFloat(strings.TrimSpace(attr.Value), 64)
		if err != nil {
			return &core.BadXMLError{Tag: trans.Tag, Message: "duration attribute must be numeric"}
		}
		if err := f.Set("duration", duration); err != nil {
			return err
		}
	}
	if vis := trans.SelectElement("Visible"); vis != nil {
		visible, err := xmltext.ParseBool(vis.Text())
		if err != nil {
			return &core.BadXMLError{Tag: vis.Tag, Message: err.Error()}
		}
		if err := f.Set("visible", visible); err != nil {
			return err
		}
	}
	moveNode := trans.SelectElement("MoveRel")
	if moveNode != nil {
		if err := f.Set("move_relative", true); err != nil {
			return err
		}
	} else {
		moveNode = trans.SelectElement("Movement")
	}
	if moveNode != nil {
		if !f.Has("move_relative") {
			if err := f.Set("move_relative", false); err != nil {
				return err
			}
		}
		placeNode := moveNode.SelectElement("Placement")
		if placeNode == nil {
			return &core.BadXMLError{
				Tag:     moveNode.Tag,
				Message: "Movement or MoveRel node requires Placement child node",
			}
		}
		place, err := placement.FromXML(placeNode)
		if err != nil {
			return err
		}
		if err := f.Set("placement", place); err != nil {
			return err
		}
	}
	if colorNode := trans.SelectElement("Color"); colorNode != nil {
		// Lenient recovery: color text that is not a three-integer tuple
		// resolves to white rather than failing the whole deserialize.
		color, err := xmltext.ParseIntTuple(colorNode.Text())
		if err == nil {
			err = f.Set("color", color)
		}
		if err != nil {
			if setErr := f.Set("color", []int{255, 255, 255}); setErr != nil {
				return setErr
			}
		}
	}
	if scaleNode := trans.SelectElement("Scale"); scaleNode != nil {
		// Lenient recovery: empty or unparsable scale text resolves to 1.
		scale, err := strconv.ParseFloat(strings.TrimSpace(scaleNode.Text()), 64)
		if err != nil {
			scale = 1
		}
		if err := f.Set("scale", scale); err != nil {
			return err
		}
	}
	if soundNode := trans.SelectElement("Sound"); soundNode != nil {
		action, err := requiredAttr(soundNode, "action")
		if err != nil {
			return err
		}
		if err := f.Set("sound_change", strings.TrimSpace(action)); err != nil {
			return err
		}
	}
	if linkNode := trans.SelectElement("LinkChange"); linkNode != nil {
		for _, lt := range linkXMLTags {
			if linkNode.SelectElement(lt.tag) != nil {
				if err := f.Set("link_change", lt.option); err != nil {
					return err
				}
				break
			}
		}
	}
	return nil
}

// Package placement provides the records describing position and orientation
// of elements within the Cave: a Placement (position relative to a wall or
// the center, plus an optional Rotation) and the Rotation record itself.
//
// Placements appear nested inside movement actions and object definitions;
// the action layer treats them as opaque values with their own XML contract.
package placement

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/cavewriter/go-sdk/pkg/core"
	"github.com/cavewriter/go-sdk/pkg/core/features"
	"github.com/cavewriter/go-sdk/pkg/core/validators"
	"github.com/cavewriter/go-sdk/pkg/core/xmltext"
)

// rotationModes are the tags a rotation may serialize under. "None" never
// reaches the XML; it marks an unrotated placement.
var rotationModes = []string{"Axis", "LookAt", "Normal"}

var rotationSchema = features.Schema{
	Validators: map[string]validators.Validator{
		"rotation_mode":   validators.Options("None", "Axis", "LookAt", "Normal"),
		"rotation_vector": validators.NumericTuple(3),
		"rotation_angle":  validators.Numeric(),
	},
	Defaults: map[string]any{
		"rotation_mode":  "None",
		"rotation_angle": 0.0,
	},
}

// Rotation stores the orientation of a placed element.
type Rotation struct {
	*features.Feature
}

// NewRotation creates an empty Rotation.
func NewRotation(pairs ...features.Pair) (*Rotation, error) {
	f, err := features.New(rotationSchema, pairs...)
	if err != nil {
		return nil, err
	}
	return &Rotation{Feature: f}, nil
}

// ToXML appends this rotation to parent as a node tagged with its mode,
// carrying rotation and angle attributes. A rotation whose mode is default
// emits nothing; setting a vector or angle without a mode is an error.
func (r *Rotation) ToXML(parent *etree.Element) (*etree.Element, error) {
	if r.IsDefault("rotation_mode") {
		if r.Has("rotation_vector") || r.Has("rotation_angle") {
			return nil, &core.ConsistencyError{Feature: "Rotation", Key: "rotation_mode"}
		}
		return nil, nil
	}
	mode, _ := r.Get("rotation_mode")
	if mode == "None" {
		return nil, nil
	}
	vector, ok := r.Lookup("rotation_vector")
	if !ok {
		return nil, &core.ConsistencyError{Feature: "Rotation", Key: "rotation_vector"}
	}
	angle, _ := r.Get("rotation_angle")

	node := parent.CreateElement(mode.(string))
	node.CreateAttr("rotation", xmltext.FormatTuple(vector))
	node.CreateAttr("angle", xmltext.FormatNumber(angle))
	return node, nil
}

// RotationFromXML creates a Rotation from a mode-tagged node.
func RotationFromXML(node *etree.Element) (*Rotation, error) {
	r, err := NewRotation(features.Pair{Key: "rotation_mode", Value: node.Tag})
	if err != nil {
		return nil, err
	}
	if attr := node.SelectAttr("rotation"); attr != nil {
		vector, err := xmltext.ParseTuple(attr.Value)
		if err != nil {
			return nil, &core.BadXMLError{Tag: node.Tag, Message: err.Error()}
		}
		if err := r.Set("rotation_vector", vector); err != nil {
			return nil, err
		}
	}
	if attr := node.SelectAttr("angle"); attr != nil {
		angle, err := strconv.ParseFloat(strings.TrimSpace(attr.Value), 64)
		if err != nil {
			return nil, &core.BadXMLError{
				Tag:     node.Tag,
				Message: "rotation angle must be specified as a float",
			}
		}
		if err := r.Set("rotation_angle", angle); err != nil {
			return nil, err
		}
	}
	return r, nil
}

var placementSchema = features.Schema{
	Validators: map[string]validators.Validator{
		"relative_to": validators.Options(
			"Center", "FrontWall", "LeftWall", "RightWall", "FloorWall"),
		"position": validators.NumericTuple(3),
		"rotation": validators.TypeOf((*Rotation)(nil)),
	},
	Defaults: map[string]any{
		"relative_to": "Center",
		"position":    []float64{0, 0, 0},
	},
}

// Placement stores position and orientation of an element within the Cave.
type Placement struct {
	*features.Feature
}

// New creates a Placement and applies the given attribute pairs.
func New(pairs ...features.Pair) (*Placement, error) {
	f, err := features.New(placementSchema, pairs...)
	if err != nil {
		return nil, err
	}
	return &Placement{Feature: f}, nil
}

// ToXML appends this placement to parent as a Placement node. Attributes
// still at their defaults are omitted.
func (p *Placement) ToXML(parent *etree.Element) (*etree.Element, error) {
	node := parent.CreateElement("Placement")
	if !p.IsDefault("relative_to") {
		rel, _ := p.Get("relative_to")
		node.CreateElement("RelativeTo").SetText(rel.(string))
	}
	if !p.IsDefault("position") {
		pos, _ := p.Get("position")
		node.CreateElement("Position").SetText(xmltext.FormatTuple(pos))
	}
	if rot, ok := p.Lookup("rotation"); ok {
		if _, err := rot.(*Rotation).ToXML(node); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// FromXML creates a Placement from a Placement node.
func FromXML(node *etree.Element) (*Placement, error) {
	p, err := New()
	if err != nil {
		return nil, err
	}
	if rel := node.SelectElement("RelativeTo"); rel != nil {
		if err := p.Set("relative_to", strings.TrimSpace(rel.Text())); err != nil {
			return nil, err
		}
	}
	if pos := node.SelectElement("Position"); pos != nil {
		position, err := xmltext.ParseTuple(pos.Text())
		if err != nil {
			return nil, &core.BadXMLError{Tag: node.Tag, Message: err.Error()}
		}
		if err := p.Set("position", position); err != nil {
			return nil, err
		}
	}
	for _, mode := range rotationModes {
		rotNode := node.SelectElement(mode)
		if rotNode == nil {
			continue
		}
		rot, err := RotationFromXML(rotNode)
		if err != nil {
			return nil, err
		}
		if err := p.Set("rotation", rot); err != nil {
			return nil, err
		}
		break
	}
	return p, nil
}

package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cavewriter/go-sdk/pkg/core"
	"github.com/cavewriter/go-sdk/pkg/core/features"
	"github.com/cavewriter/go-sdk/pkg/placement"
)

func TestObjectActionEndToEnd(t *testing.T) {
	act, err := NewObjectAction(
		features.Pair{Key: "object_name", Value: "Table"},
		features.Pair{Key: "duration", Value: 2},
		features.Pair{Key: "visible", Value: true},
		features.Pair{Key: "color", Value: []int{10, 20, 30}},
	)
	require.NoError(t, err)

	doc, _ := serializeContainer(t, act)
	s, err := doc.WriteToString()
	require.NoError(t, err)
	assert.Equal(t,
		`<Actions><ObjectChange name="Table"><Transition duration="2">`+
			`<Visible>true</Visible><Color>10,20,30</Color>`+
			`</Transition></ObjectChange></Actions>`,
		s)

	_, node := serializeContainer(t, act)
	got, err := ObjectActionFromXML(node)
	require.NoError(t, err)

	name, err := got.Get("object_name")
	require.NoError(t, err)
	assert.Equal(t, "Table", name)
	duration, err := got.Get("duration")
	require.NoError(t, err)
	assert.EqualValues(t, 2, duration)
	visible, err := got.Get("visible")
	require.NoError(t, err)
	assert.Equal(t, true, visible)
	color, err := got.Get("color")
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, color)
}

func TestObjectActionRoundTripWithPlacement(t *testing.T) {
	place, err := placement.New(
		features.Pair{Key: "position", Value: []float64{0, 0.5, 0}},
	)
	require.NoError(t, err)

	act, err := NewObjectAction(
		features.Pair{Key: "object_name", Value: "hello"},
		features.Pair{Key: "duration", Value: 1.0},
		features.Pair{Key: "move_relative", Value: true},
		features.Pair{Key: "placement", Value: place},
		features.Pair{Key: "scale", Value: 2.5},
		features.Pair{Key: "sound_change", Value: "Play Sound"},
	)
	require.NoError(t, err)

	_, node := serializeContainer(t, act)
	require.NotNil(t, node.SelectElement("Transition").SelectElement("MoveRel"))

	got, err := ObjectActionFromXML(node)
	require.NoError(t, err)
	assert.True(t, act.Feature.Equal(got.Feature), "object action did not survive the round trip")
}

func TestObjectActionMovementWrapper(t *testing.T) {
	place, err := placement.New()
	require.NoError(t, err)

	act, err := NewObjectAction(
		features.Pair{Key: "object_name", Value: "hello"},
		features.Pair{Key: "move_relative", Value: false},
		features.Pair{Key: "placement", Value: place},
	)
	require.NoError(t, err)

	_, node := serializeContainer(t, act)
	trans := node.SelectElement("Transition")
	require.NotNil(t, trans.SelectElement("Movement"))
	assert.Nil(t, trans.SelectElement("MoveRel"))

	got, err := ObjectActionFromXML(node)
	require.NoError(t, err)
	assert.True(t, act.Feature.Equal(got.Feature))
}

func TestObjectActionLinkChangeBijection(t *testing.T) {
	for _, option := range []string{"Enable", "Disable", "Activate", "Activate if enabled"} {
		t.Run(option, func(t *testing.T) {
			act, err := NewObjectAction(
				features.Pair{Key: "object_name", Value: "door"},
				features.Pair{Key: "link_change", Value: option},
			)
			require.NoError(t, err)

			_, node := serializeContainer(t, act)
			linkNode := node.SelectElement("Transition").SelectElement("LinkChange")
			require.NotNil(t, linkNode)
			assert.Len(t, linkNode.ChildElements(), 1)

			got, err := ObjectActionFromXML(node)
			require.NoError(t, err)
			change, err := got.Get("link_change")
			require.NoError(t, err)
			assert.Equal(t, option, change)
		})
	}
}

func TestObjectActionLenientColorRecovery(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want []int
	}{
		{name: "non-numeric text", xml: `<Color>not,a,color</Color>`, want: []int{255, 255, 255}},
		{name: "too few components", xml: `<Color>10,20</Color>`, want: []int{255, 255, 255}},
		{name: "too many components", xml: `<Color>10,20,30,40</Color>`, want: []int{255, 255, 255}},
		{name: "parsable color", xml: `<Color>10,20,30</Color>`, want: []int{10, 20, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := parseXML(t, `<ObjectChange name="x"><Transition duration="1">`+
				tt.xml+`</Transition></ObjectChange>`)
			act, err := ObjectActionFromXML(node)
			require.NoError(t, err)
			color, err := act.Get("color")
			require.NoError(t, err)
			assert.Equal(t, tt.want, color)
		})
	}
}

func TestObjectActionLenientScaleRecovery(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want float64
	}{
		{name: "empty scale", xml: `<Scale/>`, want: 1},
		{name: "blank scale", xml: `<Scale>  </Scale>`, want: 1},
		{name: "parsable scale", xml: `<Scale>2.5</Scale>`, want: 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := parseXML(t, `<ObjectChange name="x"><Transition duration="1">`+
				tt.xml+`</Transition></ObjectChange>`)
			act, err := ObjectActionFromXML(node)
			require.NoError(t, err)
			scale, err := act.Get("scale")
			require.NoError(t, err)
			assert.Equal(t, tt.want, scale)
		})
	}
}

func TestObjectActionStructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{name: "missing name attribute", xml: `<ObjectChange><Transition duration="1"/></ObjectChange>`},
		{name: "missing Transition child", xml: `<ObjectChange name="x"/>`},
		{name: "movement without placement", xml: `<ObjectChange name="x"><Transition><Movement/></Transition></ObjectChange>`},
		{name: "non-numeric duration", xml: `<ObjectChange name="x"><Transition duration="soon"/></ObjectChange>`},
		{name: "sound without action attribute", xml: `<ObjectChange name="x"><Transition><Sound/></Transition></ObjectChange>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ObjectActionFromXML(parseXML(t, tt.xml))
			var bad *core.BadXMLError
			assert.ErrorAs(t, err, &bad)
		})
	}
}

func TestObjectActionInvalidSoundChangeValue(t *testing.T) {
	node := parseXML(t, `<ObjectChange name="x"><Transition>`+
		`<Sound action="Loop Sound"/></Transition></ObjectChange>`)

	_, err := ObjectActionFromXML(node)
	var invalid *core.InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "sound_change", invalid.Key)
}

func TestObjectActionSerializeWithoutName(t *testing.T) {
	act, err := NewObjectAction(features.Pair{Key: "visible", Value: true})
	require.NoError(t, err)

	doc := parseXML(t, `<Actions/>`)
	_, err = act.ToXML(doc)
	var consistency *core.ConsistencyError
	require.ErrorAs(t, err, &consistency)
	assert.Equal(t, "object_name", consistency.Key)
}

func TestObjectActionSchemaContainment(t *testing.T) {
	act, err := NewObjectAction()
	require.NoError(t, err)

	err = act.Set("velocity", 3)
	var invalid *core.InvalidArgumentError
	assert.ErrorAs(t, err, &invalid)
}

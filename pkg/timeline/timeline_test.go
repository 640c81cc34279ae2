package timeline

import (
	"errors"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cavewriter/go-sdk/pkg/core"
	"github.com/cavewriter/go-sdk/pkg/core/actions"
	"github.com/cavewriter/go-sdk/pkg/core/features"
)

func parseXML(t *testing.T, raw string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(raw))
	return doc.Root()
}

func serialize(t *testing.T, tl *Timeline) string {
	t.Helper()
	doc := etree.NewDocument()
	root := doc.CreateElement("TimelineRoot")
	_, err := tl.ToXML(root)
	require.NoError(t, err)
	out, err := doc.WriteToString()
	require.NoError(t, err)
	return out
}

func TestTimelineSerialization(t *testing.T) {
	tl, err := New(features.Pair{Key: "name", Value: "intro"})
	require.NoError(t, err)

	reset := actions.NewCaveResetAction()
	show, err := actions.NewObjectAction(
		features.Pair{Key: "object_name", Value: "sign"},
		features.Pair{Key: "visible", Value: true},
	)
	require.NoError(t, err)

	tl.Add(5, reset)
	tl.Add(0.5, show)

	out := serialize(t, tl)
	assert.Equal(t,
		`<TimelineRoot><Timeline name="intro">`+
			`<TimedActions seconds-time="0.5">`+
			`<ObjectChange name="sign"><Transition duration="1"><Visible>true</Visible></Transition></ObjectChange>`+
			`</TimedActions>`+
			`<TimedActions seconds-time="5"><Restart/></TimedActions>`+
			`</Timeline></TimelineRoot>`,
		out)
}

func TestTimelineStartImmediatelyAttr(t *testing.T) {
	tl, err := New(
		features.Pair{Key: "name", Value: "loop"},
		features.Pair{Key: "start_immediately", Value: false},
	)
	require.NoError(t, err)

	out := serialize(t, tl)
	assert.Contains(t, out, `start-immediately="false"`)

	// The attribute is omitted until the flag is set.
	tl2, err := New(features.Pair{Key: "name", Value: "loop"})
	require.NoError(t, err)
	assert.NotContains(t, serialize(t, tl2), "start-immediately")
}

func TestTimelineDeserialization(t *testing.T) {
	node := parseXML(t, `<Timeline name="intro" start-immediately="false">
		<TimedActions seconds-time="2">
			<Restart/>
			<SoundRef name="chime"/>
		</TimedActions>
		<TimedActions seconds-time="0">
			<Event name="door" enable="true"/>
		</TimedActions>
	</Timeline>`)

	tl, err := FromXML(node)
	require.NoError(t, err)

	name, err := tl.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "intro", name)

	start, err := tl.Get("start_immediately")
	require.NoError(t, err)
	assert.Equal(t, false, start)

	entries := tl.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, float64(0), entries[0].Seconds)
	assert.Equal(t, actions.ActionTypeEvent, entries[0].Action.Type())
	assert.Equal(t, float64(2), entries[1].Seconds)
	assert.Equal(t, actions.ActionTypeRestart, entries[1].Action.Type())
	assert.Equal(t, float64(2), entries[2].Seconds)
	assert.Equal(t, actions.ActionTypeSoundRef, entries[2].Action.Type())
}

func TestTimelineAddKeepsOrder(t *testing.T) {
	tl, err := New(features.Pair{Key: "name", Value: "ordered"})
	require.NoError(t, err)

	reset := actions.NewCaveResetAction()

	tl.Add(3, reset)
	tl.Add(1, reset)
	tl.Add(2, reset)

	times := make([]float64, 0, 3)
	for _, entry := range tl.Entries() {
		times = append(times, entry.Seconds)
	}
	assert.Equal(t, []float64{1, 2, 3}, times)
}

func TestTimelineDeserializationErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "missing name",
			raw:  `<Timeline><TimedActions seconds-time="1"><Restart/></TimedActions></Timeline>`,
		},
		{
			name: "missing seconds-time",
			raw:  `<Timeline name="t"><TimedActions><Restart/></TimedActions></Timeline>`,
		},
		{
			name: "non-numeric seconds-time",
			raw:  `<Timeline name="t"><TimedActions seconds-time="soon"><Restart/></TimedActions></Timeline>`,
		},
		{
			name: "bad start-immediately",
			raw:  `<Timeline name="t" start-immediately="maybe"/>`,
		},
		{
			name: "unknown action tag",
			raw:  `<Timeline name="t"><TimedActions seconds-time="1"><Bogus/></TimedActions></Timeline>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromXML(parseXML(t, tt.raw))
			require.Error(t, err)
			var badXML *core.BadXMLError
			assert.True(t, errors.As(err, &badXML))
		})
	}
}

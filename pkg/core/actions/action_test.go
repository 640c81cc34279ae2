package actions

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cavewriter/go-sdk/pkg/core"
)

// parseXML parses a document fragment and returns its root element.
func parseXML(t *testing.T, s string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(s))
	require.NotNil(t, doc.Root())
	return doc.Root()
}

// serializeDoc serializes an action under a fresh root and returns the whole
// document text minus the wrapper.
func serializeContainer(t *testing.T, act Action) (*etree.Document, *etree.Element) {
	t.Helper()
	doc := etree.NewDocument()
	root := doc.CreateElement("Actions")
	node, err := act.ToXML(root)
	require.NoError(t, err)
	require.NotNil(t, node)
	return doc, node
}

func TestFromXMLDispatchCompleteness(t *testing.T) {
	tests := []struct {
		xml  string
		want ActionType
	}{
		{xml: `<ObjectChange name="x"><Transition duration="1"/></ObjectChange>`, want: ActionTypeObjectChange},
		{xml: `<GroupRef name="g"><Transition/></GroupRef>`, want: ActionTypeGroupRef},
		{xml: `<TimerChange name="t"><start/></TimerChange>`, want: ActionTypeTimerChange},
		{xml: `<SoundRef name="s"/>`, want: ActionTypeSoundRef},
		{xml: `<Event name="e" enable="true"/>`, want: ActionTypeEvent},
		{xml: `<MoveCave><Absolute/><Placement/></MoveCave>`, want: ActionTypeMoveCave},
		{xml: `<Restart/>`, want: ActionTypeRestart},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			act, err := FromXML(parseXML(t, tt.xml))
			require.NoError(t, err)
			assert.Equal(t, tt.want, act.Type())
		})
	}
}

func TestFromXMLUnknownTag(t *testing.T) {
	_, err := FromXML(parseXML(t, `<Bogus/>`))
	var bad *core.BadXMLError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "Bogus", bad.Tag)
}

func TestApplyNotImplemented(t *testing.T) {
	assert.ErrorIs(t, NewCaveResetAction().Apply(nil), core.ErrNotImplemented)
}

package encoding

import (
	"io"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/cavewriter/go-sdk/pkg/core"
	"github.com/cavewriter/go-sdk/pkg/timeline"
)

var log = logrus.WithField("component", "encoding")

// DefaultIndent is the indentation width used by Encode.
const DefaultIndent = 2

// FormatVersion is the Story schema version written on the root node.
const FormatVersion = "8"

// Story is a project document: the set of timelines stored under a single
// Story root.
type Story struct {
	Timelines []*timeline.Timeline
}

// NewStory creates an empty Story.
func NewStory() *Story {
	return &Story{}
}

// AddTimeline appends a timeline to the story.
func (s *Story) AddTimeline(tl *timeline.Timeline) {
	s.Timelines = append(s.Timelines, tl)
}

// TimelineByName returns the first timeline with the given name, or nil.
func (s *Story) TimelineByName(name string) *timeline.Timeline {
	for _, tl := range s.Timelines {
		got, ok := tl.Lookup("name")
		if ok && got == name {
			return tl
		}
	}
	return nil
}

// DecodeStory reads a Story document. Unknown children of the Story and
// TimelineRoot nodes are skipped with a warning.
func DecodeStory(r io.Reader) (*Story, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, &core.BadXMLError{Tag: "Story", Message: err.Error()}
	}
	root := doc.Root()
	if root == nil {
		return nil, &core.BadXMLError{Tag: "Story", Message: "document has no root node"}
	}
	if root.Tag != "Story" {
		return nil, &core.BadXMLError{Tag: root.Tag, Message: "document root must be a Story node"}
	}

	story := NewStory()
	for _, child := range root.ChildElements() {
		if child.Tag != "TimelineRoot" {
			log.WithField("tag", child.Tag).Warn("Skipping unknown Story child")
			continue
		}
		for _, node := range child.ChildElements() {
			if node.Tag != "Timeline" {
				log.WithField("tag", node.Tag).Warn("Skipping unknown TimelineRoot child")
				continue
			}
			tl, err := timeline.FromXML(node)
			if err != nil {
				return nil, err
			}
			story.AddTimeline(tl)
		}
	}
	return story, nil
}

// Encode writes the story as indented XML with an XML declaration.
func (s *Story) Encode(w io.Writer) error {
	return s.EncodeIndent(w, DefaultIndent)
}

// EncodeIndent writes the story indented by the given number of spaces.
// A non-positive indent produces compact output.
func (s *Story) EncodeIndent(w io.Writer, spaces int) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("Story")
	root.CreateAttr("version", FormatVersion)
	timelineRoot := root.CreateElement("TimelineRoot")
	for _, tl := range s.Timelines {
		if _, err := tl.ToXML(timelineRoot); err != nil {
			return err
		}
	}
	if spaces > 0 {
		doc.Indent(spaces)
	}
	_, err := doc.WriteTo(w)
	return err
}

package actions

import (
	"github.com/beevik/etree"

	"github.com/cavewriter/go-sdk/pkg/core"
	"github.com/cavewriter/go-sdk/pkg/core/features"
)

var caveResetActionSchema = features.Schema{}

// CaveResetAction resets the Cave to its initial state. It carries no
// attributes.
type CaveResetAction struct {
	*features.Feature
}

// NewCaveResetAction creates a CaveResetAction.
func NewCaveResetAction() *CaveResetAction {
	return &CaveResetAction{Feature: features.Empty(caveResetActionSchema)}
}

// Type returns the action type
func (a *CaveResetAction) Type() ActionType { return ActionTypeRestart }

// Apply hands the action to a downstream code-generation target.
func (a *CaveResetAction) Apply(any) error { return core.ErrNotImplemented }

// ToXML appends the action to parent as an empty Restart node.
func (a *CaveResetAction) ToXML(parent *etree.Element) (*etree.Element, error) {
	return parent.CreateElement("Restart"), nil
}

// CaveResetActionFromXML creates a CaveResetAction from a Restart node.
func CaveResetActionFromXML(*etree.Element) (*CaveResetAction, error) {
	return NewCaveResetAction(), nil
}

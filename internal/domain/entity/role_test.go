package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdministrator.IsValid())
	assert.True(t, RoleEditor.IsValid())
	assert.True(t, RolePartialEditor.IsValid())
	assert.True(t, RoleViewer.IsValid())

	assert.False(t, Role(0).IsValid())
	assert.False(t, Role(5).IsValid())
	assert.False(t, Role(-1).IsValid())
}

func TestRole_Label(t *testing.T) {
	assert.Equal(t, LabelAdministrator, RoleAdministrator.Label())

	// Every non-admin tier collapses to the viewer label at issuance.
	assert.Equal(t, LabelViewer, RoleEditor.Label())
	assert.Equal(t, LabelViewer, RolePartialEditor.Label())
	assert.Equal(t, LabelViewer, RoleViewer.Label())
}

func TestRole_Capabilities(t *testing.T) {
	admin := RoleAdministrator.Capabilities()
	assert.Contains(t, admin, CapabilityManageUsers)
	assert.Contains(t, admin, CapabilityWriteEntries)
	assert.Contains(t, admin, CapabilityReadEntries)

	viewer := RoleViewer.Capabilities()
	assert.NotContains(t, viewer, CapabilityManageUsers)
	assert.Contains(t, viewer, CapabilityWriteEntries)
	assert.Contains(t, viewer, CapabilityReadEntries)

	assert.Nil(t, Role(99).Capabilities())
}

func TestLabelHasCapability(t *testing.T) {
	assert.True(t, LabelHasCapability(LabelAdministrator, CapabilityManageUsers))
	assert.False(t, LabelHasCapability(LabelViewer, CapabilityManageUsers))
	assert.True(t, LabelHasCapability(LabelViewer, CapabilityReadEntries))

	// An unknown label is treated as the viewer tier, never as admin.
	assert.False(t, LabelHasCapability("Gerente", CapabilityManageUsers))
	assert.True(t, LabelHasCapability("Gerente", CapabilityReadEntries))
}

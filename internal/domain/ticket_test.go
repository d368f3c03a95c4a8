package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("admin")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, role)

	role, ok = ParseRole("viewer")
	assert.True(t, ok)
	assert.Equal(t, RoleViewer, role)

	_, ok = ParseRole("root")
	assert.False(t, ok)
	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestRoleCanMutate(t *testing.T) {
	assert.True(t, RoleAdmin.CanMutate())
	assert.False(t, RoleViewer.CanMutate())
	assert.False(t, RoleUnset.CanMutate())
}

func TestIsKnownStatus(t *testing.T) {
	for _, status := range KnownStatuses {
		assert.True(t, IsKnownStatus(status))
	}
	assert.False(t, IsKnownStatus("Fechado"))
}

func TestIsKnownLocation(t *testing.T) {
	assert.True(t, IsKnownLocation("UHE SOBRADINHO"))
	assert.True(t, IsKnownLocation("SE FUT"))
	assert.False(t, IsKnownLocation("SE XYZ"))
	assert.False(t, IsKnownLocation(""))
}

func TestCloneDetachesHistory(t *testing.T) {
	original := Ticket{
		ID: "t1",
		History: []HistoryEntry{
			{Date: "2024-04-01T09:00:00Z", Action: "Chamado aberto", User: "Admin"},
		},
	}

	copied := original.Clone()
	copied.History[0].Action = "tampered"
	copied.History = append(copied.History, HistoryEntry{Action: "extra"})

	assert.Equal(t, "Chamado aberto", original.History[0].Action)
	assert.Len(t, original.History, 1)
}

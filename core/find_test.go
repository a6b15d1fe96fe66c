// File: find_test.go
// Role: Contract tests for property matching (FindNode/FindNodes), label
//       filters, and FollowLabel chain walks.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/propgraph/core"
)

func TestGraph_FindNodes_AllKeysMustMatch(t *testing.T) {
	f := newLucyFixture(t)

	found := f.g.FindNodes(core.Properties{"type": "Person", "name": "Lucy"})
	require.Len(t, found, 1)
	assert.Equal(t, f.lucy, found[0].ID)

	// One key right, one wrong: conjunctive matching rejects the node.
	found = f.g.FindNodes(core.Properties{"type": "Person", "name": "Idaho"})
	assert.Empty(t, found)
}

func TestGraph_FindNodes_SubsetQuery(t *testing.T) {
	f := newLucyFixture(t)

	// The query may name fewer keys than the node carries.
	found := f.g.FindNodes(core.Properties{"type": "State"})
	require.Len(t, found, 1)
	assert.Equal(t, f.idaho, found[0].ID)
}

func TestGraph_FindNodes_EmptyWantMatchesNothing(t *testing.T) {
	f := newLucyFixture(t)

	assert.Empty(t, f.g.FindNodes(nil))
	assert.Empty(t, f.g.FindNodes(core.Properties{}))
}

func TestGraph_FindNodes_SortedByID(t *testing.T) {
	g := core.NewGraph()
	first := g.AddNode(core.Properties{"type": "Person", "name": "Ada"})
	g.AddNode(core.Properties{"type": "City", "name": "Paris"})
	second := g.AddNode(core.Properties{"type": "Person", "name": "Grace"})

	found := g.FindNodes(core.Properties{"type": "Person"})
	require.Len(t, found, 2)
	assert.Equal(t, first, found[0].ID)
	assert.Equal(t, second, found[1].ID)
}

func TestGraph_FindNodes_StructuredValues(t *testing.T) {
	g := core.NewGraph()
	id := g.AddNode(core.Properties{"tags": []string{"a", "b"}})

	found := g.FindNodes(core.Properties{"tags": []string{"a", "b"}})
	require.Len(t, found, 1)
	assert.Equal(t, id, found[0].ID)

	assert.Empty(t, g.FindNodes(core.Properties{"tags": []string{"a"}}))
}

func TestGraph_FindNode_LowestIDWins(t *testing.T) {
	g := core.NewGraph()
	first := g.AddNode(core.Properties{"type": "Person"})
	g.AddNode(core.Properties{"type": "Person"})

	n, ok := g.FindNode(core.Properties{"type": "Person"})
	require.True(t, ok)
	assert.Equal(t, first, n.ID)

	_, ok = g.FindNode(core.Properties{"type": "Robot"})
	assert.False(t, ok)
}

func TestGraph_OutgoingWithLabel(t *testing.T) {
	f := newLucyFixture(t)

	born, err := f.g.OutgoingWithLabel(f.lucy, labelBornIn)
	require.NoError(t, err)
	require.Len(t, born, 1)
	assert.Equal(t, f.bornIn, born[0].ID)
	assert.Equal(t, f.idaho, born[0].Head)

	none, err := f.g.OutgoingWithLabel(f.idaho, labelBornIn)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGraph_IncomingWithLabel(t *testing.T) {
	f := newLucyFixture(t)

	lives, err := f.g.IncomingWithLabel(f.london, labelLivesIn)
	require.NoError(t, err)
	require.Len(t, lives, 1)
	assert.Equal(t, f.livesIn, lives[0].ID)
	assert.Equal(t, f.lucy, lives[0].Tail)
}

func TestGraph_LabelFilters_BadInput(t *testing.T) {
	f := newLucyFixture(t)

	_, err := f.g.OutgoingWithLabel(f.lucy, "")
	assert.ErrorIs(t, err, core.ErrEmptyLabel)

	_, err = f.g.IncomingWithLabel(999, labelBornIn)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_FollowLabel_Chain(t *testing.T) {
	g, ids := buildWithinChain(t, 4)

	terminal, err := g.FollowLabel(ids[0], labelWithin)
	require.NoError(t, err)
	assert.Equal(t, ids[3], terminal.ID, "the walk ends where no WITHIN edge leaves")
}

// TestGraph_FollowLabel_Geography reproduces the location hierarchy from the
// canonical example: Idaho sits WITHIN the United States WITHIN North
// America, and London WITHIN England WITHIN Europe.
func TestGraph_FollowLabel_Geography(t *testing.T) {
	g := core.NewGraph()

	namerica := g.AddNode(core.Properties{"type": "Continent", "name": "North America"})
	usa := g.AddNode(core.Properties{"type": "Country", "name": "United States"})
	idaho := g.AddNode(core.Properties{"type": "State", "name": "Idaho"})
	mustAddEdge(t, g, usa, labelWithin, namerica)
	mustAddEdge(t, g, idaho, labelWithin, usa)

	europe := g.AddNode(core.Properties{"type": "Continent", "name": "Europe"})
	england := g.AddNode(core.Properties{"type": "Country", "name": "England"})
	london := g.AddNode(core.Properties{"type": "City", "name": "London"})
	mustAddEdge(t, g, england, labelWithin, europe)
	mustAddEdge(t, g, london, labelWithin, england)

	lucy := g.AddNode(core.Properties{"type": "Person", "name": "Lucy"})
	mustAddEdge(t, g, lucy, labelBornIn, idaho)
	mustAddEdge(t, g, lucy, labelLivesIn, london)

	birthplace, err := g.OutgoingWithLabel(lucy, labelBornIn)
	require.NoError(t, err)
	require.Len(t, birthplace, 1)

	continent, err := g.FollowLabel(birthplace[0].Head, labelWithin)
	require.NoError(t, err)
	assert.Equal(t, "North America", continent.Properties["name"])

	home, err := g.FollowLabel(london, labelWithin)
	require.NoError(t, err)
	assert.Equal(t, "Europe", home.Properties["name"])
}

func TestGraph_FollowLabel_StartWithoutLabel(t *testing.T) {
	f := newLucyFixture(t)

	// Idaho has incoming BORN_IN but no outgoing WITHIN here.
	n, err := f.g.FollowLabel(f.idaho, labelWithin)
	assert.Nil(t, n)
	assert.ErrorIs(t, err, core.ErrLabelNotFound)
}

func TestGraph_FollowLabel_CycleTerminates(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(core.Properties{"name": "a"})
	b := g.AddNode(core.Properties{"name": "b"})
	c := g.AddNode(core.Properties{"name": "c"})
	mustAddEdge(t, g, a, labelWithin, b)
	mustAddEdge(t, g, b, labelWithin, c)
	mustAddEdge(t, g, c, labelWithin, a) // closes the loop

	terminal, err := g.FollowLabel(a, labelWithin)
	require.NoError(t, err)
	assert.Equal(t, c, terminal.ID, "the walk stops before revisiting a")
}

func TestGraph_FollowLabel_LowestEdgeWins(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	mustAddEdge(t, g, a, labelWithin, b) // lower ID, must be followed
	mustAddEdge(t, g, a, labelWithin, c)

	terminal, err := g.FollowLabel(a, labelWithin)
	require.NoError(t, err)
	assert.Equal(t, b, terminal.ID)
}

func TestGraph_FollowLabel_BadInput(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(nil)

	_, err := g.FollowLabel(a, "")
	assert.ErrorIs(t, err, core.ErrEmptyLabel)

	_, err = g.FollowLabel(999, labelWithin)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

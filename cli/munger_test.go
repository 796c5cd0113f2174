package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/senatestv/count-service/munge"
)

func TestBuildMungersTruncate(t *testing.T) {
	c := &CLI{Mungers: []string{"truncate:5"}}
	mungers, err := c.buildMungers()
	require.NoError(t, err)
	require.Len(t, mungers, 1)
	require.IsType(t, munge.TruncateMunger{}, mungers[0])
	require.Equal(t, 5, mungers[0].(munge.TruncateMunger).MaxPrefs)
}

func TestBuildMungersTruncateRejectsBadDepth(t *testing.T) {
	c := &CLI{Mungers: []string{"truncate:abc"}}
	_, err := c.buildMungers()
	require.Error(t, err)

	c2 := &CLI{Mungers: []string{"truncate:0"}}
	_, err = c2.buildMungers()
	require.Error(t, err)
}

func TestBuildMungersGroupRecolor(t *testing.T) {
	c := &CLI{State: "NSW", Mungers: []string{"group-recolor"}}
	mungers, err := c.buildMungers()
	require.NoError(t, err)
	require.Len(t, mungers, 1)
}

func TestBuildMungersUnknownNameFails(t *testing.T) {
	c := &CLI{Mungers: []string{"nonsense"}}
	_, err := c.buildMungers()
	require.Error(t, err)
}

func TestBuildMungersPreservesOrder(t *testing.T) {
	c := &CLI{State: "QLD", Mungers: []string{"truncate:3", "group-recolor"}}
	mungers, err := c.buildMungers()
	require.NoError(t, err)
	require.Len(t, mungers, 2)
	require.IsType(t, munge.TruncateMunger{}, mungers[0])
	require.IsType(t, &munge.GroupRecolorMunger{}, mungers[1])
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capstone-timeline/pkg/models"
)

func TestListTeam(t *testing.T) {
	s, logs := newTestContent(t)
	tree(t, s.Root, map[string]string{
		"team/Ana Silva/info.json":  `{"name":"Ana Silva","role":"Engineer","city":"Porto","skills":["Go"],"quote":"Ship it","extra":42}`,
		"team/Ana Silva/.thumb.jpg": "",
		"team/Ana Silva/ana.png":    "",
		"team/Bruno/info.json":      `{"city":"Lisbon"}`,
		"team/Carla/info.json":      `{"name":"Carla","city":"Porto"}`,
		"team/Carla/avatar.webp":    "",
		"team/NoInfo/photo.jpg":     "",
		"team/Template/info.json":   `{"_instructions":"Fill in your details","name":"Your Name"}`,
		"team/Broken/info.json":     `{"name":`,
		"team/_template/info.json":  `{"name":"Hidden"}`,
	})

	members, err := s.ListTeam()
	require.NoError(t, err)

	assert.Equal(t, []models.TeamMember{
		{
			ID:     "bruno",
			Name:   "Bruno",
			Role:   DefaultRole,
			City:   "Lisbon",
			Skills: []string{},
		},
		{
			ID:     "ana-silva",
			Name:   "Ana Silva",
			Role:   "Engineer",
			City:   "Porto",
			Avatar: "/team/Ana Silva/ana.png",
			Skills: []string{"Go"},
			Quote:  "Ship it",
		},
		{
			ID:     "carla",
			Name:   "Carla",
			Role:   DefaultRole,
			City:   "Porto",
			Avatar: "/team/Carla/avatar.webp",
			Skills: []string{},
		},
	}, members)

	assert.Equal(t, 1, logs.FilterMessage("skipping team member").Len())
}

func TestListTeamFallbackCity(t *testing.T) {
	s, _ := newTestContent(t)
	s.FallbackCity = "Braga"
	tree(t, s.Root, map[string]string{
		"team/Dina/info.json": `{}`,
	})

	members, err := s.ListTeam()
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Braga", members[0].City)
	assert.Equal(t, "Dina", members[0].Name)
}

func TestListTeamInstructionsMarker(t *testing.T) {
	tests := []struct {
		instructions string
		included     bool
	}{
		{`""`, true},
		{"null", true},
		{"false", true},
		{"0", true},
		{"0.0", true},
		{"-0", true},
		{"true", false},
		{`"Fill in your details"`, false},
		{"[]", false},
		{"{}", false},
		{`["add a photo"]`, false},
	}
	for _, tt := range tests {
		t.Run(tt.instructions, func(t *testing.T) {
			s, _ := newTestContent(t)
			tree(t, s.Root, map[string]string{
				"team/Eva/info.json": `{"name":"Eva","_instructions":` + tt.instructions + `}`,
			})

			members, err := s.ListTeam()
			require.NoError(t, err)
			if tt.included {
				require.Len(t, members, 1)
				assert.Equal(t, "Eva", members[0].Name)
			} else {
				assert.Empty(t, members)
			}
		})
	}
}

func TestListTeamMissingRoot(t *testing.T) {
	s, _ := newTestContent(t)
	members, err := s.ListTeam()
	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)
}

package services

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"capstone-timeline/pkg/models"

	"go.uber.org/zap"
)

const DefaultRole = "Team Member"

// ListTeam reads team/<member>/info.json for every member folder, sorted by
// city and then by name. Folders without a sidecar, with an unfilled
// template sidecar, or with malformed JSON are left out.
func (s *Content) ListTeam() ([]models.TeamMember, error) {
	folders, err := ListContentDirs(s.teamDir())
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}

	members := make([]models.TeamMember, 0, len(folders))
	for _, folder := range folders {
		member, ok := s.readMember(folder)
		if ok {
			members = append(members, member)
		}
	}

	col := s.collator()
	slices.SortStableFunc(members, func(a, b models.TeamMember) int {
		if c := col.CompareString(a.City, b.City); c != 0 {
			return c
		}
		return col.CompareString(a.Name, b.Name)
	})
	return members, nil
}

func (s *Content) readMember(folder string) (models.TeamMember, bool) {
	dir := filepath.Join(s.teamDir(), folder)
	log := s.Logger.With(zap.String("folder", folder))

	var info models.TeamSidecar
	found, err := ReadSidecar(dir, &info)
	if err != nil {
		log.Warn("skipping team member", zap.Error(err))
		return models.TeamMember{}, false
	}
	if !found {
		return models.TeamMember{}, false
	}
	if isTruthy(info.Instructions) {
		log.Debug("skipping unfilled team template")
		return models.TeamMember{}, false
	}

	avatar, err := findAvatar(dir)
	if err != nil {
		log.Warn("skipping team member", zap.Error(err))
		return models.TeamMember{}, false
	}
	if avatar != "" {
		avatar = publicURL("team", folder, avatar)
	}

	skills := info.Skills
	if skills == nil {
		skills = []string{}
	}

	return models.TeamMember{
		ID:        Slugify(folder),
		Name:      firstNonEmpty(string(info.Name), folder),
		Role:      firstNonEmpty(string(info.Role), DefaultRole),
		City:      firstNonEmpty(string(info.City), s.FallbackCity),
		Avatar:    avatar,
		Skills:    skills,
		LinkedIn:  info.LinkedIn,
		Credly:    info.Credly,
		Email:     info.Email,
		Hobbies:   info.Hobbies,
		Interests: info.Interests,
		Education: info.Education,
		Quote:     info.Quote,
	}, true
}

// findAvatar returns the first non-hidden image in directory order.
func findAvatar(dir string) (string, error) {
	files, err := listFiles(dir)
	if err != nil {
		return "", err
	}
	for _, name := range files {
		if IsImageFile(name) && !strings.HasPrefix(name, ".") {
			return name, nil
		}
	}
	return "", nil
}

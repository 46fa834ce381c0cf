package project

import (
	"strings"
	"time"
)

// recentWindow is how far back an update keeps a project in the Recent
// bucket for non-owners.
const recentWindow = 30 * 24 * time.Hour

// Buckets partitions a project list for display. Every non-archived project
// falls into exactly one bucket.
type Buckets struct {
	Recent []Project `json:"recent"`
	Shared []Project `json:"shared"`
	Other  []Project `json:"other"`
}

// Categorize partitions projects for the given user. A project is Recent
// when the user owns it (regardless of age) or it was updated within the
// last 30 days; Shared when the user does not own it but appears in its
// collaborator list; Other covers the rest. Archived projects are excluded
// entirely. Buckets are evaluated in that order, so the partition is
// disjoint.
func Categorize(projects []Project, userID string, now time.Time) Buckets {
	buckets := Buckets{
		Recent: []Project{},
		Shared: []Project{},
		Other:  []Project{},
	}
	cutoff := now.Add(-recentWindow)
	for _, p := range projects {
		if p.Archived() {
			continue
		}
		switch {
		case p.OwnerID == userID || p.UpdatedAt.After(cutoff):
			buckets.Recent = append(buckets.Recent, p)
		case collaboratesOn(p, userID):
			buckets.Shared = append(buckets.Shared, p)
		default:
			buckets.Other = append(buckets.Other, p)
		}
	}
	return buckets
}

func collaboratesOn(p Project, userID string) bool {
	for _, c := range p.Collaborators {
		if c.UserID == userID {
			return true
		}
	}
	return false
}

// MatchesFilter reports whether a project matches a free-text query and an
// access-level filter. The query is a case-insensitive substring match
// against name, description, and tags; an empty query matches everything.
// An empty or "all" access level matches every level.
func MatchesFilter(p Project, query, accessLevel string) bool {
	if accessLevel != "" && accessLevel != "all" && string(p.AccessLevel) != accessLevel {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

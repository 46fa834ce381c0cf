package template

import (
	"time"

	"github.com/aiborg-ai/patentdesk/internal/domain/project"
)

// SuggestedMilestone is a milestone blueprint scheduled relative to
// project creation.
type SuggestedMilestone struct {
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	WeeksFromStart int    `json:"weeks_from_start"`
}

// Template is a reusable project blueprint. Creating a project from a
// template increments its usage counter.
type Template struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Category            string               `json:"category,omitempty"`
	Description         string               `json:"description,omitempty"`
	DefaultSettings     project.Settings     `json:"default_settings"`
	RecommendedTags     []string             `json:"recommended_tags,omitempty"`
	DefaultPriority     string               `json:"default_priority,omitempty"`
	SuggestedMilestones []SuggestedMilestone `json:"suggested_milestones,omitempty"`
	UsageCount          int                  `json:"usage_count"`
	CreatedAt           time.Time            `json:"created_at"`
}

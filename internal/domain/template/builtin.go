package template

import "github.com/aiborg-ai/patentdesk/internal/domain/project"

// BuiltIn returns the stock templates seeded on first startup.
func BuiltIn() []Template {
	return []Template{
		{
			ID:          "tmpl-patent-landscape",
			Name:        "Patent Landscape Analysis",
			Category:    "analysis",
			Description: "Map the competitive patent landscape for a technology area",
			DefaultSettings: project.Settings{
				AutoSaveSearches:        true,
				AutoCreateAssets:        true,
				AllowCrossProjectAssets: true,
				EmailNotifications:      true,
			},
			RecommendedTags: []string{"landscape", "analysis"},
			DefaultPriority: "high",
			SuggestedMilestones: []SuggestedMilestone{
				{Title: "Define technology scope", Description: "Agree CPC classes and keyword boundaries", WeeksFromStart: 1},
				{Title: "Collect and clean dataset", Description: "Run searches and deduplicate families", WeeksFromStart: 3},
				{Title: "Publish landscape report", Description: "Summarize assignee and filing trends", WeeksFromStart: 6},
			},
		},
		{
			ID:          "tmpl-fto-analysis",
			Name:        "Freedom to Operate Analysis",
			Category:    "legal",
			Description: "Assess infringement risk for a product before launch",
			DefaultSettings: project.Settings{
				AutoSaveSearches:        true,
				AutoCreateAssets:        false,
				AllowCrossProjectAssets: false,
				EmailNotifications:      true,
			},
			RecommendedTags: []string{"fto", "risk"},
			DefaultPriority: "high",
			SuggestedMilestones: []SuggestedMilestone{
				{Title: "Decompose product features", Description: "Break the product into searchable claim elements", WeeksFromStart: 1},
				{Title: "Identify blocking patents", Description: "Search in-force patents in target jurisdictions", WeeksFromStart: 4},
				{Title: "Deliver clearance opinion", WeeksFromStart: 8},
			},
		},
		{
			ID:          "tmpl-competitor-monitoring",
			Name:        "Competitor Monitoring",
			Category:    "monitoring",
			Description: "Track competitor filing activity on an ongoing basis",
			DefaultSettings: project.Settings{
				AutoSaveSearches:        true,
				AutoCreateAssets:        true,
				AllowCrossProjectAssets: true,
				EmailNotifications:      true,
				ActivityDigest:          true,
			},
			RecommendedTags: []string{"monitoring", "competitors"},
			DefaultPriority: "medium",
			SuggestedMilestones: []SuggestedMilestone{
				{Title: "Build competitor watchlist", Description: "Normalize assignee names and subsidiaries", WeeksFromStart: 1},
				{Title: "Set up alert searches", WeeksFromStart: 2},
			},
		},
	}
}

package catalog

import "dojoscore/internal/domain"

// sampleScores and sampleChecked describe the bundled example assessment
// shown by the preview command.
var sampleScores = map[string]int{
	"lead-generation":        3,
	"lead-nurturing":         2,
	"sales":                  4,
	"trial-class":            3,
	"onboarding":             4,
	"mentorship":             2,
	"crm-systems":            3,
	"funnels-automations":    2,
	"business-strategy":      3,
	"staff-meetings":         4,
	"goal-setting":           2,
	"retention":              3,
	"curriculum":             5,
	"instructor-development": 3,
	"parent-communication":   4,
	"community-engagement":   2,
	"event-planning":         3,
	"merchandise":            1,
	"social-media":           3,
	"website-seo":            2,
	"financial-management":   4,
	"legal-compliance":       3,
	"facility-maintenance":   5,
}

var sampleChecked = map[string][]string{
	"lead-generation":        {"lead-gen-1", "lead-gen-3", "lead-gen-5"},
	"lead-nurturing":         {"lead-nurture-1", "lead-nurture-4"},
	"sales":                  {"sales-1", "sales-2", "sales-3", "sales-4"},
	"trial-class":            {"trial-1", "trial-3", "trial-4"},
	"onboarding":             {"onboarding-1", "onboarding-2", "onboarding-3", "onboarding-4"},
	"mentorship":             {"mentorship-1", "mentorship-3"},
	"crm-systems":            {"crm-1", "crm-2", "crm-4"},
	"funnels-automations":    {"funnels-1", "funnels-2"},
	"business-strategy":      {"strategy-1", "strategy-2", "strategy-5"},
	"staff-meetings":         {"meetings-1", "meetings-2", "meetings-3", "meetings-4"},
	"goal-setting":           {"goals-1", "goals-2"},
	"retention":              {"retention-1", "retention-3", "retention-4"},
	"curriculum":             {"curriculum-1", "curriculum-2", "curriculum-3", "curriculum-4", "curriculum-5"},
	"instructor-development": {"instructor-1", "instructor-2", "instructor-5"},
	"parent-communication":   {"parent-1", "parent-2", "parent-3", "parent-5"},
	"community-engagement":   {"community-1", "community-4"},
	"event-planning":         {"events-1", "events-2", "events-4"},
	"merchandise":            {"merch-1"},
	"social-media":           {"social-1", "social-3", "social-4"},
	"website-seo":            {"website-1", "website-2"},
	"financial-management":   {"finance-1", "finance-2", "finance-3", "finance-4"},
	"legal-compliance":       {"legal-1", "legal-2", "legal-4"},
	"facility-maintenance":   {"facility-1", "facility-2", "facility-3", "facility-4", "facility-5"},
}

// SampleUserInfo is the contact record attached to the sample assessment.
var SampleUserInfo = domain.UserInfo{
	Name:  "John Smith",
	Email: "john@dojoexample.com",
	Phone: "(555) 123-4567",
}

// SampleAssessment builds a completed assessment populated with the
// bundled example scores and checklists.
func SampleAssessment() *domain.Assessment {
	a := domain.NewAssessment(Categories())
	for id, score := range sampleScores {
		if err := a.SetScore(id, score); err != nil {
			panic("catalog: sample score for " + id + ": " + err.Error())
		}
	}
	for id, items := range sampleChecked {
		for _, item := range items {
			if err := a.ToggleItem(id, item); err != nil {
				panic("catalog: sample item " + item + ": " + err.Error())
			}
		}
	}
	a.SkipContact()
	return a
}

package catalog

import "dojoscore/internal/domain"

// Recommendations returns the static recommendation catalog. At most one
// recommendation exists per category id; lookups take the first match.
func Recommendations() []domain.Recommendation {
	return recommendations
}

var recommendations = []domain.Recommendation{
	{
		Category:     "lead-generation",
		Title:        "Lead Generation Playbook",
		Description:  "Build a predictable pipeline of new prospects every month",
		ResourceType: domain.ResourceGuide,
		ResourceURL:  "https://resources.odysseygroup.example/lead-generation-playbook",
	},
	{
		Category:     "lead-nurturing",
		Title:        "Follow-Up Sequences That Convert",
		Description:  "Turn cold leads into booked trials with a written follow-up system",
		ResourceType: domain.ResourceVideo,
		ResourceURL:  "https://resources.odysseygroup.example/follow-up-sequences",
	},
	{
		Category:     "sales",
		Title:        "Enrollment Conversation Framework",
		Description:  "A repeatable script that enrolls without pressure",
		ResourceType: domain.ResourceVideo,
		ResourceURL:  "https://resources.odysseygroup.example/enrollment-framework",
	},
	{
		Category:     "trial-class",
		Title:        "Perfect Trial Class Checklist",
		Description:  "Make every first class convert from hello to sign-up",
		ResourceType: domain.ResourceChecklist,
		ResourceURL:  "https://resources.odysseygroup.example/trial-class-checklist",
	},
	{
		Category:     "onboarding",
		Title:        "90-Day Onboarding System",
		Description:  "Lock in new members during the window when most quit",
		ResourceType: domain.ResourceGuide,
		ResourceURL:  "https://resources.odysseygroup.example/onboarding-system",
	},
	{
		Category:     "mentorship",
		Title:        "Mentorship Program Blueprint",
		Description:  "Build a system that improves retention and community",
		ResourceType: domain.ResourceVideo,
		ResourceURL:  "https://resources.odysseygroup.example/mentorship-blueprint",
	},
	{
		Category:     "crm-systems",
		Title:        "Choosing and Using a School CRM",
		Description:  "Get every member, payment, and class into one system",
		ResourceType: domain.ResourceArticle,
		ResourceURL:  "https://resources.odysseygroup.example/school-crm",
	},
	{
		Category:     "funnels-automations",
		Title:        "Automation Starter Kit",
		Description:  "The five automations every school should run first",
		ResourceType: domain.ResourceGuide,
		ResourceURL:  "https://resources.odysseygroup.example/automation-starter-kit",
	},
	{
		Category:     "business-strategy",
		Title:        "One-Page Business Plan Workshop",
		Description:  "Set direction for the year on a single page you'll actually use",
		ResourceType: domain.ResourceConsultation,
		ResourceURL:  "https://resources.odysseygroup.example/one-page-plan",
	},
	{
		Category:     "staff-meetings",
		Title:        "Staff Meetings That Don't Waste Time",
		Description:  "Agendas, cadence, and follow-through for small teams",
		ResourceType: domain.ResourceArticle,
		ResourceURL:  "https://resources.odysseygroup.example/staff-meetings",
	},
	{
		Category:     "goal-setting",
		Title:        "Quarterly Goals System",
		Description:  "Set targets the whole school can see and hit",
		ResourceType: domain.ResourceGuide,
		ResourceURL:  "https://resources.odysseygroup.example/quarterly-goals",
	},
	{
		Category:     "retention",
		Title:        "Retention Rescue Plan",
		Description:  "Spot at-risk students early and bring them back",
		ResourceType: domain.ResourceVideo,
		ResourceURL:  "https://resources.odysseygroup.example/retention-rescue",
	},
	{
		Category:     "curriculum",
		Title:        "Curriculum Documentation Template",
		Description:  "Get your full belt progression out of your head and on paper",
		ResourceType: domain.ResourceChecklist,
		ResourceURL:  "https://resources.odysseygroup.example/curriculum-template",
	},
	{
		Category:     "instructor-development",
		Title:        "Instructor Certification Path",
		Description:  "Develop assistants into confident lead instructors",
		ResourceType: domain.ResourceGuide,
		ResourceURL:  "https://resources.odysseygroup.example/instructor-path",
	},
	{
		Category:     "parent-communication",
		Title:        "Parent Communication Calendar",
		Description:  "A yearly rhythm of updates that keeps parents on your side",
		ResourceType: domain.ResourceChecklist,
		ResourceURL:  "https://resources.odysseygroup.example/parent-calendar",
	},
	{
		Category:     "community-engagement",
		Title:        "Local Partnership Playbook",
		Description:  "Become the martial arts school your town knows by name",
		ResourceType: domain.ResourceArticle,
		ResourceURL:  "https://resources.odysseygroup.example/local-partnerships",
	},
	{
		Category:     "event-planning",
		Title:        "Event Planning Toolkit",
		Description:  "Run tournaments, buddy days, and camps without the chaos",
		ResourceType: domain.ResourceChecklist,
		ResourceURL:  "https://resources.odysseygroup.example/event-toolkit",
	},
	{
		Category:     "merchandise",
		Title:        "Merchandise & Pro Shop System",
		Description:  "Turn your pro shop into a significant profit center",
		ResourceType: domain.ResourceGuide,
		ResourceURL:  "https://resources.odysseygroup.example/pro-shop-system",
	},
	{
		Category:     "social-media",
		Title:        "30 Days of School Content",
		Description:  "A month of post ideas that showcase real training",
		ResourceType: domain.ResourceVideo,
		ResourceURL:  "https://resources.odysseygroup.example/30-days-content",
	},
	{
		Category:     "website-seo",
		Title:        "Local SEO for Martial Arts Schools",
		Description:  "Own the map pack and page one in your city",
		ResourceType: domain.ResourceArticle,
		ResourceURL:  "https://resources.odysseygroup.example/local-seo",
	},
	{
		Category:     "financial-management",
		Title:        "School Finance Fundamentals",
		Description:  "Budgets, reserves, and the numbers that matter monthly",
		ResourceType: domain.ResourceGuide,
		ResourceURL:  "https://resources.odysseygroup.example/finance-fundamentals",
	},
	{
		Category:     "legal-compliance",
		Title:        "Compliance Audit Consultation",
		Description:  "Review waivers, insurance, and agreements with an expert",
		ResourceType: domain.ResourceConsultation,
		ResourceURL:  "https://resources.odysseygroup.example/compliance-audit",
	},
	{
		Category:     "facility-maintenance",
		Title:        "Facility Standards Checklist",
		Description:  "Daily, weekly, and monthly routines for a professional space",
		ResourceType: domain.ResourceChecklist,
		ResourceURL:  "https://resources.odysseygroup.example/facility-standards",
	},
}

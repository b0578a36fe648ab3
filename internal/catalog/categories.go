// Package catalog holds the static assessment data: the ordered category
// catalog, the recommendation catalog, and the sample result set used by
// the preview. All of it is fixed at compile time and consumed read-only.
package catalog

import "dojoscore/internal/domain"

// Categories returns the ordered catalog of the 23 business areas. The
// order is significant: it drives wizard step numbering and table order.
func Categories() []domain.Category {
	return categories
}

var categories = []domain.Category{
	{
		ID:          "lead-generation",
		Title:       "Lead Generation",
		Description: "How consistently your school attracts new prospective students",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "lead-gen-1", Text: "We track where every new lead comes from"},
			{ID: "lead-gen-2", Text: "We run at least one paid advertising channel year-round"},
			{ID: "lead-gen-3", Text: "We have a referral program that members actually use"},
			{ID: "lead-gen-4", Text: "We set and review a monthly new-lead target"},
			{ID: "lead-gen-5", Text: "We capture leads from walk-ins, calls, and web forms in one place"},
		},
	},
	{
		ID:          "lead-nurturing",
		Title:       "Lead Nurturing",
		Description: "How well you follow up with prospects who haven't enrolled yet",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "lead-nurture-1", Text: "Every new lead gets a response within 24 hours"},
			{ID: "lead-nurture-2", Text: "We have a written multi-touch follow-up sequence"},
			{ID: "lead-nurture-3", Text: "Old leads are re-contacted at least quarterly"},
			{ID: "lead-nurture-4", Text: "Follow-up tasks are assigned to a specific person"},
			{ID: "lead-nurture-5", Text: "We measure lead-to-trial conversion monthly"},
		},
	},
	{
		ID:          "sales",
		Title:       "Sales Process",
		Description: "How structured and repeatable your enrollment conversations are",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "sales-1", Text: "We use a written enrollment script or conversation guide"},
			{ID: "sales-2", Text: "Pricing is presented the same way by every staff member"},
			{ID: "sales-3", Text: "We track trial-to-member conversion rate"},
			{ID: "sales-4", Text: "Staff practice enrollment conversations regularly"},
			{ID: "sales-5", Text: "We have a documented answer for common objections"},
		},
	},
	{
		ID:          "trial-class",
		Title:       "Trial Class Experience",
		Description: "The quality and consistency of a prospect's first classes",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "trial-1", Text: "Trial students are greeted by name on arrival"},
			{ID: "trial-2", Text: "There is a defined curriculum for trial classes"},
			{ID: "trial-3", Text: "Parents or partners are engaged during the trial"},
			{ID: "trial-4", Text: "Every trial ends with a scheduled next step"},
			{ID: "trial-5", Text: "We collect feedback from trial students who don't join"},
		},
	},
	{
		ID:          "onboarding",
		Title:       "New Student Onboarding",
		Description: "How new members are welcomed and set up for success",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "onboarding-1", Text: "New members receive a welcome pack or orientation"},
			{ID: "onboarding-2", Text: "We check in personally within the first two weeks"},
			{ID: "onboarding-3", Text: "New students are introduced to classmates and instructors"},
			{ID: "onboarding-4", Text: "Early goals are set with each new student"},
			{ID: "onboarding-5", Text: "Attendance in the first 30 days is monitored"},
		},
	},
	{
		ID:          "mentorship",
		Title:       "Student Mentorship",
		Description: "Structured guidance that keeps students progressing and connected",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "mentorship-1", Text: "Senior students are paired with newer students"},
			{ID: "mentorship-2", Text: "Mentors receive guidance on their role"},
			{ID: "mentorship-3", Text: "Mentorship touchpoints happen on a schedule"},
			{ID: "mentorship-4", Text: "Struggling students are flagged and supported"},
			{ID: "mentorship-5", Text: "We recognize mentors publicly"},
		},
	},
	{
		ID:          "crm-systems",
		Title:       "CRM & Member Systems",
		Description: "The software backbone tracking members, billing, and attendance",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "crm-1", Text: "All member records live in one system"},
			{ID: "crm-2", Text: "Billing is automated with failed-payment follow-up"},
			{ID: "crm-3", Text: "Attendance is recorded for every class"},
			{ID: "crm-4", Text: "Staff are trained on the system we use"},
			{ID: "crm-5", Text: "We review system reports at least monthly"},
		},
	},
	{
		ID:          "funnels-automations",
		Title:       "Funnels & Automations",
		Description: "Automated journeys that move prospects and members forward",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "funnels-1", Text: "New web leads enter an automated email/SMS sequence"},
			{ID: "funnels-2", Text: "We have a landing page for each main offer"},
			{ID: "funnels-3", Text: "Missed trials trigger automatic rebooking messages"},
			{ID: "funnels-4", Text: "Birthday and milestone messages go out automatically"},
			{ID: "funnels-5", Text: "Funnel performance is reviewed with real numbers"},
		},
	},
	{
		ID:          "business-strategy",
		Title:       "Business Strategy",
		Description: "The plan that connects daily operations to long-term direction",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "strategy-1", Text: "We have a written one-page business plan"},
			{ID: "strategy-2", Text: "Key numbers (members, revenue, churn) are reviewed monthly"},
			{ID: "strategy-3", Text: "We know our break-even member count"},
			{ID: "strategy-4", Text: "Pricing is reviewed against costs at least yearly"},
			{ID: "strategy-5", Text: "We plan the year's promotions in advance"},
		},
	},
	{
		ID:          "staff-meetings",
		Title:       "Staff Meetings",
		Description: "Regular, structured communication with your team",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "meetings-1", Text: "Staff meetings happen on a fixed schedule"},
			{ID: "meetings-2", Text: "Every meeting has an agenda"},
			{ID: "meetings-3", Text: "Action items are written down with owners"},
			{ID: "meetings-4", Text: "Wins and member feedback are shared with the team"},
			{ID: "meetings-5", Text: "Follow-through on action items is checked"},
		},
	},
	{
		ID:          "goal-setting",
		Title:       "Goal Setting",
		Description: "Concrete targets for the business and the people in it",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "goals-1", Text: "The school has written quarterly goals"},
			{ID: "goals-2", Text: "Each staff member has individual goals"},
			{ID: "goals-3", Text: "Goals are visible, not filed away"},
			{ID: "goals-4", Text: "Progress is reviewed at a set cadence"},
			{ID: "goals-5", Text: "Students set personal training goals with us"},
		},
	},
	{
		ID:          "retention",
		Title:       "Student Retention",
		Description: "Keeping the students you already have training and paying",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "retention-1", Text: "We track monthly churn as a number"},
			{ID: "retention-2", Text: "Absent students are contacted within a week"},
			{ID: "retention-3", Text: "We run a defined win-back process for cancellations"},
			{ID: "retention-4", Text: "Exit reasons are recorded and reviewed"},
			{ID: "retention-5", Text: "Long-term members are recognized and rewarded"},
		},
	},
	{
		ID:          "curriculum",
		Title:       "Curriculum & Progression",
		Description: "A documented path from white belt to black belt and beyond",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "curriculum-1", Text: "The full curriculum is written down"},
			{ID: "curriculum-2", Text: "Rank requirements are clear to students and parents"},
			{ID: "curriculum-3", Text: "Testing dates are scheduled well in advance"},
			{ID: "curriculum-4", Text: "Class plans follow the curriculum, not improvisation"},
			{ID: "curriculum-5", Text: "The curriculum is reviewed and updated periodically"},
		},
	},
	{
		ID:          "instructor-development",
		Title:       "Instructor Development",
		Description: "Training the people who teach your classes",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "instructor-1", Text: "We run a formal instructor training program"},
			{ID: "instructor-2", Text: "Instructors are evaluated on the floor regularly"},
			{ID: "instructor-3", Text: "Teaching standards are documented"},
			{ID: "instructor-4", Text: "Assistant instructors have a path to leading classes"},
			{ID: "instructor-5", Text: "Instructors get outside education (seminars, courses)"},
		},
	},
	{
		ID:          "parent-communication",
		Title:       "Parent Communication",
		Description: "Keeping the people who pay the bills informed and engaged",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "parent-1", Text: "Parents receive regular progress updates"},
			{ID: "parent-2", Text: "There is a known channel for parent questions"},
			{ID: "parent-3", Text: "Schedule changes are announced ahead of time"},
			{ID: "parent-4", Text: "We hold parent orientation or watch weeks"},
			{ID: "parent-5", Text: "Parent feedback is collected and acted on"},
		},
	},
	{
		ID:          "community-engagement",
		Title:       "Community Engagement",
		Description: "Your school's presence and reputation in the local community",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "community-1", Text: "We partner with local schools or businesses"},
			{ID: "community-2", Text: "The school participates in community events"},
			{ID: "community-3", Text: "We run charity or service initiatives"},
			{ID: "community-4", Text: "Local media or groups know who we are"},
			{ID: "community-5", Text: "Members are encouraged to bring the community in"},
		},
	},
	{
		ID:          "event-planning",
		Title:       "Event Planning",
		Description: "In-school events that build culture and revenue",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "events-1", Text: "We publish an event calendar for the year"},
			{ID: "events-2", Text: "Each event has an owner and a checklist"},
			{ID: "events-3", Text: "Events are promoted beyond a single announcement"},
			{ID: "events-4", Text: "We track attendance and revenue per event"},
			{ID: "events-5", Text: "Post-event reviews capture what to improve"},
		},
	},
	{
		ID:          "merchandise",
		Title:       "Merchandise & Pro Shop",
		Description: "Gear, apparel, and retail as a profit center",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "merch-1", Text: "We stock required gear for every program"},
			{ID: "merch-2", Text: "School-branded apparel is available"},
			{ID: "merch-3", Text: "Inventory and margins are tracked"},
			{ID: "merch-4", Text: "New students are shown the pro shop during onboarding"},
			{ID: "merch-5", Text: "Seasonal or event merchandise is planned"},
		},
	},
	{
		ID:          "social-media",
		Title:       "Social Media",
		Description: "Consistent, engaging presence where your prospects spend time",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "social-1", Text: "We post on a consistent schedule"},
			{ID: "social-2", Text: "Content shows real students and classes"},
			{ID: "social-3", Text: "Comments and messages get replies within a day"},
			{ID: "social-4", Text: "We use video, not just static images"},
			{ID: "social-5", Text: "Social performance is reviewed monthly"},
		},
	},
	{
		ID:          "website-seo",
		Title:       "Website & SEO",
		Description: "Being found online and converting visitors into leads",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "website-1", Text: "The website loads fast and works on phones"},
			{ID: "website-2", Text: "Every page has a clear call to action"},
			{ID: "website-3", Text: "Our Google Business profile is claimed and current"},
			{ID: "website-4", Text: "We actively collect online reviews"},
			{ID: "website-5", Text: "We rank on page one for our main local searches"},
		},
	},
	{
		ID:          "financial-management",
		Title:       "Financial Management",
		Description: "Knowing and controlling the money side of the school",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "finance-1", Text: "Books are reconciled monthly"},
			{ID: "finance-2", Text: "We maintain a cash reserve target"},
			{ID: "finance-3", Text: "Revenue is tracked by program"},
			{ID: "finance-4", Text: "A budget exists and is compared to actuals"},
			{ID: "finance-5", Text: "We work with an accountant or bookkeeper"},
		},
	},
	{
		ID:          "legal-compliance",
		Title:       "Legal & Compliance",
		Description: "Waivers, insurance, and policies that protect the business",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "legal-1", Text: "Every participant has a signed current waiver"},
			{ID: "legal-2", Text: "Liability insurance is active and adequate"},
			{ID: "legal-3", Text: "Staff background checks are completed where required"},
			{ID: "legal-4", Text: "Membership agreements are reviewed by a professional"},
			{ID: "legal-5", Text: "Incident reports are documented and stored"},
		},
	},
	{
		ID:          "facility-maintenance",
		Title:       "Facility & Maintenance",
		Description: "A clean, safe, professional training environment",
		ChecklistItems: []domain.ChecklistItem{
			{ID: "facility-1", Text: "Mats and equipment are cleaned on a schedule"},
			{ID: "facility-2", Text: "Repairs are logged and resolved promptly"},
			{ID: "facility-3", Text: "The entrance and lobby make a strong first impression"},
			{ID: "facility-4", Text: "Safety equipment is inspected regularly"},
			{ID: "facility-5", Text: "Deep cleaning happens at a set cadence"},
		},
	},
}

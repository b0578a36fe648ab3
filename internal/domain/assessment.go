package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownCategory = errors.New("unknown category id")
	ErrUnknownItem     = errors.New("unknown checklist item id")
)

// CategoryResult holds one category's self-rating and checked items.
// CheckedItems is a set; insertion order is not significant.
type CategoryResult struct {
	Score        int
	CheckedItems map[string]bool
}

// Checked reports whether the given item id is currently checked.
func (r *CategoryResult) Checked(itemID string) bool {
	return r.CheckedItems[itemID]
}

// CheckedCount returns the number of checked items.
func (r *CategoryResult) CheckedCount() int {
	return len(r.CheckedItems)
}

// Assessment is the single session's mutable state: the current wizard
// step, one result per catalog category, optional contact info, and the
// completion flag. It is owned by one session and mutated only through
// its methods.
type Assessment struct {
	ID          string
	StartedAt   time.Time
	CurrentStep int
	Results     map[string]*CategoryResult
	UserInfo    *UserInfo
	IsComplete  bool

	categories []Category
}

// NewAssessment creates an assessment at step 0 with every category
// initialized to score 1 and an empty checked set.
func NewAssessment(categories []Category) *Assessment {
	a := &Assessment{
		ID:         uuid.NewString(),
		StartedAt:  time.Now(),
		categories: categories,
	}
	a.initResults()
	return a
}

func (a *Assessment) initResults() {
	a.Results = make(map[string]*CategoryResult, len(a.categories))
	for _, c := range a.categories {
		a.Results[c.ID] = &CategoryResult{Score: 1, CheckedItems: map[string]bool{}}
	}
}

// Categories returns the catalog this assessment was built from, in order.
func (a *Assessment) Categories() []Category {
	return a.categories
}

// Result returns the result record for a category id.
func (a *Assessment) Result(categoryID string) (*CategoryResult, bool) {
	r, ok := a.Results[categoryID]
	return r, ok
}

// SetCurrentStep sets the step unconditionally. Callers are expected to
// pass values produced by the navigation methods.
func (a *Assessment) SetCurrentStep(n int) {
	a.CurrentStep = n
}

// SetScore replaces a category's score. The score range is not clamped;
// the wizard only offers 1-5.
func (a *Assessment) SetScore(categoryID string, score int) error {
	r, ok := a.Results[categoryID]
	if !ok {
		return ErrUnknownCategory
	}
	r.Score = score
	return nil
}

// ToggleItem flips a checklist item's membership in the checked set.
// Toggling twice restores the original set.
func (a *Assessment) ToggleItem(categoryID, itemID string) error {
	r, ok := a.Results[categoryID]
	if !ok {
		return ErrUnknownCategory
	}
	cat, ok := a.category(categoryID)
	if !ok {
		return ErrUnknownCategory
	}
	if _, ok := cat.Item(itemID); !ok {
		return ErrUnknownItem
	}
	if r.CheckedItems[itemID] {
		delete(r.CheckedItems, itemID)
	} else {
		r.CheckedItems[itemID] = true
	}
	return nil
}

// SetUserInfo replaces the contact info wholesale.
func (a *Assessment) SetUserInfo(info UserInfo) {
	a.UserInfo = &info
}

// SetComplete sets the completion flag.
func (a *Assessment) SetComplete(complete bool) {
	a.IsComplete = complete
}

// Reset restores the exact initial state: step 0, every category at
// score 1 with nothing checked, no user info, not complete. The session
// identity (ID, StartedAt) is kept.
func (a *Assessment) Reset() {
	a.CurrentStep = 0
	a.initResults()
	a.UserInfo = nil
	a.IsComplete = false
}

func (a *Assessment) category(id string) (*Category, bool) {
	for i := range a.categories {
		if a.categories[i].ID == id {
			return &a.categories[i], true
		}
	}
	return nil, false
}

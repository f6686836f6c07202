package domain

// GoalTemplate is an immutable catalog entry a faction can adopt as a goal.
type GoalTemplate struct {
	ID         string
	Name       string
	Desc       string
	Difficulty int
}

// Goal is an active pursuit. It is a copy of a template, not a reference:
// the instance accumulates its own notes and edits independently of the
// shared catalog entry.
type Goal struct {
	Name       string
	Desc       string
	Difficulty int
	Notes      string
}

// NewGoal instantiates a goal from a template, copying only the defining
// fields.
func NewGoal(tmpl GoalTemplate) *Goal {
	return &Goal{Name: tmpl.Name, Desc: tmpl.Desc, Difficulty: tmpl.Difficulty}
}

package auth

import (
	"github.com/Employeest/employeest-be/internal/model"
)

// Action is what an actor is attempting against an entity.
type Action string

const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionDelete Action = "delete"
)

// Kind identifies the entity type a policy applies to.
type Kind string

const (
	KindProject     Kind = "project"
	KindTask        Kind = "task"
	KindTeam        Kind = "team"
	KindTeamMember  Kind = "team_member"
	KindTaskComment Kind = "task_comment"
	KindWorkLog     Kind = "work_log"
)

// Actor is the authenticated user a request runs as. It is passed explicitly
// into every policy decision; nothing is read from ambient request state.
type Actor struct {
	ID      int64
	Role    string
	IsStaff bool
}

// Predicate decides whether an actor may act on an entity. Predicates are
// pure; callers load whatever relations the predicate inspects (a Task's
// project with managers, a TeamMember's team) before asking.
type Predicate func(actor Actor, entity interface{}) bool

func always(Actor, interface{}) bool { return true }

// policies is the single authorization table: (entity kind, action) -> rule.
// Lookups that miss deny.
var policies = map[Kind]map[Action]Predicate{
	KindProject: {
		ActionRead:   always,
		ActionWrite:  projectOwnerOnly,
		ActionDelete: projectOwnerOnly,
	},
	KindTask: {
		ActionRead:   always,
		ActionWrite:  taskAssigneeOrProjectManager,
		ActionDelete: taskAssigneeOrProjectManager,
	},
	KindTeam: {
		ActionRead:   always,
		ActionWrite:  teamOwnerOnly,
		ActionDelete: teamOwnerOnly,
	},
	KindTeamMember: {
		ActionRead:   always,
		ActionWrite:  membershipSelfOrTeamOwner,
		ActionDelete: membershipTeamOwner,
	},
	KindTaskComment: {
		ActionRead:   always,
		ActionWrite:  commentAuthorOnly,
		ActionDelete: commentAuthorOnly,
	},
	KindWorkLog: {
		ActionRead:   workLogOwnerOrStaff,
		ActionWrite:  workLogOwnerOnly,
		ActionDelete: workLogOwnerOnly,
	},
}

// Allow evaluates the policy table. Unknown kinds, actions or entity types
// deny.
func Allow(actor Actor, action Action, kind Kind, entity interface{}) bool {
	actions, ok := policies[kind]
	if !ok {
		return false
	}
	pred, ok := actions[action]
	if !ok {
		return false
	}
	return pred(actor, entity)
}

func projectOwnerOnly(actor Actor, entity interface{}) bool {
	project, ok := entity.(*model.Project)
	if !ok {
		return false
	}
	return project.OwnerID == actor.ID
}

// taskAssigneeOrProjectManager expects task.Project preloaded with managers.
func taskAssigneeOrProjectManager(actor Actor, entity interface{}) bool {
	task, ok := entity.(*model.Task)
	if !ok {
		return false
	}
	if task.AssigneeID != nil && *task.AssigneeID == actor.ID {
		return true
	}
	if task.Project != nil && task.Project.IsManagedBy(actor.ID) {
		return true
	}
	return false
}

func teamOwnerOnly(actor Actor, entity interface{}) bool {
	team, ok := entity.(*model.Team)
	if !ok {
		return false
	}
	return team.OwnerID == actor.ID
}

// membershipSelfOrTeamOwner expects member.Team preloaded.
func membershipSelfOrTeamOwner(actor Actor, entity interface{}) bool {
	member, ok := entity.(*model.TeamMember)
	if !ok {
		return false
	}
	if member.UserID == actor.ID {
		return true
	}
	return member.Team != nil && member.Team.OwnerID == actor.ID
}

func membershipTeamOwner(actor Actor, entity interface{}) bool {
	member, ok := entity.(*model.TeamMember)
	if !ok {
		return false
	}
	return member.Team != nil && member.Team.OwnerID == actor.ID
}

func commentAuthorOnly(actor Actor, entity interface{}) bool {
	comment, ok := entity.(*model.TaskComment)
	if !ok {
		return false
	}
	return comment.AuthorID == actor.ID
}

func workLogOwnerOnly(actor Actor, entity interface{}) bool {
	log, ok := entity.(*model.WorkLog)
	if !ok {
		return false
	}
	return log.UserID == actor.ID
}

func workLogOwnerOrStaff(actor Actor, entity interface{}) bool {
	if actor.IsStaff {
		return true
	}
	return workLogOwnerOnly(actor, entity)
}

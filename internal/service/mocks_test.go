package service_test

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/internal/repository"
)

type mockTaskRepo struct {
	mock.Mock
}

func (m *mockTaskRepo) CreateWithHistory(task *model.Task, entry *model.TaskHistory) error {
	return m.Called(task, entry).Error(0)
}

func (m *mockTaskRepo) FindByID(id int64, opts ...repository.QueryOption) (*model.Task, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *mockTaskRepo) List(filter repository.TaskFilter, offset, limit int) ([]*model.Task, int64, error) {
	args := m.Called(filter, offset, limit)
	return args.Get(0).([]*model.Task), args.Get(1).(int64), args.Error(2)
}

func (m *mockTaskRepo) UpdateWithHistory(task *model.Task, entries []*model.TaskHistory) error {
	return m.Called(task, entries).Error(0)
}

func (m *mockTaskRepo) Delete(id int64) error {
	return m.Called(id).Error(0)
}

func (m *mockTaskRepo) ListByProject(projectID int64) ([]*model.Task, error) {
	args := m.Called(projectID)
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *mockTaskRepo) ListDoneWithPointsByProject(projectID int64, since time.Time) ([]*model.Task, error) {
	args := m.Called(projectID, since)
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *mockTaskRepo) ListDoneWithPoints(since time.Time) ([]*model.Task, error) {
	args := m.Called(since)
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *mockTaskRepo) ListDoneByAssignee(assigneeID int64, since time.Time) ([]*model.Task, error) {
	args := m.Called(assigneeID, since)
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *mockTaskRepo) ListOpenByAssignee(assigneeID int64) ([]*model.Task, error) {
	args := m.Called(assigneeID)
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *mockTaskRepo) DistinctProjectIDsByAssignee(assigneeID int64) ([]int64, error) {
	args := m.Called(assigneeID)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *mockTaskRepo) CountByProjectOwner(ownerID int64) (int64, error) {
	args := m.Called(ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTaskRepo) CountByProjectOwnerAndStatus(ownerID int64, status string) (int64, error) {
	args := m.Called(ownerID, status)
	return args.Get(0).(int64), args.Error(1)
}

type mockProjectRepo struct {
	mock.Mock
}

func (m *mockProjectRepo) Create(project *model.Project) error {
	return m.Called(project).Error(0)
}

func (m *mockProjectRepo) FindByID(id int64, opts ...repository.QueryOption) (*model.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *mockProjectRepo) List(status string, keyword string, offset, limit int) ([]*model.Project, int64, error) {
	args := m.Called(status, keyword, offset, limit)
	return args.Get(0).([]*model.Project), args.Get(1).(int64), args.Error(2)
}

func (m *mockProjectRepo) ListByOwner(ownerID int64) ([]*model.Project, error) {
	args := m.Called(ownerID)
	return args.Get(0).([]*model.Project), args.Error(1)
}

func (m *mockProjectRepo) ListByIDs(ids []int64) ([]*model.Project, error) {
	args := m.Called(ids)
	return args.Get(0).([]*model.Project), args.Error(1)
}

func (m *mockProjectRepo) ListIDsByMemberTeams(userID int64) ([]int64, error) {
	args := m.Called(userID)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *mockProjectRepo) CountByOwner(ownerID int64) (int64, error) {
	args := m.Called(ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProjectRepo) CountByOwnerAndStatus(ownerID int64, status string) (int64, error) {
	args := m.Called(ownerID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProjectRepo) Update(project *model.Project) error {
	return m.Called(project).Error(0)
}

func (m *mockProjectRepo) ReplaceManagers(project *model.Project, managers []model.User) error {
	return m.Called(project, managers).Error(0)
}

func (m *mockProjectRepo) ReplaceTeams(project *model.Project, teams []model.Team) error {
	return m.Called(project, teams).Error(0)
}

func (m *mockProjectRepo) Delete(id int64) error {
	return m.Called(id).Error(0)
}

type mockTeamRepo struct {
	mock.Mock
}

func (m *mockTeamRepo) Create(team *model.Team) error {
	return m.Called(team).Error(0)
}

func (m *mockTeamRepo) FindByID(id int64, opts ...repository.QueryOption) (*model.Team, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *mockTeamRepo) ExistsByName(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *mockTeamRepo) List(keyword string, offset, limit int) ([]*model.Team, int64, error) {
	args := m.Called(keyword, offset, limit)
	return args.Get(0).([]*model.Team), args.Get(1).(int64), args.Error(2)
}

func (m *mockTeamRepo) ListByMember(userID int64) ([]*model.Team, error) {
	args := m.Called(userID)
	return args.Get(0).([]*model.Team), args.Error(1)
}

func (m *mockTeamRepo) Update(team *model.Team) error {
	return m.Called(team).Error(0)
}

func (m *mockTeamRepo) Delete(id int64) error {
	return m.Called(id).Error(0)
}

type mockWorkLogRepo struct {
	mock.Mock
}

func (m *mockWorkLogRepo) Create(workLog *model.WorkLog) error {
	return m.Called(workLog).Error(0)
}

func (m *mockWorkLogRepo) FindByID(id int64, opts ...repository.QueryOption) (*model.WorkLog, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WorkLog), args.Error(1)
}

func (m *mockWorkLogRepo) ListAll(offset, limit int) ([]*model.WorkLog, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]*model.WorkLog), args.Get(1).(int64), args.Error(2)
}

func (m *mockWorkLogRepo) ListByUser(userID int64, offset, limit int) ([]*model.WorkLog, int64, error) {
	args := m.Called(userID, offset, limit)
	return args.Get(0).([]*model.WorkLog), args.Get(1).(int64), args.Error(2)
}

func (m *mockWorkLogRepo) Update(workLog *model.WorkLog) error {
	return m.Called(workLog).Error(0)
}

func (m *mockWorkLogRepo) Delete(id int64) error {
	return m.Called(id).Error(0)
}

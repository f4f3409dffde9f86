package service

import (
	"errors"

	"github.com/google/uuid"

	"cha-pyeong/internal/models"
	"cha-pyeong/internal/repository"
)

// In-memory store fakes. Each Fail* flag forces the corresponding operation
// to error so the write protocol's failure paths can be exercised.

type fakeTeaStore struct {
	teas       map[uuid.UUID]*models.Tea
	failCreate bool
}

func newFakeTeaStore() *fakeTeaStore {
	return &fakeTeaStore{teas: make(map[uuid.UUID]*models.Tea)}
}

func (s *fakeTeaStore) Create(tea *models.Tea) error {
	if s.failCreate {
		return errors.New("forced tea insert failure")
	}
	tea.ID = uuid.New()
	s.teas[tea.ID] = tea
	return nil
}

func (s *fakeTeaStore) GetByID(id uuid.UUID) (*models.Tea, error) {
	tea, ok := s.teas[id]
	if !ok {
		return nil, repository.ErrTeaNotFound
	}
	return tea, nil
}

func (s *fakeTeaStore) GetAll(filters repository.TeaFilters) ([]models.Tea, error) {
	var teas []models.Tea
	for _, tea := range s.teas {
		teas = append(teas, *tea)
	}
	return teas, nil
}

type fakeUserStore struct {
	users          map[uuid.UUID]*models.User
	failUpdateRole bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (s *fakeUserStore) add(role models.Role) *models.User {
	user := &models.User{ID: uuid.New(), Email: "user@example.com", Role: role}
	s.users[user.ID] = user
	return user
}

func (s *fakeUserStore) Create(user *models.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) GetByID(id uuid.UUID) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserStore) UpdateRole(id uuid.UUID, role models.Role) error {
	if s.failUpdateRole {
		return errors.New("forced role update failure")
	}
	user, ok := s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Role = role
	return nil
}

func (s *fakeUserStore) GetAll() ([]models.User, error) {
	var users []models.User
	for _, user := range s.users {
		users = append(users, *user)
	}
	return users, nil
}

type fakeAssessmentStore struct {
	assessments map[uuid.UUID]*models.Assessment
	relations   []models.AssessmentWithRelations
	failCreate  bool
	failDelete  bool
	deleted     []uuid.UUID
}

func newFakeAssessmentStore() *fakeAssessmentStore {
	return &fakeAssessmentStore{assessments: make(map[uuid.UUID]*models.Assessment)}
}

func (s *fakeAssessmentStore) Create(assessment *models.Assessment) error {
	if s.failCreate {
		return errors.New("forced assessment insert failure")
	}
	assessment.ID = uuid.New()
	s.assessments[assessment.ID] = assessment
	return nil
}

func (s *fakeAssessmentStore) GetByID(id uuid.UUID) (*models.Assessment, error) {
	assessment, ok := s.assessments[id]
	if !ok {
		return nil, repository.ErrAssessmentNotFound
	}
	return assessment, nil
}

func (s *fakeAssessmentStore) Delete(id uuid.UUID) error {
	if s.failDelete {
		return errors.New("forced assessment delete failure")
	}
	delete(s.assessments, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *fakeAssessmentStore) GetByTeaWithRelations(teaID uuid.UUID) ([]models.AssessmentWithRelations, error) {
	return s.relations, nil
}

type fakeScoreStore struct {
	scores     map[uuid.UUID]*models.Score
	failCreate bool
	failDelete bool
	deleted    []uuid.UUID
}

func newFakeScoreStore() *fakeScoreStore {
	return &fakeScoreStore{scores: make(map[uuid.UUID]*models.Score)}
}

func (s *fakeScoreStore) Create(score *models.Score) error {
	if s.failCreate {
		return errors.New("forced score insert failure")
	}
	score.ID = uuid.New()
	s.scores[score.AssessmentID] = score
	return nil
}

func (s *fakeScoreStore) DeleteByAssessmentID(assessmentID uuid.UUID) error {
	if s.failDelete {
		return errors.New("forced score delete failure")
	}
	delete(s.scores, assessmentID)
	s.deleted = append(s.deleted, assessmentID)
	return nil
}

type fakeExportStore struct {
	records []models.ExportRecord
	err     error
}

func (s *fakeExportStore) GetAll() ([]models.ExportRecord, error) {
	return s.records, s.err
}

package ingestion

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/techsync/techsync-backend/errs"
	"github.com/techsync/techsync-backend/models"
)

// memState holds the committed rows of memStore
type memState struct {
	users            map[uuid.UUID]models.User
	languages        []models.ProgrammingLanguage
	topics           []models.Topic
	projects         map[uuid.UUID]models.Project
	projectLanguages []models.ProjectLanguage
	projectTopics    []models.ProjectTopic
	members          []models.ProjectMember
	notifications    []models.Notification
	nextTopicID      int
}

func (s memState) clone() memState {
	c := s
	c.users = make(map[uuid.UUID]models.User, len(s.users))
	for k, v := range s.users {
		c.users[k] = v
	}
	c.projects = make(map[uuid.UUID]models.Project, len(s.projects))
	for k, v := range s.projects {
		c.projects[k] = v
	}
	c.languages = append([]models.ProgrammingLanguage(nil), s.languages...)
	c.topics = append([]models.Topic(nil), s.topics...)
	c.projectLanguages = append([]models.ProjectLanguage(nil), s.projectLanguages...)
	c.projectTopics = append([]models.ProjectTopic(nil), s.projectTopics...)
	c.members = append([]models.ProjectMember(nil), s.members...)
	c.notifications = append([]models.Notification(nil), s.notifications...)
	return c
}

// memStore is a transactional in-memory Store. Writes made inside Transaction
// are only visible after fn returns nil.
type memStore struct {
	state memState

	// failOn makes the n-th call (1-based) of an operation fail
	failOn  map[string]int
	calls   map[string]int
	readErr error
}

func newMemStore(languages ...models.ProgrammingLanguage) *memStore {
	return &memStore{
		state: memState{
			users:       map[uuid.UUID]models.User{},
			languages:   languages,
			projects:    map[uuid.UUID]models.Project{},
			nextTopicID: 1,
		},
		failOn: map[string]int{},
		calls:  map[string]int{},
	}
}

func (s *memStore) addUser(u models.User) {
	s.state.users[u.ID] = u
}

func (s *memStore) addTopic(name string, predefined bool) models.Topic {
	t := models.Topic{ID: s.state.nextTopicID, Name: name, IsPredefined: predefined}
	s.state.nextTopicID++
	s.state.topics = append(s.state.topics, t)
	return t
}

func (s *memStore) Transaction(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	staged := s.state.clone()
	if err := fn(&memTx{store: s, state: &staged}); err != nil {
		return err
	}
	s.state = staged
	return nil
}

func (s *memStore) FindCompleteProject(ctx context.Context, projectID uuid.UUID) (*models.CompleteProject, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	p, ok := s.state.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("project %s not found", projectID)
	}
	p.Owner = s.state.users[p.OwnerID]
	for _, l := range s.state.projectLanguages {
		if l.ProjectID != projectID {
			continue
		}
		for _, lang := range s.state.languages {
			if lang.ID == l.LanguageID {
				l.Language = lang
			}
		}
		p.Languages = append(p.Languages, l)
	}
	for _, t := range s.state.projectTopics {
		if t.ProjectID != projectID {
			continue
		}
		for _, topic := range s.state.topics {
			if topic.ID == t.TopicID {
				t.Topic = topic
			}
		}
		p.Topics = append(p.Topics, t)
	}
	cp := models.NewCompleteProject(p)
	return &cp, nil
}

type memTx struct {
	store *memStore
	state *memState
}

func (tx *memTx) fail(op string) error {
	tx.store.calls[op]++
	if n, ok := tx.store.failOn[op]; ok && n == tx.store.calls[op] {
		return errs.NewDatabaseError("run", op, fmt.Errorf("ERROR: simulated failure in %s (SQLSTATE 23505)", op))
	}
	return nil
}

func (tx *memTx) CreateProject(ctx context.Context, project *models.Project) error {
	if err := tx.fail("CreateProject"); err != nil {
		return err
	}
	tx.state.projects[project.ID] = *project
	return nil
}

func (tx *memTx) ActiveLanguages(ctx context.Context) ([]models.ProgrammingLanguage, error) {
	if err := tx.fail("ActiveLanguages"); err != nil {
		return nil, err
	}
	var out []models.ProgrammingLanguage
	for _, l := range tx.state.languages {
		if l.IsActive {
			out = append(out, l)
		}
	}
	return out, nil
}

func (tx *memTx) AddProjectLanguage(ctx context.Context, link *models.ProjectLanguage) error {
	if err := tx.fail("AddProjectLanguage"); err != nil {
		return err
	}
	for _, l := range tx.state.projectLanguages {
		if l.ProjectID == link.ProjectID && l.LanguageID == link.LanguageID {
			return fmt.Errorf("ERROR: duplicate key value violates unique constraint \"project_languages_pkey\"")
		}
	}
	tx.state.projectLanguages = append(tx.state.projectLanguages, *link)
	return nil
}

func (tx *memTx) FindTopicByName(ctx context.Context, name string) (*models.Topic, error) {
	if err := tx.fail("FindTopicByName"); err != nil {
		return nil, err
	}
	for _, t := range tx.state.topics {
		if strings.EqualFold(t.Name, name) {
			found := t
			return &found, nil
		}
	}
	return nil, nil
}

func (tx *memTx) CreateTopic(ctx context.Context, topic *models.Topic) error {
	if err := tx.fail("CreateTopic"); err != nil {
		return err
	}
	topic.ID = tx.state.nextTopicID
	tx.state.nextTopicID++
	tx.state.topics = append(tx.state.topics, *topic)
	return nil
}

func (tx *memTx) AddProjectTopic(ctx context.Context, link *models.ProjectTopic) error {
	if err := tx.fail("AddProjectTopic"); err != nil {
		return err
	}
	for _, t := range tx.state.projectTopics {
		if t.ProjectID == link.ProjectID && t.TopicID == link.TopicID {
			return fmt.Errorf("ERROR: duplicate key value violates unique constraint \"project_topics_pkey\"")
		}
	}
	tx.state.projectTopics = append(tx.state.projectTopics, *link)
	return nil
}

func (tx *memTx) AddProjectMember(ctx context.Context, member *models.ProjectMember) error {
	if err := tx.fail("AddProjectMember"); err != nil {
		return err
	}
	tx.state.members = append(tx.state.members, *member)
	return nil
}

func (tx *memTx) CreateNotification(ctx context.Context, notification *models.Notification) error {
	if err := tx.fail("CreateNotification"); err != nil {
		return err
	}
	tx.state.notifications = append(tx.state.notifications, *notification)
	return nil
}

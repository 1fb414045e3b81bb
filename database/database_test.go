package database

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techsync/techsync-backend/errs"
	"github.com/techsync/techsync-backend/ingestion"
	"github.com/techsync/techsync-backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB connects to TEST_DATABASE_DSN and migrates all tables
func setupTestDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping integration tests")
		return nil
	}
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skip("Test database not available, skipping integration tests")
		return nil
	}
	require.NoError(t, models.Migrate(db))
	return db
}

func seedLanguage(t *testing.T, db *gorm.DB, name string) models.ProgrammingLanguage {
	lang := models.ProgrammingLanguage{Name: name, IsActive: true}
	require.NoError(t, db.Where("name = ?", name).FirstOrCreate(&lang).Error)
	return lang
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	suffix := uuid.NewString()[:8]
	user := models.User{ID: uuid.New(), Username: "user_" + suffix, Email: suffix + "@example.com"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// cleanup removes everything a test user created, children first
func cleanup(db *gorm.DB, userID uuid.UUID) {
	db.Exec("DELETE FROM notifications WHERE user_id = ?", userID)
	db.Exec("DELETE FROM project_members WHERE user_id = ?", userID)
	db.Exec("DELETE FROM project_languages WHERE project_id IN (SELECT id FROM projects WHERE owner_id = ?)", userID)
	db.Exec("DELETE FROM project_topics WHERE project_id IN (SELECT id FROM projects WHERE owner_id = ?)", userID)
	db.Exec("DELETE FROM projects WHERE owner_id = ?", userID)
	db.Exec("DELETE FROM topics WHERE created_by = ?", userID)
	db.Exec("DELETE FROM users WHERE id = ?", userID)
}

func TestIngestionStore_CreateProjectFromProposal(t *testing.T) {
	db := setupTestDB(t)
	if db == nil {
		return
	}
	ctx := context.Background()

	python := seedLanguage(t, db, "Python")
	seedLanguage(t, db, "JavaScript")
	user := seedUser(t, db)
	t.Cleanup(func() { cleanup(db, user.ID) })

	topicName := "Chess Engines " + uuid.NewString()[:8]
	wf := ingestion.NewWorkflow(NewIngestionStore(New(db)))

	res, err := wf.CreateProjectFromProposal(ctx, user.ID, ingestion.ProjectProposal{
		Title:                "Chess AI",
		Description:          "A chess engine",
		ProgrammingLanguages: ingestion.Strings([]string{"**Python**", "django", "python"}),
		Topics:               ingestion.Strings([]string{topicName}),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Warning)

	p := res.Project
	require.NotNil(t, p.Owner)
	assert.Equal(t, user.Username, p.Owner.Username)
	require.Len(t, p.Languages, 1)
	assert.Equal(t, python.ID, p.Languages[0].ID)
	assert.True(t, p.Languages[0].IsPrimary)
	require.Len(t, p.Topics, 1)
	assert.Equal(t, topicName, p.Topics[0].Name)
	assert.True(t, p.Topics[0].IsPrimary)

	database := New(db)
	var members []models.ProjectMember
	require.NoError(t, db.Where("project_id = ?", p.ID).Find(&members).Error)
	require.Len(t, members, 1)
	assert.Equal(t, models.MemberRoleOwner, members[0].Role)

	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeProjectCreated, notifications[0].NotificationType)

	// a second owner row for the same project is a unique violation
	err = database.Transaction(ctx, func(tx Database) error {
		return ingestionTx{tx}.AddProjectMember(ctx, &models.ProjectMember{
			ProjectID: p.ID, UserID: user.ID, Role: models.MemberRoleOwner,
			Status: models.MemberStatusActive, JoinedAt: time.Now().UTC(),
		})
	})
	assert.True(t, errs.IsUniqueConstraintViolationError(err))

	found, err := database.TopicRepo().FindByName(ctx, "  "+topicName)
	require.NoError(t, err)
	assert.Nil(t, found, "lookup does not trim")

	found, err = database.TopicRepo().FindByName(ctx, topicName)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.False(t, found.IsPredefined)
	require.NotNil(t, found.CreatedBy)
	assert.Equal(t, user.ID, *found.CreatedBy)
}

func TestDatabase_TransactionRollsBack(t *testing.T) {
	db := setupTestDB(t)
	if db == nil {
		return
	}
	ctx := context.Background()
	user := seedUser(t, db)
	t.Cleanup(func() { cleanup(db, user.ID) })

	projectID := uuid.New()
	boom := errors.New("boom")
	err := New(db).Transaction(ctx, func(tx Database) error {
		now := time.Now().UTC()
		require.NoError(t, tx.ProjectRepo().Add(ctx, &models.Project{
			ID: projectID, OwnerID: user.ID, Title: "t", Description: "d",
			RequiredExperienceLevel: "intermediate", MaximumMembers: 10, DifficultyLevel: "medium",
			Status: models.ProjectStatusRecruiting, CreatedAt: now, UpdatedAt: now,
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = New(db).ProjectRepo().FindComplete(ctx, projectID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTopicRepo_FindByNameIgnoresCase(t *testing.T) {
	db := setupTestDB(t)
	if db == nil {
		return
	}
	ctx := context.Background()
	user := seedUser(t, db)
	t.Cleanup(func() { cleanup(db, user.ID) })

	name := "Graph Theory " + uuid.NewString()[:8]
	repo := New(db).TopicRepo()
	require.NoError(t, repo.Add(ctx, &models.Topic{Name: name, CreatedBy: &user.ID, CreatedAt: time.Now().UTC()}))

	found, err := repo.FindByName(ctx, "GRAPH THEORY "+name[len("Graph Theory "):])
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, name, found.Name)

	missing, err := repo.FindByName(ctx, "no such topic "+uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

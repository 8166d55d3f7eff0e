package services

import (
	"testing"
	"time"

	"github.com/realravitank/Niroge/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB opens GORM over a sqlmock connection, mirroring the production
// configuration (postgres dialect, TranslateError on).
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	return gdb, mock
}

func gormModelWithID(id uint) gorm.Model {
	return gorm.Model{ID: id}
}

var userColumns = []string{
	"id", "created_at", "updated_at", "deleted_at",
	"email", "password", "name", "sex", "unit", "age",
	"goal", "activity", "rate", "height", "weight", "goal_weight",
	"diet_type", "budget",
}

func userRows(u models.User) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userColumns).
		AddRow(u.ID, now, now, nil, u.Email, u.Password, u.Name, u.Sex, u.Unit, u.Age,
			u.Goal, u.Activity, u.Rate, u.Height, u.Weight, u.GoalWeight, u.DietType, u.Budget)
}

var targetColumns = []string{"id", "created_at", "updated_at", "deleted_at", "user_id", "calories"}

func targetRows(userID uint, calories int) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(targetColumns).AddRow(1, now, now, nil, userID, calories)
}

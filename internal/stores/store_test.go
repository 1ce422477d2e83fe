package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Sneha051188/employee-management-system/internal/models"
	"github.com/Sneha051188/employee-management-system/internal/testhelpers"
)

func TestStoreCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewDepartmentStore(testhelpers.NewDB(t))

	first := &models.Department{Name: "A"}
	second := &models.Department{Name: "B"}
	require.NoError(t, store.Create(ctx, first))
	require.NoError(t, store.Create(ctx, second))

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Name)

	found, err := store.FindMap(ctx, []uint{second.ID, second.ID, 999})
	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "B", found[second.ID].Name)

	count, err := store.Count(ctx, "name", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	first.Head = "Ada"
	require.NoError(t, store.Save(ctx, first))
	reloaded, err := store.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", reloaded.Head)

	require.NoError(t, store.Delete(ctx, first.ID))
	_, err = store.FindByID(ctx, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, first.ID), ErrNotFound)
}

func TestFindByReturnsEmptySlice(t *testing.T) {
	store := NewLeaveStore(testhelpers.NewDB(t))

	leaves, err := store.FindByStatus(context.Background(), "Approved")
	require.NoError(t, err)
	assert.NotNil(t, leaves)
	assert.Empty(t, leaves)

	none, err := store.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, none)
}

func TestAttendanceFindByDateIgnoresClock(t *testing.T) {
	ctx := context.Background()
	store := NewAttendanceStore(testhelpers.NewDB(t))

	day, err := models.ParseDate("2024-06-10")
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, &models.Attendance{EmployeeID: 1, Date: day, Status: "Present"}))

	records, err := store.FindByDate(ctx, day.Add(15 * time.Hour))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(testhelpers.NewDB(t))

	user := &models.User{Name: "U", Email: " User@Example.com ", PasswordHash: "x", UserType: "employee"}
	require.NoError(t, users.CreateUser(ctx, user))
	assert.Equal(t, "user@example.com", user.Email)

	exists, err := users.ExistsByEmail(ctx, "USER@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	err = users.CreateUser(ctx, &models.User{Email: "user@example.com", PasswordHash: "y"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	require.NoError(t, users.LinkEmployee(ctx, user.ID, 42))
	loaded, err := users.FindByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	require.NotNil(t, loaded.EmployeeID)
	assert.Equal(t, uint(42), *loaded.EmployeeID)

	_, err = users.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEmployeeFindByEmailPicksLowestID(t *testing.T) {
	ctx := context.Background()
	store := NewEmployeeStore(testhelpers.NewDB(t))

	require.NoError(t, store.Create(ctx, &models.Employee{FirstName: "One", Email: "same@example.com"}))
	require.NoError(t, store.Create(ctx, &models.Employee{FirstName: "Two", Email: "SAME@example.com"}))

	employee, err := store.FindByEmail(ctx, "same@example.com")
	require.NoError(t, err)
	assert.Equal(t, "One", employee.FirstName)
}

package tenant

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

func TestRepository_FindByPhone(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT phone, name FROM tenants WHERE phone = $1")).
		WithArgs("+79990000000").
		WillReturnRows(sqlmock.NewRows([]string{"phone", "name"}).AddRow("+79990000000", "Анна"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT phone, name FROM tenants WHERE phone = $1")).
		WithArgs("+70000000000").
		WillReturnRows(sqlmock.NewRows([]string{"phone", "name"}))

	repo := NewRepository(db)

	tenant, err := repo.FindByPhone(context.Background(), "+79990000000")
	require.NoError(t, err)
	assert.Equal(t, "Анна", tenant.Name)

	_, err = repo.FindByPhone(context.Background(), "+70000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tenants (phone,name) VALUES ($1,$2) ON CONFLICT (phone) DO UPDATE SET name = EXCLUDED.name")).
		WithArgs("+79990000000", "Анна Иванова").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewRepository(db).Upsert(context.Background(), &domain.Tenant{Phone: "+79990000000", Name: "Анна Иванова"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

package db

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crjhappy123/museum-tender-notifier/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	store, err := New(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}))
	require.NoError(t, err)
	return store, mock
}

func TestStoreInsert(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `tender_record`")).
		WillReturnResult(sqlmock.NewResult(1, 2))

	err := store.Insert(context.Background(), []types.Tender{
		{Title: "南京市博物馆展陈项目", Link: "https://a/1", Date: "2024-05-20", Source: "Nanjing"},
		{Title: "江苏文物修缮", Link: types.UnresolvedLink, Date: types.UnknownDate, Source: "Jiangsu"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreInsertEmpty(t *testing.T) {
	store, mock := newMockStore(t)

	require.NoError(t, store.Insert(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreInsertError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `tender_record`")).
		WillReturnError(errors.New("connection refused"))

	err := store.Insert(context.Background(), []types.Tender{{Title: "博物馆", Source: "Nanjing"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "公告归档失败")
}

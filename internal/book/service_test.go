package book

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_List_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	// absent page/limit arrive as zero values and fall back to 1/10
	mockRepo.EXPECT().
		List(gomock.Any(), Query{Search: "", Limit: 10, Offset: 0}).
		Return([]Book{}, 0, nil)

	result, err := service.List(context.Background(), "", 0, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 0, result.TotalBooks)
}

func TestService_List_Pagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("23 rows, limit 10, page 3", func(t *testing.T) {
		lastPage := []Book{{ID: 21}, {ID: 22}, {ID: 23}}
		mockRepo.EXPECT().
			List(gomock.Any(), Query{Search: "", Limit: 10, Offset: 20}).
			Return(lastPage, 23, nil)

		result, err := service.List(context.Background(), "", 3, 10)

		require.NoError(t, err)
		assert.Equal(t, 3, result.Page)
		assert.Equal(t, 3, result.TotalPages)
		assert.Equal(t, 23, result.TotalBooks)
		assert.Len(t, result.Books, 3)
	})

	t.Run("empty store", func(t *testing.T) {
		mockRepo.EXPECT().
			List(gomock.Any(), Query{Search: "", Limit: 10, Offset: 0}).
			Return([]Book{}, 0, nil)

		result, err := service.List(context.Background(), "", 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 0, result.TotalPages)
		assert.Equal(t, 0, result.TotalBooks)
		assert.NotNil(t, result.Books)
		assert.Empty(t, result.Books)
	})

	t.Run("exact multiple", func(t *testing.T) {
		mockRepo.EXPECT().
			List(gomock.Any(), Query{Search: "", Limit: 10, Offset: 0}).
			Return(make([]Book, 10), 20, nil)

		result, err := service.List(context.Background(), "", 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalPages)
	})
}

func TestService_List_SearchPassthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		List(gomock.Any(), Query{Search: "dun", Limit: 10, Offset: 0}).
		Return([]Book{{ID: 1, Title: "Dune"}}, 1, nil)

	result, err := service.List(context.Background(), "dun", 1, 10)

	require.NoError(t, err)
	assert.Equal(t, "Dune", result.Books[0].Title)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("existing id", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), int64(7)).Return(true, nil)

		deleted, err := service.Delete(context.Background(), 7)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("absent id is not an error", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), int64(7)).Return(false, nil)

		deleted, err := service.Delete(context.Background(), 7)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

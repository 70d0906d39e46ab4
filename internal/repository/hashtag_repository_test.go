package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/post-service/internal/model"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}, &model.Hashtag{}, &model.Comment{}))
	return db
}

func TestHashtagFindOrCreate(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewHashtagRepository(db)
	ctx := context.Background()

	first, err := repo.FindOrCreate(ctx, "golang")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	// 第二次拿到同一行，不新建
	second, err := repo.FindOrCreate(ctx, "golang")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	var n int64
	require.NoError(t, db.Model(&model.Hashtag{}).Count(&n).Error)
	require.EqualValues(t, 1, n)
}

func TestHashtagFindOrCreate_LostRaceFallsBackToWinner(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewHashtagRepository(db)
	ctx := context.Background()

	// 直接预插一行模拟并发中赢了的一方，再验证冲突回读
	winner := &model.Hashtag{ID: uuid.New().String(), Hashtag: "race"}
	require.NoError(t, db.Create(winner).Error)

	// 重复插入必须被唯一键挡下并翻译成 ErrDuplicatedKey
	err := db.Create(&model.Hashtag{ID: uuid.New().String(), Hashtag: "race"}).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	got, err := repo.FindOrCreate(ctx, "race")
	require.NoError(t, err)
	require.Equal(t, winner.ID, got.ID)
}

func TestHashtagFindByText_NotFound(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewHashtagRepository(db)

	_, err := repo.FindByText(context.Background(), "missing")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestHashtagListPosts_JoinsAuthor(t *testing.T) {
	db := setupRepoTestDB(t)
	hashtagRepo := NewHashtagRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	u := &model.User{ID: uuid.New().String(), Nickname: "nick"}
	require.NoError(t, db.Create(u).Error)
	post := &model.Post{Title: "t", Content: "c #x", UserID: u.ID}
	require.NoError(t, postRepo.Create(ctx, post))
	tag, err := hashtagRepo.FindOrCreate(ctx, "x")
	require.NoError(t, err)
	require.NoError(t, postRepo.AppendHashtags(ctx, post, []*model.Hashtag{tag}))

	posts, err := hashtagRepo.ListPosts(ctx, tag.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, post.ID, posts[0].ID)
	require.NotNil(t, posts[0].User)
	require.Equal(t, "nick", posts[0].User.Nickname)
}

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/post-service/internal/model"
	"github.com/d60-Lab/post-service/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}, &model.Hashtag{}, &model.Comment{}))
	return db
}

func newTestService(t *testing.T) (PostService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewPostService(
		repository.NewPostRepository(db),
		repository.NewHashtagRepository(db),
		repository.NewCommentRepository(db),
	)
	return svc, db
}

func seedUser(t *testing.T, db *gorm.DB, nickname string) *model.User {
	t.Helper()
	u := &model.User{ID: uuid.New().String(), Nickname: nickname, Email: nickname + "@example.com", Password: "p"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestCreatePost_NoHashtags(t *testing.T) {
	svc, db := newTestService(t)
	u := seedUser(t, db, "u1")

	post, err := svc.CreatePost(context.Background(), u.ID, "title", "plain content, nothing tagged")
	require.NoError(t, err)
	require.NotEmpty(t, post.ID)
	require.EqualValues(t, 0, post.Like)

	require.EqualValues(t, 0, countRows(t, db, "hashtags"))
	require.EqualValues(t, 0, countRows(t, db, "post_hashtags"))
}

func TestCreatePost_DuplicateTagLinksOnce(t *testing.T) {
	svc, db := newTestService(t)
	u := seedUser(t, db, "u1")

	_, err := svc.CreatePost(context.Background(), u.ID, "t", "#a #a")
	require.NoError(t, err)

	require.EqualValues(t, 1, countRows(t, db, "hashtags"))
	require.EqualValues(t, 1, countRows(t, db, "post_hashtags"))
}

func TestCreatePost_Validation(t *testing.T) {
	svc, db := newTestService(t)
	u := seedUser(t, db, "u1")
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, u.ID, "", "content")
	require.ErrorIs(t, err, ErrTitleRequired)
	_, err = svc.CreatePost(ctx, u.ID, "title", "")
	require.ErrorIs(t, err, ErrContentRequired)

	// 校验失败不落任何行
	require.EqualValues(t, 0, countRows(t, db, "posts"))
}

func TestCreatePost_SharedTagAcrossPosts(t *testing.T) {
	svc, db := newTestService(t)
	u := seedUser(t, db, "u1")
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, u.ID, "p1", "first #go")
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, u.ID, "p2", "second #GO")
	require.NoError(t, err)

	// 同名标签全局只有一行，两帖各挂一条关联
	require.EqualValues(t, 1, countRows(t, db, "hashtags"))
	require.EqualValues(t, 2, countRows(t, db, "post_hashtags"))
}

func TestLikePost_NoDedup(t *testing.T) {
	svc, db := newTestService(t)
	u := seedUser(t, db, "u1")
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, u.ID, "t", "c")
	require.NoError(t, err)
	require.NoError(t, db.Model(&model.Post{}).Where("id = ?", post.ID).Update("like", 5).Error)

	require.NoError(t, svc.LikePost(ctx, post.ID))
	require.NoError(t, svc.LikePost(ctx, post.ID))

	var got model.Post
	require.NoError(t, db.First(&got, "id = ?", post.ID).Error)
	require.EqualValues(t, 7, got.Like)
}

func TestLikePost_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	require.ErrorIs(t, svc.LikePost(context.Background(), uuid.New().String()), ErrPostNotFound)
}

func TestGetPostDetail(t *testing.T) {
	svc, db := newTestService(t)
	author := seedUser(t, db, "author")
	other := seedUser(t, db, "other")
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, author.ID, "my title", "my content")
	require.NoError(t, err)
	comment := &model.Comment{ID: uuid.New().String(), Comments: "hi", UserID: other.ID, PostID: post.ID}
	require.NoError(t, db.Create(comment).Error)

	// 作者视角：authority 为真，别人的评论 isOwner 为假
	detail, err := svc.GetPostDetail(ctx, post.ID, author.ID)
	require.NoError(t, err)
	require.Equal(t, "my title", detail.Title)
	require.Equal(t, "author", detail.Nickname)
	require.True(t, detail.Authority)
	require.Len(t, detail.Comments, 1)
	require.Equal(t, "hi", detail.Comments[0].Comments)
	require.Equal(t, "other", detail.Comments[0].Nickname)
	require.False(t, detail.Comments[0].IsOwner)

	// 评论作者视角
	detail, err = svc.GetPostDetail(ctx, post.ID, other.ID)
	require.NoError(t, err)
	require.False(t, detail.Authority)
	require.True(t, detail.Comments[0].IsOwner)

	// 匿名视角
	detail, err = svc.GetPostDetail(ctx, post.ID, "")
	require.NoError(t, err)
	require.False(t, detail.Authority)
	require.False(t, detail.Comments[0].IsOwner)
}

func TestGetPostDetail_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetPostDetail(context.Background(), uuid.New().String(), "")
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpdatePostContent(t *testing.T) {
	svc, db := newTestService(t)
	u := seedUser(t, db, "u1")
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, u.ID, "t", "old #tag")
	require.NoError(t, err)

	require.ErrorIs(t, svc.UpdatePostContent(ctx, post.ID, ""), ErrContentRequired)
	require.NoError(t, svc.UpdatePostContent(ctx, post.ID, "new #other"))

	var got model.Post
	require.NoError(t, db.First(&got, "id = ?", post.ID).Error)
	require.Equal(t, "new #other", got.Content)

	// 改正文不重新派生标签：关联保持原样
	require.EqualValues(t, 1, countRows(t, db, "hashtags"))
	require.EqualValues(t, 1, countRows(t, db, "post_hashtags"))
}

func TestUpdatePostContent_NotFound(t *testing.T) {
	svc, db := newTestService(t)
	err := svc.UpdatePostContent(context.Background(), uuid.New().String(), "c")
	require.ErrorIs(t, err, ErrNotUpdated)
	require.EqualValues(t, 0, countRows(t, db, "posts"))
}

func TestDeletePost(t *testing.T) {
	svc, db := newTestService(t)
	u := seedUser(t, db, "u1")
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, u.ID, "t", "c")
	require.NoError(t, err)
	require.NoError(t, svc.DeletePost(ctx, post.ID))
	require.EqualValues(t, 0, countRows(t, db, "posts"))

	require.ErrorIs(t, svc.DeletePost(ctx, post.ID), ErrNotDeleted)
}

func TestHashtagFlow_EndToEnd(t *testing.T) {
	svc, db := newTestService(t)
	u1 := seedUser(t, db, "u1nick")
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, u1.ID, "hello post", "hello #World and #world again")
	require.NoError(t, err)

	// 大小写归一后只有一行 world，且只挂一次
	var tags []model.Hashtag
	require.NoError(t, db.Find(&tags).Error)
	require.Len(t, tags, 1)
	require.Equal(t, "world", tags[0].Hashtag)
	require.EqualValues(t, 1, countRows(t, db, "post_hashtags"))

	items, err := svc.ListPostsByHashtag(ctx, "world")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, post.ID, items[0].PostID)
	require.Equal(t, "hello post", items[0].Title)
	require.Equal(t, "u1nick", items[0].Nickname)

	// 不存在的标签返回空序列而不是错误
	items, err = svc.ListPostsByHashtag(ctx, "nonexistent")
	require.NoError(t, err)
	require.Empty(t, items)
}

package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/post-service/internal/model"
	"github.com/d60-Lab/post-service/internal/repository"
)

var (
	ErrTitleRequired   = errors.New("title required")
	ErrContentRequired = errors.New("content required")
	ErrPostNotFound    = errors.New("post not found")
	ErrNotUpdated      = errors.New("not updated")
	ErrNotDeleted      = errors.New("not deleted")
)

// HashtagPostItem 标签列表页的单条视图
type HashtagPostItem struct {
	PostID   string
	Title    string
	Nickname string
}

// CommentView 帖子详情页里的评论行
type CommentView struct {
	ID       string
	Comments string
	Nickname string
	IsOwner  bool
}

// PostDetail 帖子详情视图模型
type PostDetail struct {
	ID        string
	Title     string
	Content   string
	Nickname  string
	Like      int64
	Authority bool
	Comments  []CommentView
}

// PostService 帖子业务
type PostService interface {
	CreatePost(ctx context.Context, userID, title, content string) (*model.Post, error)
	ListPostsByHashtag(ctx context.Context, tag string) ([]HashtagPostItem, error)
	GetPostDetail(ctx context.Context, postID, viewerID string) (*PostDetail, error)
	LikePost(ctx context.Context, postID string) error
	UpdatePostContent(ctx context.Context, postID, content string) error
	DeletePost(ctx context.Context, postID string) error
}

type postService struct {
	postRepo    repository.PostRepository
	hashtagRepo repository.HashtagRepository
	commentRepo repository.CommentRepository
}

func NewPostService(postRepo repository.PostRepository, hashtagRepo repository.HashtagRepository, commentRepo repository.CommentRepository) PostService {
	return &postService{postRepo: postRepo, hashtagRepo: hashtagRepo, commentRepo: commentRepo}
}

// CreatePost 建帖并落标签。校验先行，未通过不产生任何写入。
func (s *postService) CreatePost(ctx context.Context, userID, title, content string) (*model.Post, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	if content == "" {
		return nil, ErrContentRequired
	}

	post := &model.Post{Title: title, Content: content, Like: 0, UserID: userID}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// 同一标签在正文里出现多次只关联一次
	seen := make(map[string]struct{})
	var tags []*model.Hashtag
	for _, token := range ExtractHashtags(content) {
		text := NormalizeHashtag(token)
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		tag, err := s.hashtagRepo.FindOrCreate(ctx, text)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	if err := s.postRepo.AppendHashtags(ctx, post, tags); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPostsByHashtag 按标签文本精确查；标签不存在时返回空列表。
// 列表顺序为存储默认序（未显式排序，已知限制）。
func (s *postService) ListPostsByHashtag(ctx context.Context, tag string) ([]HashtagPostItem, error) {
	found, err := s.hashtagRepo.FindByText(ctx, tag)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []HashtagPostItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	posts, err := s.hashtagRepo.ListPosts(ctx, found.ID)
	if err != nil {
		return nil, err
	}
	items := make([]HashtagPostItem, 0, len(posts))
	for _, p := range posts {
		item := HashtagPostItem{PostID: p.ID, Title: p.Title}
		if p.User != nil {
			item.Nickname = p.User.Nickname
		}
		items = append(items, item)
	}
	return items, nil
}

// GetPostDetail 组装详情视图。帖子不存在必须显式报错，不允许带空字段的视图流出。
func (s *postService) GetPostDetail(ctx context.Context, postID, viewerID string) (*PostDetail, error) {
	post, err := s.postRepo.GetWithAuthor(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	detail := &PostDetail{
		ID:      post.ID,
		Title:   post.Title,
		Content: post.Content,
		Like:    post.Like,
		// 匿名访问 viewerID 为空串，永远没有 authority
		Authority: viewerID != "" && viewerID == post.UserID,
	}
	if post.User != nil {
		detail.Nickname = post.User.Nickname
	}
	detail.Comments = make([]CommentView, 0, len(comments))
	for _, cm := range comments {
		row := CommentView{
			ID:       cm.ID,
			Comments: cm.Comments,
			IsOwner:  viewerID != "" && viewerID == cm.UserID,
		}
		if cm.User != nil {
			row.Nickname = cm.User.Nickname
		}
		detail.Comments = append(detail.Comments, row)
	}
	return detail, nil
}

// LikePost 点赞 +1。读-改-写，不是原子自增：并发点赞可能丢更新，
// 与既有行为保持一致，不在这里做假原子化。同一用户可重复点赞，不去重。
func (s *postService) LikePost(ctx context.Context, postID string) error {
	like, err := s.postRepo.GetLike(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return err
	}
	return s.postRepo.SetLike(ctx, postID, like+1)
}

// UpdatePostContent 只改 content。不重新派生标签，既有关联原样保留。
func (s *postService) UpdatePostContent(ctx context.Context, postID, content string) error {
	if content == "" {
		return ErrContentRequired
	}
	rows, err := s.postRepo.UpdateContent(ctx, postID, content)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotUpdated
	}
	return nil
}

// DeletePost 删帖。评论与标签关联不在这里级联清理，交给存储层的外键规则。
func (s *postService) DeletePost(ctx context.Context, postID string) error {
	rows, err := s.postRepo.Delete(ctx, postID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotDeleted
	}
	return nil
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/post-service/internal/api/middleware"
	"github.com/d60-Lab/post-service/pkg/response"
)

type postingRequest struct {
	Title   string `form:"title" json:"title"`
	Content string `form:"content" json:"content"`
}

type updateRequest struct {
	Content string `form:"content" json:"content"`
}

// Compose 发帖页
// @Summary 发帖页（需登录）
// @Tags 帖子
// @Produce html
// @Success 200 {string} string "渲染后的发帖页"
// @Router /post/ [get]
func (h *Handler) Compose(c *gin.Context) {
	h.renderer.Render(c, "post", gin.H{})
}

// Posting 发帖
// @Summary 发帖并解析正文里的 #标签
// @Tags 帖子
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param title formData string true "标题"
// @Param content formData string true "正文"
// @Success 200 {object} map[string]interface{} "{result, title, content, error:null}"
// @Router /post/posting [post]
func (h *Handler) Posting(c *gin.Context) {
	var req postingRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(err)
		return
	}
	userID := middleware.CurrentUserID(c)
	post, err := h.postService.CreatePost(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, gin.H{"title": post.Title, "content": post.Content})
}

// ByHashtag 按标签列帖
// @Summary 按标签列出帖子
// @Tags 帖子
// @Param hashtag query string true "标签文本（已规范化，小写、无 # 前缀）"
// @Success 200 {string} string "列表视图或提示文本"
// @Router /post/hashtag [get]
func (h *Handler) ByHashtag(c *gin.Context) {
	query := c.Query("hashtag")
	if query == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}
	items, err := h.postService.ListPostsByHashtag(c.Request.Context(), query)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if len(items) == 0 {
		c.String(http.StatusOK, "no posts for this hashtag")
		return
	}
	posts := make([]gin.H, 0, len(items))
	for _, it := range items {
		posts = append(posts, gin.H{"title": it.Title, "id": it.PostID, "nickname": it.Nickname})
	}
	h.renderer.Render(c, "hashtagPost", gin.H{"posts": posts})
}

// Detail 帖子详情
// @Summary 帖子详情（含评论，匿名可看）
// @Tags 帖子
// @Param id path string true "帖子ID"
// @Success 200 {string} string "详情视图"
// @Router /post/{id} [get]
func (h *Handler) Detail(c *gin.Context) {
	viewerID := middleware.CurrentUserID(c)
	detail, err := h.postService.GetPostDetail(c.Request.Context(), c.Param("id"), viewerID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	comments := make([]gin.H, 0, len(detail.Comments))
	for _, cm := range detail.Comments {
		comments = append(comments, gin.H{
			"id":       cm.ID,
			"comments": cm.Comments,
			"nickname": cm.Nickname,
			"isOwner":  cm.IsOwner,
		})
	}
	h.renderer.Render(c, "postContent", gin.H{
		"id":        detail.ID,
		"title":     detail.Title,
		"nickname":  detail.Nickname,
		"content":   detail.Content,
		"like":      detail.Like,
		"authority": detail.Authority,
		"comments":  comments,
	})
}

// Like 点赞
// @Summary 点赞（需登录，不去重）
// @Tags 帖子
// @Param id path string true "帖子ID"
// @Success 302 {string} string "跳回详情页"
// @Router /post/like/{id} [get]
func (h *Handler) Like(c *gin.Context) {
	id := c.Param("id")
	if err := h.postService.LikePost(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/post/"+id)
}

// Update 改正文
// @Summary 更新帖子正文（不重新派生标签）
// @Tags 帖子
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param id path string true "帖子ID"
// @Param content formData string true "新正文"
// @Success 200 {object} map[string]interface{} "{result, content, error:null}"
// @Router /post/update/{id} [post]
func (h *Handler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.postService.UpdatePostContent(c.Request.Context(), c.Param("id"), req.Content); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, gin.H{"content": req.Content})
}

// Delete 删帖
// @Summary 删除帖子
// @Tags 帖子
// @Produce json
// @Param id path string true "帖子ID"
// @Success 200 {object} map[string]interface{} "{result:success, error:null}"
// @Router /post/delete/{id} [get]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.postService.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, nil)
}

// Home 首页（标签缺失时的跳转目标）
func (h *Handler) Home(c *gin.Context) {
	h.renderer.Render(c, "main", gin.H{})
}

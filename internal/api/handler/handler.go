package handler

import (
	"github.com/d60-Lab/post-service/internal/service"
)

// Handler 汇聚各路由依赖
type Handler struct {
	postService service.PostService
	renderer    Renderer
}

func New(postService service.PostService, renderer Renderer) *Handler {
	return &Handler{postService: postService, renderer: renderer}
}

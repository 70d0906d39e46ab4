package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Renderer 视图渲染协作方：接收视图名与命名字段，产出展示输出。
// 模板本身由部署方提供，这个模块只负责算好视图模型。
type Renderer interface {
	Render(c *gin.Context, name string, data gin.H)
}

// HTMLRenderer 走 gin 模板渲染（需要 LoadHTMLGlob 先加载模板）
type HTMLRenderer struct{}

func (HTMLRenderer) Render(c *gin.Context, name string, data gin.H) {
	c.HTML(http.StatusOK, name+".html", data)
}

// JSONRenderer 未配置模板目录时的后备，把视图模型原样吐出去
type JSONRenderer struct{}

func (JSONRenderer) Render(c *gin.Context, name string, data gin.H) {
	c.JSON(http.StatusOK, gin.H{"view": name, "data": data})
}

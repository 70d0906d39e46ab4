package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK 按既有接口约定输出 {"result":"success","error":null}，并并入业务字段
func OK(c *gin.Context, fields gin.H) {
	body := gin.H{"result": "success", "error": nil}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Fail 统一失败出口
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"result": "fail", "error": msg})
}

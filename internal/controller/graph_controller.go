package controller

import (
	"linkup_backend/internal/service"
	"linkup_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// GraphController 输出可视化用的好友关系图
type GraphController struct {
	GraphService *service.GraphService
}

func NewGraphController(graphService *service.GraphService) *GraphController {
	return &GraphController{GraphService: graphService}
}

// Build godoc
// @Summary 获取完整好友关系图
// @Description 所有用户名为节点，好友关系去重后为无向边
// @Tags 关系图
// @Produce  json
// @Success 200 {object} service.Graph "{nodes, edges}"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/graph [post]
func (ctrl *GraphController) Build(c *gin.Context) {
	graph, err := ctrl.GraphService.Build()
	if err != nil {
		util.LogInternalError(c, "Failed to build friend graph", err)
		return
	}
	c.JSON(200, graph)
}

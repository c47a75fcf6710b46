package service

import (
	"linkup_backend/internal/repository"
	"linkup_backend/internal/util"
)

type GraphService struct {
	UserRepo   *repository.UserRepository
	FriendRepo *repository.FriendshipRepository
}

func NewGraphService(userRepo *repository.UserRepository, friendRepo *repository.FriendshipRepository) *GraphService {
	return &GraphService{
		UserRepo:   userRepo,
		FriendRepo: friendRepo,
	}
}

type GraphNode struct {
	Data GraphNodeData `json:"data"`
}

type GraphNodeData struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type GraphEdge struct {
	Data GraphEdgeData `json:"data"`
}

type GraphEdgeData struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// Build 构建可视化用的全局好友图
// 一条无向好友关系在库里是两条方向行，按排序用户名对的规范键去重，
// 否则每条关系会输出两条重复边
func (s *GraphService) Build() (*Graph, error) {
	usernames, err := s.UserRepo.AllUsernames()
	if err != nil {
		return nil, err
	}

	nodes := make([]GraphNode, 0, len(usernames))
	for _, username := range usernames {
		nodes = append(nodes, GraphNode{Data: GraphNodeData{ID: username, Label: username}})
	}

	rows, err := s.FriendRepo.AllEdges()
	if err != nil {
		return nil, err
	}

	edges := make([]GraphEdge, 0, len(rows)/2)
	added := make(map[string]bool, len(rows)/2)
	for _, row := range rows {
		key := util.EdgeKey(row.UserUsername, row.FriendUsername)
		if added[key] {
			continue
		}
		added[key] = true
		edges = append(edges, GraphEdge{Data: GraphEdgeData{
			ID:     key,
			Source: row.UserUsername,
			Target: row.FriendUsername,
		}})
	}

	return &Graph{Nodes: nodes, Edges: edges}, nil
}

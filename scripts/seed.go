// 手动灌入演示数据脚本
//
// 本地联调时一次性建好几个用户、好友关系和帖子，省去手点注册流程。
//
// 用法: go run scripts/seed.go

package main

import (
	"linkup_backend/internal/config"
	"linkup_backend/internal/model"
	"linkup_backend/pkg/database"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("连接数据库失败: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("建表失败: %v", err)
	}

	users := []model.User{
		{Name: "Alice Zhang", Email: "alice@example.com", Username: "alice42", Picture: "", LastOnline: time.Now()},
		{Name: "Bob Li", Email: "bob@example.com", Username: "bob7", Picture: "", LastOnline: time.Now()},
		{Name: "Carol Wang", Email: "carol@example.com", Username: "carol13", Picture: "", LastOnline: time.Now()},
	}
	for i := range users {
		if err := db.Where("email = ?", users[i].Email).FirstOrCreate(&users[i]).Error; err != nil {
			log.Fatalf("创建用户失败: %v", err)
		}
	}

	// alice <-> bob 互为好友，两个方向各一行
	edges := []model.Friend{
		{UserID: users[0].ID, FriendID: users[1].ID},
		{UserID: users[1].ID, FriendID: users[0].ID},
	}
	for i := range edges {
		if err := db.Where("user_id = ? AND friend_id = ?", edges[i].UserID, edges[i].FriendID).
			FirstOrCreate(&edges[i]).Error; err != nil {
			log.Fatalf("创建好友关系失败: %v", err)
		}
	}

	post := model.Post{UserID: users[0].ID, Caption: "hello linkup"}
	if err := db.Where("user_id = ? AND caption = ?", post.UserID, post.Caption).FirstOrCreate(&post).Error; err != nil {
		log.Fatalf("创建帖子失败: %v", err)
	}

	log.Printf("演示数据就绪: %d 个用户, alice42 和 bob7 已互为好友", len(users))
}

package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/post-service/config"
	"github.com/d60-Lab/post-service/internal/model"
	"github.com/d60-Lab/post-service/internal/repository"
	"github.com/d60-Lab/post-service/internal/service"
	"github.com/d60-Lab/post-service/pkg/database"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

// 本地演示数据：两个用户、几篇带标签的帖子、一条评论。
// 评论的写入属于评论模块，这里直接落库模拟。
func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	ctx := context.Background()

	hash := must(bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost))
	alice := model.User{ID: uuid.New().String(), Nickname: "alice", Email: "alice@example.com", Password: string(hash)}
	bob := model.User{ID: uuid.New().String(), Nickname: "bob", Email: "bob@example.com", Password: string(hash)}
	if err := db.Create(&alice).Error; err != nil {
		panic(err)
	}
	if err := db.Create(&bob).Error; err != nil {
		panic(err)
	}

	postRepo := repository.NewPostRepository(db)
	hashtagRepo := repository.NewHashtagRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	svc := service.NewPostService(postRepo, hashtagRepo, commentRepo)

	first := must(svc.CreatePost(ctx, alice.ID, "hello", "first post #intro #Golang"))
	_ = must(svc.CreatePost(ctx, bob.ID, "second", "more on #golang and #gorm"))

	comment := model.Comment{ID: uuid.New().String(), Comments: "nice post", UserID: bob.ID, PostID: first.ID}
	if err := db.Create(&comment).Error; err != nil {
		panic(err)
	}

	fmt.Printf("seeded: users=%s,%s post=%s\n", alice.Nickname, bob.Nickname, first.ID)
}

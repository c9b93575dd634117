package main

import (
	"context"
	"time"

	"luxebite/internal/auth"
	"luxebite/internal/config"
	"luxebite/internal/handler"
	"luxebite/internal/infra/db"
	infraRepo "luxebite/internal/infra/repository"
	"luxebite/internal/server"
	"luxebite/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	mongoDB, err := db.Connect(context.Background(), cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		panic(err)
	}

	//Repository（Mongo実装）生成
	foodRepo := infraRepo.NewFoodMongoRepository(mongoDB)
	orderRepo := infraRepo.NewOrderMongoRepository(mongoDB)
	userRepo := infraRepo.NewUserMongoRepository(mongoDB)
	contentRepo := infraRepo.NewContentMongoRepository(mongoDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	tokens := auth.NewTokenService(cfg.JWTSecret, time.Hour)
	hasher := usecase.NewBcryptPasswordHasher(12)

	//Usecase生成
	foodUC := usecase.NewFoodUsecase(foodRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, foodRepo, idGen, clock)
	authUC := usecase.NewAuthUsecase(userRepo, tokens, hasher, clock)
	contentUC := usecase.NewContentUsecase(contentRepo)

	//Handler生成
	foodH := handler.NewFoodHandler(foodUC)
	orderH := handler.NewOrderHandler(orderUC)
	authH := handler.NewAuthHandler(authUC, tokens, cfg.CookieSecure)
	contentH := handler.NewContentHandler(contentUC)

	//Server起動
	e := server.New(cfg)
	server.RegisterRoutes(e, tokens, foodH, orderH, authH, contentH)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e.Logger.Fatal(e.Start(addr))
}

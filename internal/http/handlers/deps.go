package handlers

import (
	"github.com/jmoiron/sqlx"

	"tradepost/internal/config"
	"tradepost/internal/genai"
	"tradepost/internal/repos"
	"tradepost/internal/services"
)

type Deps struct {
	CartHandler  *CartHandler
	OrderHandler *OrderHandler
	ItemHandler  *ItemHandler
	UserHandler  *UserHandler
	GenAIHandler *GenAIHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	cartRepo := repos.NewCartRepo(db)
	itemRepo := repos.NewItemRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	userRepo := repos.NewUserRepo(db)

	cartSvc := services.NewCartService(cartRepo, itemRepo)
	orderSvc := services.NewOrderService(orderRepo)
	catalogSvc := services.NewCatalogService(itemRepo)

	return &Deps{
		CartHandler:  &CartHandler{Cart: cartSvc},
		OrderHandler: &OrderHandler{Orders: orderSvc},
		ItemHandler:  &ItemHandler{Catalog: catalogSvc},
		UserHandler:  &UserHandler{Users: userRepo},
		GenAIHandler: &GenAIHandler{Client: genai.New(cfg.OpenAIBaseURL, cfg.OpenAIKey)},
	}
}

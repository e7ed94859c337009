package main

import (
	"database/sql"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/avkdev/storefront-backend/internal/category"
	"github.com/avkdev/storefront-backend/internal/favourite"
	"github.com/avkdev/storefront-backend/internal/home"
	"github.com/avkdev/storefront-backend/internal/order"
	"github.com/avkdev/storefront-backend/internal/post"
	"github.com/avkdev/storefront-backend/internal/product"
	"github.com/avkdev/storefront-backend/internal/subscription"
	"github.com/avkdev/storefront-backend/internal/tag"
	"github.com/avkdev/storefront-backend/internal/user"
)

// publicPaths can be reached without a token. Everything else, the home page
// included, requires a logged-in user.
var publicPaths = map[string]bool{
	"/login/":        true,
	"/register/":     true,
	"/logout/":       true,
	"/subscription/": true,
}

func main() {
	_ = godotenv.Load()
	app := fiber.New()
	setupCORS(app)

	db := mustOpenDB()
	defer db.Close()

	if err := ensureSchema(db); err != nil {
		panic(err)
	}

	userService := user.NewService(user.NewPostgresRepository(db))
	categoryService := category.NewService(category.NewPostgresRepository(db))
	productService := product.NewService(product.NewPostgresRepository(db))
	favouriteService := favourite.NewService(favourite.NewPostgresRepository(db))
	tagService := tag.NewService(tag.NewPostgresRepository(db))
	orderService := order.NewService(order.NewPostgresRepository(db), productService)
	postService := post.NewService(post.NewPostgresRepository(db))
	subscriptionService := subscription.NewService(subscription.NewPostgresRepository(db))

	userHandler := user.NewHandler(userService, categoryService)
	productHandler := product.NewHandler(productService, favouriteService, categoryService, tagService)
	favouriteHandler := favourite.NewHandler(favouriteService)
	orderHandler := order.NewHandler(orderService, userService)
	postHandler := post.NewHandler(postService, tagService)
	subscriptionHandler := subscription.NewHandler(subscriptionService)
	homeHandler := home.NewHandler(categoryService, productService, favouriteService, tagService, orderService, postService)

	userHandler.RegisterPublicRoutes(app)
	subscriptionHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(os.Getenv("JWT_SECRET")),
		Filter: func(c *fiber.Ctx) bool {
			return publicPaths[c.Path()]
		},
	}))

	homeHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	favouriteHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	postHandler.RegisterProtectedRoutes(app)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	app.Listen(addr)
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB() *sql.DB {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

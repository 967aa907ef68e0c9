package main

import (
	"html/template"
	"log"
	"os"

	"github.com/Kenji007321/MyBlog/config"
	"github.com/Kenji007321/MyBlog/controllers"
	"github.com/Kenji007321/MyBlog/middlewares"
	"github.com/Kenji007321/MyBlog/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	godotenv.Load()

	logger, err := newLogger()
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer logger.Sync()
	config.Logger = logger

	if err := config.Load(); err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// Connect to PostgreSQL database
	dsn := os.Getenv("DATABASE_URL")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := controllers.MigrateModels(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	r := setupRouter(db)
	r.Run(":" + config.Port())
}

// setupRouter wires middleware and routes onto a gin engine. Split out of
// main so handler tests can drive it with httptest.
func setupRouter(db *gorm.DB) *gin.Engine {
	config.DB = db

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	r.SetFuncMap(template.FuncMap{"gravatar": utils.GravatarURL})
	r.LoadHTMLGlob("templates/*.html")

	// Every request resolves its caller exactly once, then the guards and
	// the identity log run in that order.
	r.Use(middlewares.CurrentUser())

	public := r.Group("/")
	public.Use(middlewares.IdentityLogger())
	{
		public.GET("/", controllers.Index)
		public.GET("/register", controllers.ShowRegister)
		public.POST("/register", controllers.Register)
		public.GET("/login", controllers.ShowLogin)
		public.POST("/login", controllers.Login)
		public.GET("/logout", controllers.Logout)
		public.GET("/post/:id", controllers.ShowPost)
		public.POST("/post/:id", controllers.AddComment)
		public.GET("/about", controllers.About)
		public.GET("/contact", controllers.Contact)
	}

	admin := r.Group("/")
	admin.Use(middlewares.AdminOnly(), middlewares.IdentityLogger())
	{
		admin.GET("/new-post", controllers.ShowNewPost)
		admin.POST("/new-post", controllers.NewPost)
		admin.GET("/edit-post/:id", controllers.ShowEditPost)
		admin.POST("/edit-post/:id", controllers.EditPost)
		admin.GET("/delete/:id", controllers.DeletePost)
		admin.GET("/all-users", controllers.AllUsers)
	}

	return r
}

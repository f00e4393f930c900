package main

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"askbox/internal/db"
	"askbox/internal/handlers"
	"askbox/internal/middleware"
	"askbox/internal/moderation"
	"askbox/internal/services"
	"askbox/internal/store"
	"askbox/internal/utils"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	conn, err := db.New(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Database init failed: %v", err)
	}
	log.Println("Database connection established")

	questions := store.NewQuestionStore(conn)
	reviews := store.NewReviewStore(conn)
	logs := store.NewLogStore(conn)

	notifier := services.NewNotifier()
	audit := moderation.NewAuditLog(logs)
	limiter := moderation.NewRateLimiter(questions, logs)
	hashOrigin := utils.NewOriginHasher(os.Getenv("ORIGIN_HASH_SALT"))
	submitter := moderation.NewSubmitter(moderation.NewPolicy(), limiter, questions, reviews, audit, notifier, hashOrigin)
	reviewer := moderation.NewReviewer(questions, reviews, audit, notifier)

	pageCache, err := utils.NewCache(64)
	if err != nil {
		log.Fatalf("Cache init failed: %v", err)
	}

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	sessionStore := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("askbox_session", sessionStore))
	r.Use(middleware.LoadIdentity())

	r.HTMLRender = loadTemplates("./web/templates")

	// Handlers
	authHandler := handlers.NewAuthHandler()
	questionHandler := handlers.NewQuestionHandler(questions, submitter, pageCache)
	reviewHandler := handlers.NewReviewHandler(reviewer, reviews, audit)

	// Public Routes
	r.GET("/", questionHandler.Board)
	r.GET("/ask", questionHandler.ShowAsk)
	r.POST("/ask/submit", questionHandler.Submit)
	r.GET("/auth/qr", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Moderation Routes
	admin := r.Group("/admin")
	admin.Use(middleware.ModeratorRequired())
	{
		admin.GET("/review", reviewHandler.List)
		admin.POST("/review/approve", reviewHandler.Approve)
		admin.POST("/review/reject", reviewHandler.Reject)
		admin.POST("/review/delete", reviewHandler.Delete)
		admin.POST("/review/restore", reviewHandler.Restore)
		admin.GET("/logs", reviewHandler.Logs)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("askbox server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+1)
		files = append(files, layouts...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"timeAgo": func(t time.Time) string {
			seconds := int(time.Since(t).Seconds())
			switch {
			case seconds < 60:
				return fmt.Sprintf("%ds ago", seconds)
			case seconds < 3600:
				return fmt.Sprintf("%dm ago", seconds/60)
			case seconds < 86400:
				return fmt.Sprintf("%dh ago", seconds/3600)
			default:
				return t.Format("2006-01-02")
			}
		},
		"prettyJSON": func(v interface{}) string {
			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return ""
			}
			return string(out)
		},
	}

	r.AddFromFilesFuncs("board/list.html", funcMap, assemble(templatesDir+"/views/board/list.html")...)
	r.AddFromFilesFuncs("board/ask.html", funcMap, assemble(templatesDir+"/views/board/ask.html")...)
	r.AddFromFilesFuncs("admin/review.html", funcMap, assemble(templatesDir+"/views/admin/review.html")...)
	r.AddFromFilesFuncs("admin/logs.html", funcMap, assemble(templatesDir+"/views/admin/logs.html")...)
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}

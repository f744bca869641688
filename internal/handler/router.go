package handler

import (
	"ProfileCards_WebProject/internal/logging"
	"ProfileCards_WebProject/internal/middleware"

	_ "ProfileCards_WebProject/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterOptions struct {
	// Empty means every origin is allowed.
	CORSOrigins        []string
	RateLimitPerSecond float64
	RateLimitBurst     int
	EnableSwagger      bool
}

// NewRouter wires every endpoint. Script endpoints answer both with and
// without the .py suffix so existing HTML forms keep working.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(logging.RequestLogger(h.logger), gin.CustomRecovery(h.RecoverPanic))

	config := cors.DefaultConfig()
	if len(opts.CORSOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = opts.CORSOrigins
	}
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")
	router.Use(cors.New(config))

	limiter := middleware.RateLimitByClientIP(opts.RateLimitPerSecond, opts.RateLimitBurst)
	mutationAuth := middleware.MutationAuthMiddleware(h.issuer)

	cgiBin := router.Group("/cgi_bin")
	{
		script(cgiBin, "profile", h.Profile)
		script(cgiBin, "delete_cards", mutationAuth, h.DeleteCards)
		script(cgiBin, "upload", limiter, h.Upload)
		script(cgiBin, "delete_upload_files", mutationAuth, h.DeleteUploadFiles)
		script(cgiBin, "redirect", h.Redirect)
	}

	router.POST("/login", limiter, h.Login)

	api := router.Group("/api")
	{
		api.GET("/profiles/:id", h.GetProfile)

		admin := api.Group("", middleware.AuthMiddleware(h.issuer))
		admin.DELETE("/profiles/:id", h.DeleteProfile)
		admin.GET("/uploads/history", h.GetUploadHistory)
	}

	if opts.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return router
}

func script(group *gin.RouterGroup, name string, handlers ...gin.HandlerFunc) {
	group.Any("/"+name, handlers...)
	group.Any("/"+name+".py", handlers...)
}

// ScriptNames lists the endpoints reachable under /cgi_bin.
func ScriptNames() []string {
	return []string{"profile", "delete_cards", "upload", "delete_upload_files", "redirect"}
}

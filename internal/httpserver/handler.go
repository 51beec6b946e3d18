package httpserver

import (
	"sync"

	authHTTP "users-srv/internal/auth/delivery/http"
	authUC "users-srv/internal/auth/usecase"
	"users-srv/internal/middleware"
	"users-srv/internal/model"
	userHTTP "users-srv/internal/user/delivery/http"
	userRepo "users-srv/internal/user/repository/postgre"
	userUC "users-srv/internal/user/usecase"
	pkgErrors "users-srv/pkg/errors"
	"users-srv/pkg/response"
	"users-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var tagNamesOnce sync.Once

// registerValidatorTagNames makes binding errors name fields the way clients send them.
func registerValidatorTagNames() {
	tagNamesOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(pkgErrors.JSONFieldName)
		}
	})
}

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, scope.NewExtractor[model.IdentityClaims](srv.codec), srv.discord)

	srv.gin.Use(mw.Recovery())
	srv.gin.Use(middleware.CORS(middleware.NewCORSConfig(srv.allowedOrigins)))

	srv.gin.GET("/", srv.welcome)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Repositories
	userRepository := userRepo.New(srv.l, srv.db, srv.acquireTimeout)

	// Usecases
	authUsecase := authUC.New(srv.l, userRepository, srv.hasher, srv.codec)
	userUsecase := userUC.New(srv.l, userRepository, srv.storage, srv.codec)

	// Handlers
	authHandler := authHTTP.New(srv.l, authUsecase, srv.discord)
	userHandler := userHTTP.New(srv.l, userUsecase, srv.discord)

	authHandler.RegisterRoutes(srv.gin.Group("/auth"), mw)
	userHandler.RegisterRoutes(srv.gin.Group(""), mw)

	srv.gin.NoRoute(func(c *gin.Context) {
		response.Error(c, pkgErrors.NewNotFound(pkgErrors.CodeNotFound), nil)
	})
}

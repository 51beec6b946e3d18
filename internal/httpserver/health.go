package httpserver

import (
	"context"
	"time"

	pkgErrors "users-srv/pkg/errors"
	"users-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName  = "users-srv"
	probeTimeout = 2 * time.Second
)

func (srv *HTTPServer) welcome(c *gin.Context) {
	response.OK(c, gin.H{"message": "users microservice"})
}

// healthCheck reports the state of every dependency without failing the probe.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	deps := gin.H{"postgres": "connected"}
	status := "healthy"
	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "internal.httpserver.healthCheck.postgres: %v", err)
		deps["postgres"] = "disconnected"
		status = "degraded"
	}
	if srv.storage != nil {
		deps["minio"] = "connected"
		if err := srv.storage.HealthCheck(ctx); err != nil {
			srv.l.Warnf(ctx, "internal.httpserver.healthCheck.minio: %v", err)
			deps["minio"] = "disconnected"
			status = "degraded"
		}
	}

	response.OK(c, gin.H{
		"status":       status,
		"service":      serviceName,
		"dependencies": deps,
	})
}

// readyCheck fails with 503 until the database, and storage when enabled, answer.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "internal.httpserver.readyCheck.postgres: %v", err)
		response.Error(c, pkgErrors.NewUnavailable(err), nil)
		return
	}
	if srv.storage != nil {
		if err := srv.storage.HealthCheck(ctx); err != nil {
			srv.l.Warnf(ctx, "internal.httpserver.readyCheck.minio: %v", err)
			response.Error(c, pkgErrors.NewUnavailable(err), nil)
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": serviceName,
	})
}

func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
	})
}

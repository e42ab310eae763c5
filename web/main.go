package main

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/snnnxs25024-ux/absensi-backend/core"
	"github.com/snnnxs25024-ux/absensi-backend/web/handlers/reports"
	"github.com/snnnxs25024-ux/absensi-backend/web/handlers/sessions"
	"github.com/snnnxs25024-ux/absensi-backend/web/handlers/workers"
	"github.com/snnnxs25024-ux/absensi-backend/web/middlewares"
)

func main() {
	r := gin.Default()

	dsn := os.Getenv("DSN")
	fmt.Printf("using DSN: %s\n", dsn)

	dm, err := core.New(dsn, 10)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	base64Secret := os.Getenv("ABSENSI_SIGNING_SECRET")
	jwtSecret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	protected := r.Group("/api/v1")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		protected.GET("/whoami", func(c *gin.Context) {
			claims, _ := c.Get("claims")
			c.JSON(http.StatusOK, gin.H{"claims": claims})
		})

		workers.Register(protected, dm)
		sessions.Register(protected, dm)
		reports.Register(protected, dm)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8090"
	}
	r.Run("0.0.0.0:" + port)
}

package server

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bsteg/pkg/config"

	_ "bsteg/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"
)

// StartServer godoc
// @title bsteg API
// @version 1.0
// @description An API to embed payloads into bitmap carriers and extract them again
// @BasePath /api/v1
func StartServer(cfg config.ServerConfig) error {
	cfg.PopulateUnsetConfigVars()

	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/embed/bitmap", EmbedBitmapHandler)
	v1.POST("/extract/bitmap", ExtractBitmapHandler)
	v1.POST("/inspect/bitmap", InspectBitmapHandler)

	// FlatBuffers variants for clients that want to avoid the base64
	// overhead of the JSON endpoints.
	v1.POST("/embed/bitmap.fb", gin.WrapF(handleBitmapEmbedFB))
	v1.POST("/extract/bitmap.fb", gin.WrapF(handleBitmapExtractFB))

	return r.Run(fmt.Sprintf(":%s", cfg.Port))
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	return fmt.Sprintf("{\"timestamp\":\"%v\", \"status_code\": \"%d\", \"latency\": \"%v\", \"latency_raw\": \"%d\", \"request_size\": \"%s\", \"request_size_raw\": \"%d\", \"client_ip\":\"%s\", \"method\": \"%s\", \"path\": \"%v\", \"error\": \"%s\"}\n",
		param.TimeStamp.Format(RFC3339Millis),
		param.StatusCode,
		param.Latency,
		param.Latency,
		humanize.Bytes(uint64(param.BodySize)),
		param.BodySize,
		param.ClientIP,
		param.Method,
		param.Path,
		param.ErrorMessage,
	)
}

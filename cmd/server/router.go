package main

import (
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sriharicp/portfolio/pkg/page"
	"github.com/sriharicp/portfolio/pkg/resume"
)

// server 路由处理所需的依赖
type server struct {
	resume  *resume.Data
	visits  *visitStore // 可为 nil（不统计访问）
	webRoot string
}

// navLink 页面导航链接
type navLink struct {
	Label string
	ID    string
}

// newRouter 创建路由
//
// 路由:
//   - GET /            加载页面（无脚本时直接显示简历内容）
//   - GET /api/resume  简历数据 JSON
//   - GET /api/visits  访问统计
//   - GET /healthz     健康检查
//   - /static/*        portfolio.wasm、wasm_exec.js 和样式表
func newRouter(s *server) *gin.Engine {
	r := gin.Default()
	if s.visits != nil {
		r.Use(s.visits.middleware())
	}

	r.LoadHTMLGlob(filepath.Join(s.webRoot, "templates", "*"))
	r.Static("/static", filepath.Join(s.webRoot, "static"))

	r.GET("/", s.index)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/resume", s.resumeJSON)
	api.GET("/visits", s.visitStats)

	return r
}

func (s *server) index(c *gin.Context) {
	links := make([]navLink, 0, len(page.NavItems))
	for _, item := range page.NavItems {
		links = append(links, navLink{Label: item, ID: page.NavTargetID(item)})
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"resume":   s.resume,
		"nav":      links,
		"reachMe":  page.ReachMeMessage,
		"year":     time.Now().Year(),
		"wasmPath": "/static/portfolio.wasm",
	})
}

func (s *server) resumeJSON(c *gin.Context) {
	c.JSON(http.StatusOK, s.resume)
}

func (s *server) visitStats(c *gin.Context) {
	if s.visits == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "visit tracking disabled"})
		return
	}

	stats, err := s.visits.Stats(time.Now())
	if err != nil {
		log.Printf("[Server] Error reading visit stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Package main 托管简历页面的 HTTP 服务器
//
// 提供浏览器版本（GOOS=js GOARCH=wasm 构建的 portfolio.wasm）的加载页面、
// 简历数据 JSON 接口和匿名访问统计。
//
// 环境变量（可写在 .env 中）:
//
//	PORT          监听端口，默认 8080
//	RESUME_PATH   简历数据文件，默认 data/resume.yaml
//	WEB_ROOT      模板和静态文件目录，默认 web
//	VISITS_DB     访问统计 SQLite 数据库，默认 portfolio.db；设为 off 关闭统计
package main

import (
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/sriharicp/portfolio/pkg/resume"
)

// serverConfig 服务器配置
type serverConfig struct {
	Port       string
	ResumePath string
	WebRoot    string
	VisitsDB   string
}

func configFromEnv() serverConfig {
	return serverConfig{
		Port:       envOr("PORT", "8080"),
		ResumePath: envOr("RESUME_PATH", resume.DefaultPath),
		WebRoot:    envOr("WEB_ROOT", "web"),
		VisitsDB:   envOr("VISITS_DB", "portfolio.db"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	cfg := configFromEnv()

	data, err := resume.Load(cfg.ResumePath)
	if err != nil {
		log.Fatalf("[Server] %v", err)
	}

	var visits *visitStore
	if cfg.VisitsDB != "off" {
		visits, err = openVisitStore(cfg.VisitsDB)
		if err != nil {
			log.Printf("[Server] Warning: visit tracking disabled: %v", err)
			visits = nil
		} else {
			defer visits.Close()
		}
	}

	r := newRouter(&server{resume: data, visits: visits, webRoot: cfg.WebRoot})

	log.Printf("[Server] Serving %s on :%s", data.Name, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[Server] %v", err)
	}
}

package main

import (
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"
)

// visitStats 访问统计
type visitStats struct {
	TotalVisits    int64 `json:"total_visits"`
	UniqueVisitors int64 `json:"unique_visitors"`
	VisitsToday    int64 `json:"visits_today"`
}

// visitStore 匿名访问记录
//
// 只保存加盐哈希后的 IP，盐在每次启动时随机生成，
// 所以重启后同一访客无法再与历史记录关联。
type visitStore struct {
	db   *sql.DB
	salt string
}

// openVisitStore 打开（或创建）SQLite 数据库
//
// 参数:
//   - path: 数据库文件路径，":memory:" 表示内存数据库
func openVisitStore(path string) (*visitStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open visits db: %w", err)
	}
	// 内存数据库每个连接各自独立，只用一个连接
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS visits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		visited_at INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create visits table: %w", err)
	}

	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	log.Printf("[Visits] Tracking enabled (%s)", path)
	return &visitStore{db: db, salt: hex.EncodeToString(salt)}, nil
}

// Close 关闭数据库
func (v *visitStore) Close() error {
	return v.db.Close()
}

func (v *visitStore) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + v.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Record 记录一次访问
func (v *visitStore) Record(ip, userAgent, path string, at time.Time) error {
	_, err := v.db.Exec(
		`INSERT INTO visits (hashed_ip, user_agent, path, visited_at) VALUES (?, ?, ?, ?)`,
		v.hashIP(ip), userAgent, path, at.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}

// Stats 统计总访问量、独立访客数和 now 当天（UTC）的访问量
func (v *visitStore) Stats(now time.Time) (visitStats, error) {
	var s visitStats
	if err := v.db.QueryRow(`SELECT COUNT(*) FROM visits`).Scan(&s.TotalVisits); err != nil {
		return s, fmt.Errorf("failed to count visits: %w", err)
	}
	if err := v.db.QueryRow(`SELECT COUNT(DISTINCT hashed_ip) FROM visits`).Scan(&s.UniqueVisitors); err != nil {
		return s, fmt.Errorf("failed to count visitors: %w", err)
	}

	day := now.UTC().Truncate(24 * time.Hour)
	err := v.db.QueryRow(
		`SELECT COUNT(*) FROM visits WHERE visited_at >= ? AND visited_at < ?`,
		day.Unix(), day.Add(24*time.Hour).Unix(),
	).Scan(&s.VisitsToday)
	if err != nil {
		return s, fmt.Errorf("failed to count today's visits: %w", err)
	}
	return s, nil
}

// middleware 记录页面访问
// 静态文件、接口和健康检查不计入；带 DNT: 1 请求头的访问不记录
func (v *visitStore) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/api/") ||
			path == "/healthz" ||
			strings.HasPrefix(path, "/favicon") ||
			c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		if err := v.Record(c.ClientIP(), c.GetHeader("User-Agent"), path, time.Now()); err != nil {
			log.Printf("[Visits] %v", err)
		}
		c.Next()
	}
}

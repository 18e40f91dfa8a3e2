package config

import (
	"database/sql"
	"log"
	"os"
	"strconv"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

var DB *sql.DB

// poolSize 连接池参数优先读环境变量，非法值回退默认
func poolSize(env string, def int) int {
	if v := os.Getenv(env); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("无法解析 %s: %s，使用默认值 %d", env, v, def)
	}
	return def
}

// 初始化数据库连接
func InitDB() {
	dsn := os.Getenv("DB_USER") + ":" +
		os.Getenv("DB_PASSWORD") + "@tcp(" +
		os.Getenv("DB_HOST") + ")/" +
		os.Getenv("DB_NAME") + "?parseTime=true&loc=Local&tls=preferred"

	var err error
	DB, err = sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB.SetMaxOpenConns(poolSize("DB_MAX_OPEN_CONNS", 25))
	DB.SetMaxIdleConns(poolSize("DB_MAX_IDLE_CONNS", 10))
	DB.SetConnMaxLifetime(5 * time.Minute)
	DB.SetConnMaxIdleTime(2 * time.Minute)

	if err = DB.Ping(); err != nil {
		log.Fatal("Database connection failed:", err)
	}
}

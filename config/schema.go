package config

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/security"
)

// 建表语句。外键级联规则刻意保持不对称：
// surveys -> user_surveys 级联删除，user_surveys -> responses 禁止删除，
// 即存在作答数据的问卷必须先清理答案才能删除。
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            CHAR(36) PRIMARY KEY,
		username      VARCHAR(100) NOT NULL,
		email         VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role          VARCHAR(20)  NOT NULL,
		created_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		id         CHAR(36) PRIMARY KEY,
		user_id    CHAR(36) NOT NULL UNIQUE,
		first_name VARCHAR(100) NOT NULL,
		last_name  VARCHAR(100) NOT NULL DEFAULT '',
		phone      VARCHAR(50)  NULL,
		address    VARCHAR(255) NULL,
		CONSTRAINT fk_profile_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS password_histories (
		id             CHAR(36) PRIMARY KEY,
		user_id        CHAR(36) NOT NULL,
		plain_password VARCHAR(255) NOT NULL,
		created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_pwdhist_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          CHAR(36) PRIMARY KEY,
		name        VARCHAR(100) NOT NULL,
		description TEXT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS surveys (
		id                 CHAR(36) PRIMARY KEY,
		title              VARCHAR(200) NOT NULL,
		description        TEXT NULL,
		is_active          BOOLEAN NOT NULL DEFAULT TRUE,
		created_by_user_id CHAR(36) NOT NULL,
		product_id         CHAR(36) NULL,
		created_at         DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_survey_creator FOREIGN KEY (created_by_user_id) REFERENCES users(id) ON DELETE CASCADE,
		CONSTRAINT fk_survey_product FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id          CHAR(36) PRIMARY KEY,
		survey_id   CHAR(36) NOT NULL,
		text        TEXT NOT NULL,
		type        VARCHAR(20) NOT NULL,
		order_index INT NOT NULL DEFAULT 0,
		CONSTRAINT fk_question_survey FOREIGN KEY (survey_id) REFERENCES surveys(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS options (
		id          CHAR(36) PRIMARY KEY,
		question_id CHAR(36) NOT NULL,
		text        TEXT NOT NULL,
		order_index INT NOT NULL DEFAULT 0,
		CONSTRAINT fk_option_question FOREIGN KEY (question_id) REFERENCES questions(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS user_surveys (
		id            CHAR(36) PRIMARY KEY,
		user_id       CHAR(36) NOT NULL,
		survey_id     CHAR(36) NOT NULL,
		created_by_id CHAR(36) NOT NULL,
		started_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		completed_at  DATETIME NULL,
		CONSTRAINT fk_usersurvey_user   FOREIGN KEY (user_id)   REFERENCES users(id)   ON DELETE RESTRICT,
		CONSTRAINT fk_usersurvey_survey FOREIGN KEY (survey_id) REFERENCES surveys(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS responses (
		id             CHAR(36) PRIMARY KEY,
		user_survey_id CHAR(36) NOT NULL,
		question_id    CHAR(36) NOT NULL,
		option_id      CHAR(36) NULL,
		answer_text    TEXT NULL,
		answered_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_response_usersurvey FOREIGN KEY (user_survey_id) REFERENCES user_surveys(id) ON DELETE RESTRICT,
		CONSTRAINT fk_response_question   FOREIGN KEY (question_id)    REFERENCES questions(id)    ON DELETE CASCADE,
		CONSTRAINT fk_response_option     FOREIGN KEY (option_id)      REFERENCES options(id)      ON DELETE SET NULL
	)`,
}

// InitSchema 建表（幂等）
func InitSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("建表失败: %v", err)
		}
	}
	return nil
}

// SeedData 首次启动时写入基础数据：五个产品、两个演示账号（含档案与口令审计记录）。
// users 表非空时不做任何事。
func SeedData(db *sql.DB, logger *log.Logger) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger.Println("用户表为空，写入种子数据")
	createdAt := time.Now().UTC()

	products := []struct{ name, desc string }{
		{"Product A", "Description A"},
		{"Product B", "Description B"},
		{"Product C", "Description C"},
		{"Product D", "Description D"},
		{"Product E", "Description E"},
	}
	for _, p := range products {
		if _, err := db.Exec(`INSERT INTO products (id, name, description) VALUES (?, ?, ?)`,
			uuid.New().String(), p.name, p.desc); err != nil {
			return err
		}
	}

	demoUsers := []struct {
		username, email, password, role string
	}{
		{"admin1", "admin1@example.com", "Admin@123", model.RoleAdmin},
		{"user1", "user1@example.com", "User1@123", model.RoleRespondent},
	}

	for _, u := range demoUsers {
		hash, err := security.HashPassword(u.password)
		if err != nil {
			return err
		}

		userID := uuid.New().String()
		if _, err := db.Exec(`INSERT INTO users (id, username, email, password_hash, role, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			userID, u.username, u.email, hash, u.role, createdAt); err != nil {
			return err
		}

		// 口令审计表存明文副本（沿用旧系统的数据形态）
		if _, err := db.Exec(`INSERT INTO password_histories (id, user_id, plain_password, created_at) VALUES (?, ?, ?, ?)`,
			uuid.New().String(), userID, u.password, createdAt); err != nil {
			return err
		}

		if _, err := db.Exec(`INSERT INTO user_profiles (id, user_id, first_name, last_name, phone, address) VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), userID, u.username, "", "0000000000", "Default Address"); err != nil {
			return err
		}
	}

	logger.Printf("种子数据写入完成: %d 个产品, %d 个演示账号", len(products), len(demoUsers))
	return nil
}

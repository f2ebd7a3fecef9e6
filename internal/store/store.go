package store

import (
	"errors"
	"time"

	"github.com/glebarez/sqlite" // 纯 Go SQLite 驱动（基于 modernc.org/sqlite）
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Entry 本地键值记录
type Entry struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"index"`
}

// TableName 指定表名
func (Entry) TableName() string {
	return "kv_entries"
}

// Store 本地持久化存储，购物车与登录凭证都落在这里
type Store struct {
	db *gorm.DB
}

// Open 打开（必要时创建）本地存储
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Get 读取键值。键不存在时返回 found=false，不算错误。
func (s *Store) Get(key string) ([]byte, bool, error) {
	var entry Entry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return entry.Value, true, nil
}

// Put 写入键值（存在则覆盖，单行 upsert，后写覆盖先写）
func (s *Store) Put(key string, value []byte) error {
	entry := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	var existing Entry
	err := s.db.Where("key = ?", key).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&entry).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&existing).Updates(map[string]interface{}{
		"value":      entry.Value,
		"updated_at": entry.UpdatedAt,
	}).Error
}

// Delete 删除键。键不存在时视为成功。
func (s *Store) Delete(key string) error {
	return s.db.Where("key = ?", key).Delete(&Entry{}).Error
}

// Close 关闭底层数据库连接
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

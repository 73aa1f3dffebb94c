package db

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/crjhappy123/museum-tender-notifier/config"
	"github.com/crjhappy123/museum-tender-notifier/types"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Record 招标归档表结构
type Record struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:512;comment:标题"`
	Link      string `gorm:"size:1024;comment:链接"`
	Date      string `gorm:"size:32;comment:日期"`
	Source    string `gorm:"size:64;index;comment:来源站点"`
	CreatedAt time.Time
}

func (Record) TableName() string {
	return "tender_record"
}

// Store 招标归档
type Store struct {
	db *gorm.DB
}

// 自定义gorm日志
var newLogger = logger.New(
	log.New(os.Stdout, "\r\n", log.LstdFlags),
	logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  logger.Silent,
		IgnoreRecordNotFoundError: true,
		ParameterizedQueries:      true,
		Colorful:                  false,
	},
)

// Open 连接归档库
func Open(cfg config.MySQL) (*Store, error) {
	return New(mysql.Open(cfg.DSN()))
}

// New 使用指定方言创建归档
func New(dialector gorm.Dialector) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 newLogger,
		SkipDefaultTransaction: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("数据库连接失败：%w", err)
	}
	return &Store{db: db}, nil
}

// Migrate 迁移数据库表结构
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("数据表迁移失败：%w", err)
	}
	return nil
}

// Insert 批量写入一次运行匹配到的公告
func (s *Store) Insert(ctx context.Context, tenders []types.Tender) error {
	if len(tenders) == 0 {
		return nil
	}
	records := make([]Record, 0, len(tenders))
	for _, t := range tenders {
		records = append(records, Record{
			Title:  t.Title,
			Link:   t.Link,
			Date:   t.Date,
			Source: t.Source,
		})
	}
	if err := s.db.WithContext(ctx).Create(&records).Error; err != nil {
		return fmt.Errorf("公告归档失败：%w", err)
	}
	return nil
}

// Close 关闭连接
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

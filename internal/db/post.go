package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Post 定义了文章模型。主键沿用服务端生成的字符串 id，
// slug 作为关系型变体的备用查询键。
type Post struct {
	ID        string `gorm:"primaryKey"`
	Title     string
	Slug      string `gorm:"uniqueIndex"`
	Content   string
	Author    string
	Tags      TagList `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TagList stores the ordered tag sequence as a JSON array in a single
// text column, portable across sqlite and postgres.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = TagList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported tag column type %T", value)
	}

	if len(data) == 0 {
		*t = TagList{}
		return nil
	}
	return json.Unmarshal(data, (*[]string)(t))
}

package entities

import "github.com/zooyer/dxfcut/core"

// Unknown 承接所有未注册的实体类型，只保留类型名用于统计
type Unknown struct {
	BaseEntity
}

func (u *Unknown) Parse(s *core.Scanner) error {
	for {
		u.parseCommon(s.LastTag)
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

func (u *Unknown) BBox() core.BBox {
	return core.BBox{}
}

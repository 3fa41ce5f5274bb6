package entities

import "github.com/zooyer/dxfcut/core"

// Text 覆盖 TEXT(单行) 和 MTEXT(多行) 两种注记
type Text struct {
	BaseEntity
	Location core.Point
	Content  string
	Height   float64
}

func init() {
	Register("TEXT", func() Entity {
		return &Text{BaseEntity: BaseEntity{TypeName: "TEXT"}}
	})
	Register("MTEXT", func() Entity {
		return &Text{BaseEntity: BaseEntity{TypeName: "MTEXT"}}
	})
}

func (t *Text) Parse(scanner *core.Scanner) error {
	for {
		tag := scanner.LastTag
		switch tag.Code {
		case 10:
			t.Location.X = tag.AsFloat()
		case 20:
			t.Location.Y = tag.AsFloat()
		case 30:
			t.Location.Z = tag.AsFloat()
		case 40:
			t.Height = tag.AsFloat()
		case 1:
			t.Content = tag.AsString()
		default:
			t.parseCommon(tag)
		}
		if !scanner.Next() || scanner.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

func (t *Text) BBox() core.BBox {
	// 简化处理：注记暂时以插入点作为包围盒
	return core.BBox{Min: t.Location, Max: t.Location}
}
